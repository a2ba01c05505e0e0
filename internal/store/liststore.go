package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"borteh/internal/repository"
)

// ListStore は名前付きリストをKVストレージへJSON配列で読み書きする。
// キーが無い・壊れている場合は空リスト扱いにする（エラーにしない）。
type ListStore[T any] struct {
	kv repository.KVRepository
}

// DI
func NewListStore[T any](kv repository.KVRepository) *ListStore[T] {
	return &ListStore[T]{kv: kv}
}

// Load はキーのリストを返す。未保存・パース不能は空リスト。
func (s *ListStore[T]) Load(ctx context.Context, key string) []T {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []T{}
		}
		//読み取り失敗も空リストに倒す（致命にしない）
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// Save はリスト全体を上書き保存する。
func (s *ListStore[T]) Save(ctx context.Context, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal list failed: %w", err)
	}

	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("kv set failed: %w", err)
	}
	return nil
}
