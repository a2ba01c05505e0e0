package store_test

import (
	"context"
	"testing"

	repo "borteh/internal/repository"
	"borteh/internal/store"

	"github.com/stretchr/testify/assert"
)

type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

func (m *memoryKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (m *memoryKV) Set(ctx context.Context, key string, value string) error {
	m.data[key] = value
	return nil
}

type item struct {
	Name string `json:"name"`
	Qty  int64  `json:"qty"`
}

func TestListStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := store.NewListStore[item](kv)

	in := []item{{Name: "a", Qty: 1}, {Name: "b", Qty: 2}}
	assert.NoError(t, s.Save(ctx, "list", in))

	out := s.Load(ctx, "list")
	assert.Equal(t, in, out)
}

// キーが無い場合は空リスト（エラーにしない）
func TestListStore_MissingKeyIsEmptyList(t *testing.T) {
	s := store.NewListStore[item](newMemoryKV())

	out := s.Load(context.Background(), "nothing")
	assert.NotNil(t, out)
	assert.Equal(t, 0, len(out))
}

// 壊れたJSONも空リスト扱い
func TestListStore_CorruptValueIsEmptyList(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.data["list"] = "{not json"

	s := store.NewListStore[item](kv)
	out := s.Load(ctx, "list")
	assert.Equal(t, 0, len(out))
}

// JSONのnullも空リスト扱い
func TestListStore_NullValueIsEmptyList(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.data["list"] = "null"

	s := store.NewListStore[item](kv)
	out := s.Load(ctx, "list")
	assert.NotNil(t, out)
	assert.Equal(t, 0, len(out))
}

// Saveは全体を上書きする
func TestListStore_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := store.NewListStore[item](kv)

	assert.NoError(t, s.Save(ctx, "list", []item{{Name: "a", Qty: 1}}))
	assert.NoError(t, s.Save(ctx, "list", []item{{Name: "b", Qty: 9}}))

	out := s.Load(ctx, "list")
	assert.Equal(t, []item{{Name: "b", Qty: 9}}, out)
}

// nilはJSONの空配列として保存される
func TestListStore_SaveNilStoresEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := store.NewListStore[item](kv)

	assert.NoError(t, s.Save(ctx, "list", nil))
	assert.Equal(t, "[]", kv.data["list"])
}
