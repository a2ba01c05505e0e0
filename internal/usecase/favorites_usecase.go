package usecase

import (
	"context"
	"net/http"
	"sync"

	"borteh/internal/store"
)

// 永続化キー（移行元のlocalStorageキーと互換）
const favoritesKey = "bortehFavorites"

// FavoritesUsecase はお気に入り（商品IDの集合）を持つ。
// トグル2回で元の状態に戻る。
type FavoritesUsecase struct {
	mu    sync.Mutex
	lists *store.ListStore[int64]
	ids   []int64
}

// NewFavoritesUsecase は起動時に保存済みリストを読み込む。
func NewFavoritesUsecase(ctx context.Context, lists *store.ListStore[int64]) *FavoritesUsecase {
	return &FavoritesUsecase{
		lists: lists,
		ids:   lists.Load(ctx, favoritesKey),
	}
}

// Toggle はIDの有無を反転し、反転後にお気に入りかどうかを返す。
func (u *FavoritesUsecase) Toggle(ctx context.Context, id int64) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := make([]int64, 0, len(u.ids)+1)
	removed := false
	for _, v := range u.ids {
		if v == id {
			removed = true
			continue
		}
		next = append(next, v)
	}
	if !removed {
		next = append(next, id)
	}

	if err := u.lists.Save(ctx, favoritesKey, next); err != nil {
		return false, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	u.ids = next

	return !removed, nil
}

func (u *FavoritesUsecase) IsFavorite(id int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, v := range u.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Snapshot は登録順のコピーを返す。
func (u *FavoritesUsecase) Snapshot() []int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]int64, len(u.ids))
	copy(out, u.ids)
	return out
}
