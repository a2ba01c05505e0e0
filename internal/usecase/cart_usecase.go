package usecase

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"borteh/internal/domain/model"
	"borteh/internal/store"
)

// 永続化キー（移行元のlocalStorageキーと互換）
const cartKey = "bortehCart"

// CartUsecase はカートの業務ロジックです。
// 商品名をキーに1行へまとめ、数量は常に1以上。
// メモリ上の状態とKVの保存値は各操作の完了時点で必ず一致させる。
type CartUsecase struct {
	mu    sync.Mutex
	lists *store.ListStore[model.CartLine]
	lines []model.CartLine
}

// NewCartUsecase は起動時に一度だけ保存済みカートを読み込む。
// 未保存・壊れたデータは空カートになる。
func NewCartUsecase(ctx context.Context, lists *store.ListStore[model.CartLine]) *CartUsecase {
	return &CartUsecase{
		lists: lists,
		lines: lists.Load(ctx, cartKey),
	}
}

// CartItemResponse はカート1行の返却形。
type CartItemResponse struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
	Quantity int64  `json:"quantity"`
	Subtotal int64  `json:"subtotal"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total int64              `json:"total"`
}

// 追加結果。表示側がトーストを出すための材料だけ返す。
type AddToCartResult struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// Add はカートに追加（同一商品名は数量加算）。
// 既存行の価格・画像は最初に追加したときの値を保持する。
func (u *CartUsecase) Add(ctx context.Context, name string, unitPrice int64, imageURL string) (AddToCartResult, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if unitPrice < 0 {
		return AddToCartResult{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.copyLines()

	var qty int64
	found := false
	for i := range next {
		if next[i].Name == name {
			next[i].Quantity++
			qty = next[i].Quantity
			found = true
			break
		}
	}
	if !found {
		next = append(next, model.CartLine{
			Name:      name,
			UnitPrice: unitPrice,
			ImageURL:  imageURL,
			Quantity:  1,
		})
		qty = 1
	}

	//保存に成功してからメモリへ反映（途中状態を見せない）
	if err := u.lists.Save(ctx, cartKey, next); err != nil {
		return AddToCartResult{}, NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	u.lines = next

	return AddToCartResult{Name: name, Quantity: qty}, nil
}

// ChangeQuantity は数量を増減する。該当行が無ければ何もしない。
// 結果が0以下になった行はその場で取り除く（0のまま保存しない）。
func (u *CartUsecase) ChangeQuantity(ctx context.Context, name string, delta int64) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := -1
	for i := range u.lines {
		if u.lines[i].Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	next := u.copyLines()
	next[idx].Quantity += delta
	if next[idx].Quantity <= 0 {
		//行を順序を保ったまま削除
		next = append(next[:idx], next[idx+1:]...)
	}

	if err := u.lists.Save(ctx, cartKey, next); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	u.lines = next
	return nil
}

// Clear はカートを空にして保存する。
func (u *CartUsecase) Clear(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.lists.Save(ctx, cartKey, []model.CartLine{}); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	u.lines = []model.CartLine{}
	return nil
}

// Total は unitPrice×quantity の合計。空カートは0。
func (u *CartUsecase) Total() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var total int64
	for _, l := range u.lines {
		total += l.Subtotal()
	}
	return total
}

// Snapshot は追加順のコピーを返す（表示用）。
func (u *CartUsecase) Snapshot() []model.CartLine {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.copyLines()
}

// View は表示用のカート全体を作る。
func (u *CartUsecase) View() CartResponse {
	lines := u.Snapshot()

	items := make([]CartItemResponse, 0, len(lines))
	var total int64
	for _, l := range lines {
		items = append(items, CartItemResponse{
			Name:     l.Name,
			Price:    l.UnitPrice,
			ImageURL: l.ImageURL,
			Quantity: l.Quantity,
			Subtotal: l.Subtotal(),
		})
		total += l.Subtotal()
	}

	return CartResponse{Items: items, Total: total}
}

// 呼び出し側がロックを握っている前提。
func (u *CartUsecase) copyLines() []model.CartLine {
	next := make([]model.CartLine, len(u.lines))
	copy(next, u.lines)
	return next
}
