package usecase

import (
	"context"
	"net/http"
	"sync"

	"borteh/internal/domain/model"
	repo "borteh/internal/repository"
)

// CatalogUsecase は最後に取得した商品・カテゴリのスナップショットを持つ。
// Refresh のたびに丸ごと入れ替える（差分更新はしない）。
type CatalogUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository

	mu         sync.RWMutex
	products   []model.Product
	categories []model.Category
}

// DI
func NewCatalogUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
) *CatalogUsecase {
	return &CatalogUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		products:     []model.Product{},
		categories:   []model.Category{},
	}
}

// Refresh はDBから両方を取り直してスナップショットを置き換える。
// 途中で失敗した場合は古いスナップショットを保持する。
func (u *CatalogUsecase) Refresh(ctx context.Context) error {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.categoryRepo.List(ctx)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.mu.Lock()
	u.products = products
	u.categories = categories
	u.mu.Unlock()

	return nil
}

// Products はスナップショットのコピー（id desc、取得時の順序のまま）。
func (u *CatalogUsecase) Products() []model.Product {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.Product, len(u.products))
	copy(out, u.products)
	return out
}

// Categories はスナップショットのコピー（name asc）。
func (u *CatalogUsecase) Categories() []model.Category {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.Category, len(u.categories))
	copy(out, u.categories)
	return out
}

// NewArrivals は新着フラグ付き商品のみ。
func (u *CatalogUsecase) NewArrivals() []model.Product {
	all := u.Products()

	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if p.IsNewArrival {
			out = append(out, p)
		}
	}
	return out
}

// ProductsByCategory はカテゴリ名で絞り込む（"all"は全件）。
func (u *CatalogUsecase) ProductsByCategory(category string) []model.Product {
	return FilterByCategory(u.Products(), category)
}

// SearchProducts はスナップショットに対する検索。
func (u *CatalogUsecase) SearchProducts(query string) SearchResult {
	return Search(u.Products(), query)
}

// ProductsByID はID集合に含まれる商品だけ返す（お気に入り表示用）。
func (u *CatalogUsecase) ProductsByID(ids []int64) []model.Product {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	all := u.Products()
	out := make([]model.Product, 0, len(ids))
	for _, p := range all {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// CollectionResponse はカテゴリと所属商品数。
type CollectionResponse struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// Collections はカテゴリごとの商品数付き一覧（コレクション画面用）。
func (u *CatalogUsecase) Collections() []CollectionResponse {
	categories := u.Categories()
	products := u.Products()

	counts := make(map[string]int, len(categories))
	for _, p := range products {
		counts[p.Category]++
	}

	out := make([]CollectionResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CollectionResponse{Category: c, Count: counts[c.Name]})
	}
	return out
}
