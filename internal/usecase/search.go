package usecase

import (
	"strings"

	"borteh/internal/domain/model"
)

// "all" は全件を指す特別なカテゴリ名。
const CategoryAll = "all"

// FilterByCategory はカテゴリ名の完全一致（大文字小文字区別あり）で絞り込む。
// "all" は入力をそのまま返す。
func FilterByCategory(products []model.Product, category string) []model.Product {
	if category == CategoryAll {
		return products
	}

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchResult は検索結果。
// Visible=false は「検索UIを出さない」（空クエリ）、
// Visible=true かつ Items空 は「該当なしを表示する」。区別して返す。
type SearchResult struct {
	Visible bool            `json:"visible"`
	Items   []model.Product `json:"items"`
}

// Search は商品名またはカテゴリ名への部分一致（大文字小文字無視）。
// 同じ入力には常に同じ結果を返す。
func Search(products []model.Product, query string) SearchResult {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return SearchResult{Visible: false, Items: []model.Product{}}
	}

	items := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) {
			items = append(items, p)
		}
	}

	return SearchResult{Visible: true, Items: items}
}
