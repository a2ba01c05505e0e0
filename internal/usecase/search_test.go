package usecase_test

import (
	"testing"

	"borteh/internal/domain/model"
	"borteh/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Gold Watch", Category: "Watches"},
		{ID: 2, Name: "Silver Watch", Category: "Watches"},
		{ID: 3, Name: "Leather Bag", Category: "Bags"},
	}
}

// "all" は全件
func TestFilterByCategory_All(t *testing.T) {
	out := usecase.FilterByCategory(sampleProducts(), usecase.CategoryAll)
	assert.Equal(t, 3, len(out))
}

// 完全一致（大文字小文字区別あり）
func TestFilterByCategory_ExactCaseSensitive(t *testing.T) {
	out := usecase.FilterByCategory(sampleProducts(), "Watches")
	assert.Equal(t, 2, len(out))

	//小文字では一致しない
	out = usecase.FilterByCategory(sampleProducts(), "watches")
	assert.Equal(t, 0, len(out))
}

func TestFilterByCategory_UnknownIsEmpty(t *testing.T) {
	out := usecase.FilterByCategory(sampleProducts(), "Shoes")
	assert.NotNil(t, out)
	assert.Equal(t, 0, len(out))
}

// 空クエリは「検索UIを出さない」
func TestSearch_EmptyQueryHidesResults(t *testing.T) {
	for _, q := range []string{"", "   ", "\t"} {
		out := usecase.Search(sampleProducts(), q)
		assert.False(t, out.Visible)
		assert.Equal(t, 0, len(out.Items))
	}
}

// 該当なしは「表示するが空」。空クエリと区別する
func TestSearch_NoMatchIsVisibleAndEmpty(t *testing.T) {
	out := usecase.Search(sampleProducts(), "diamond")
	assert.True(t, out.Visible)
	assert.Equal(t, 0, len(out.Items))
}

// 名前・カテゴリどちらにも部分一致（大文字小文字無視）
func TestSearch_MatchesNameOrCategory(t *testing.T) {
	out := usecase.Search(sampleProducts(), "GOLD")
	assert.True(t, out.Visible)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(1), out.Items[0].ID)

	//カテゴリ名にも当たる
	out = usecase.Search(sampleProducts(), "bag")
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(3), out.Items[0].ID)

	//"watch" は名前2件とカテゴリ2件だが重複しない
	out = usecase.Search(sampleProducts(), "watch")
	assert.Equal(t, 2, len(out.Items))
}

// 同じ入力には同じ結果
func TestSearch_Deterministic(t *testing.T) {
	a := usecase.Search(sampleProducts(), "watch")
	b := usecase.Search(sampleProducts(), "watch")
	assert.Equal(t, a, b)
}
