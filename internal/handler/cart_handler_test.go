package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"borteh/internal/domain/model"
	"borteh/internal/handler"
	repo "borteh/internal/repository"
	"borteh/internal/store"
	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type memoryKV struct {
	data map[string]string
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

type stubMessenger struct{}

func (s *stubMessenger) Send(msg usecase.OrderMessage) (string, error) {
	return "https://wa.me/123?text=x", nil
}

func newCartServer() *echo.Echo {
	ctx := context.Background()
	kv := &memoryKV{data: map[string]string{}}

	cartUC := usecase.NewCartUsecase(ctx, store.NewListStore[model.CartLine](kv))
	checkoutUC := usecase.NewCheckoutUsecase(cartUC, &stubMessenger{}, "123")

	e := echo.New()
	handler.NewCartHandler(cartUC, checkoutUC).RegisterRoutes(e)
	return e
}

func postJSON(e *echo.Echo, method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCartHandler_AddAndGet(t *testing.T) {
	e := newCartServer()

	rec := postJSON(e, http.MethodPost, "/cart", `{"name":"Gold Watch","price":500,"image_url":"https://img/a.jpg"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var added handler.AddCartResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	assert.Equal(t, int64(1), added.Added.Quantity)

	//同じ商品をもう一度
	rec = postJSON(e, http.MethodPost, "/cart", `{"name":"Gold Watch","price":500,"image_url":"https://img/a.jpg"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	get := httptest.NewRecorder()
	e.ServeHTTP(get, req)
	assert.Equal(t, http.StatusOK, get.Code)

	var view usecase.CartResponse
	assert.NoError(t, json.Unmarshal(get.Body.Bytes(), &view))
	assert.Equal(t, 1, len(view.Items))
	assert.Equal(t, int64(2), view.Items[0].Quantity)
	assert.Equal(t, int64(1000), view.Total)
}

func TestCartHandler_AddValidation(t *testing.T) {
	e := newCartServer()

	rec := postJSON(e, http.MethodPost, "/cart", `{"name":"","price":500}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartHandler_ChangeQuantityAndRemove(t *testing.T) {
	e := newCartServer()

	_ = postJSON(e, http.MethodPost, "/cart", `{"name":"A","price":10}`)

	rec := postJSON(e, http.MethodPatch, "/cart", `{"name":"A","delta":-1}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var view usecase.CartResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, 0, len(view.Items))
}

// 空カートのチェックアウトは400
func TestCartHandler_CheckoutEmptyCart(t *testing.T) {
	e := newCartServer()

	rec := postJSON(e, http.MethodPost, "/cart/checkout", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cart is empty", body.Error)
}

// チェックアウト成功でカートが空になる
func TestCartHandler_CheckoutClearsCart(t *testing.T) {
	e := newCartServer()

	_ = postJSON(e, http.MethodPost, "/cart", `{"name":"A","price":10,"image_url":"https://img/a.jpg"}`)

	rec := postJSON(e, http.MethodPost, "/cart/checkout", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var out usecase.CheckoutResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "https://wa.me/123?text=x", out.Link)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	get := httptest.NewRecorder()
	e.ServeHTTP(get, req)

	var view usecase.CartResponse
	assert.NoError(t, json.Unmarshal(get.Body.Bytes(), &view))
	assert.Equal(t, 0, len(view.Items))
}
