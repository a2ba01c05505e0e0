package handler

import (
	"net/http"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc       *usecase.CartUsecase
	checkout *usecase.CheckoutUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, checkout *usecase.CheckoutUsecase) *CartHandler {
	return &CartHandler{uc: uc, checkout: checkout}
}

type AddCartRequest struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	ImageURL string `json:"image_url"`
}

type ChangeQuantityRequest struct {
	Name  string `json:"name"`
	Delta int64  `json:"delta"`
}

// 追加の結果（トースト用）とカート全体を返す
type AddCartResponse struct {
	Added usecase.AddToCartResult `json:"added"`
	Cart  usecase.CartResponse    `json:"cart"`
}

// /cart を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/cart", h.getCart)
	e.POST("/cart", h.addToCart)
	e.PATCH("/cart", h.changeQuantity)
	e.DELETE("/cart", h.clear)
	e.POST("/cart/checkout", h.checkoutOrder)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.View())
}

func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	added, err := h.uc.Add(c.Request().Context(), req.Name, req.Price, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, AddCartResponse{Added: added, Cart: h.uc.View()})
}

func (h *CartHandler) changeQuantity(c echo.Context) error {
	var req ChangeQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	//該当行が無い場合もエラーにしない（no-op）
	if err := h.uc.ChangeQuantity(c.Request().Context(), req.Name, req.Delta); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.uc.View())
}

func (h *CartHandler) clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, h.uc.View())
}

func (h *CartHandler) checkoutOrder(c echo.Context) error {
	out, err := h.checkout.Checkout(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
