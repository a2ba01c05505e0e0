package handler

import (
	"net/http"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /favoritesのHTTP
type FavoritesHandler struct {
	uc      *usecase.FavoritesUsecase
	catalog *usecase.CatalogUsecase
}

// DI
func NewFavoritesHandler(uc *usecase.FavoritesUsecase, catalog *usecase.CatalogUsecase) *FavoritesHandler {
	return &FavoritesHandler{uc: uc, catalog: catalog}
}

type ToggleFavoriteRequest struct {
	ID int64 `json:"id"`
}

// /favorites を登録
func (h *FavoritesHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/favorites", h.list)
	e.POST("/favorites/toggle", h.toggle)
}

// IDリストとカタログ上の商品を両方返す（ウィッシュリスト表示用）
func (h *FavoritesHandler) list(c echo.Context) error {
	ids := h.uc.Snapshot()

	return c.JSON(http.StatusOK, echo.Map{
		"ids":   ids,
		"items": h.catalog.ProductsByID(ids),
	})
}

func (h *FavoritesHandler) toggle(c echo.Context) error {
	var req ToggleFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if req.ID <= 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	fav, err := h.uc.Toggle(c.Request().Context(), req.ID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"id": req.ID, "favorite": fav})
}
