package handler

import (
	"net/http"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 店頭側の公開API。スナップショット（カタログキャッシュ）から返す。
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// 公開カタログのルートを登録
func (h *CatalogHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.listProducts)
	e.GET("/products/search", h.search)
	e.GET("/categories", h.listCategories)
	e.GET("/collections", h.listCollections)
	e.POST("/catalog/refresh", h.refresh)
}

func (h *CatalogHandler) listProducts(c echo.Context) error {
	//new=true は新着のみ
	if c.QueryParam("new") == "true" {
		return c.JSON(http.StatusOK, echo.Map{"items": h.uc.NewArrivals()})
	}

	category := c.QueryParam("category")
	if category == "" {
		category = usecase.CategoryAll
	}

	return c.JSON(http.StatusOK, echo.Map{"items": h.uc.ProductsByCategory(category)})
}

func (h *CatalogHandler) search(c echo.Context) error {
	out := h.uc.SearchProducts(c.QueryParam("q"))
	return c.JSON(http.StatusOK, out)
}

func (h *CatalogHandler) listCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.uc.Categories()})
}

func (h *CatalogHandler) listCollections(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.uc.Collections()})
}

func (h *CatalogHandler) refresh(c echo.Context) error {
	if err := h.uc.Refresh(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.uc.Products()})
}
