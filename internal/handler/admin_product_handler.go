package handler

import (
	"io"
	"net/http"
	"strconv"

	"borteh/internal/middleware"
	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	ID int64 `json:"id,omitempty"`
	OK bool  `json:"ok"`
}

// JWTミドルウェアが入れたuser_idを取り出す
func getUserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(middleware.CtxUserIDKey)
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}

// multipartの画像パートを読む。パートが無い場合はnilを返す（エラーにしない）。
func readImagePart(c echo.Context) (data []byte, contentType string, err error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, fh.Header.Get("Content-Type"), nil
}

// 管理画面の商品CRUD。AuthJWT + AdminRoleGuard配下。
type AdminProductHandler struct {
	uc      *usecase.ProductUsecase
	catalog *usecase.CatalogUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase, catalog *usecase.CatalogUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, catalog: catalog}
}

// /admin/products を登録
func (h *AdminProductHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.delete)
}

// createはmultipart/form-data（画像必須）
func (h *AdminProductHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	price, err := strconv.ParseInt(c.FormValue("price"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}
	stock, err := strconv.ParseInt(c.FormValue("stock"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid stock"})
	}

	image, contentType, err := readImagePart(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
	}

	id, err := h.uc.AdminCreateProduct(c.Request().Context(), userID, usecase.AdminCreateProductInput{
		Name:             c.FormValue("name"),
		Description:      c.FormValue("description"),
		Price:            price,
		Stock:            stock,
		Category:         c.FormValue("category"),
		IsNewArrival:     c.FormValue("is_new_arrival") == "true",
		Image:            image,
		ImageContentType: contentType,
	})
	if err != nil {
		return writeError(c, err)
	}

	//店頭スナップショットを更新（失敗しても作成は成立）
	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusCreated, SuccessResponse{ID: id, OK: true})
}

type AdminUpdateProductRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        int64  `json:"price"`
	Stock        int64  `json:"stock"`
	Category     string `json:"category"`
	IsNewArrival bool   `json:"is_new_arrival"`
}

func (h *AdminProductHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	var req AdminUpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.AdminUpdateProduct(c.Request().Context(), userID, productID, usecase.AdminUpdateProductInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Stock:        req.Stock,
		Category:     req.Category,
		IsNewArrival: req.IsNewArrival,
	})
	if err != nil {
		return writeError(c, err)
	}

	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{ID: productID, OK: true})
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	if err := h.uc.AdminDeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return writeError(c, err)
	}

	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{ID: productID, OK: true})
}
