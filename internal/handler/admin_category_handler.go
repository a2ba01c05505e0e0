package handler

import (
	"net/http"
	"strconv"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 管理画面のカテゴリCRUD。AuthJWT + AdminRoleGuard配下。
type AdminCategoryHandler struct {
	uc      *usecase.CategoryUsecase
	catalog *usecase.CatalogUsecase
}

// DI
func NewAdminCategoryHandler(uc *usecase.CategoryUsecase, catalog *usecase.CatalogUsecase) *AdminCategoryHandler {
	return &AdminCategoryHandler{uc: uc, catalog: catalog}
}

// /admin/categories を登録
func (h *AdminCategoryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/categories", h.create)
	g.PUT("/categories/:id", h.update)
	g.DELETE("/categories/:id", h.delete)
}

// createはmultipart/form-data（画像必須）
func (h *AdminCategoryHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	image, contentType, err := readImagePart(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
	}

	id, err := h.uc.AdminCreateCategory(c.Request().Context(), userID, usecase.AdminCreateCategoryInput{
		Name:             c.FormValue("name"),
		Image:            image,
		ImageContentType: contentType,
	})
	if err != nil {
		return writeError(c, err)
	}

	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusCreated, SuccessResponse{ID: id, OK: true})
}

// updateもmultipart。画像パートは任意（差し替え時のみ）。
func (h *AdminCategoryHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
	}

	image, contentType, err := readImagePart(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image"})
	}

	err = h.uc.AdminUpdateCategory(c.Request().Context(), userID, categoryID, usecase.AdminUpdateCategoryInput{
		Name:             c.FormValue("name"),
		Image:            image,
		ImageContentType: contentType,
	})
	if err != nil {
		return writeError(c, err)
	}

	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{ID: categoryID, OK: true})
}

func (h *AdminCategoryHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
	}

	if err := h.uc.AdminDeleteCategory(c.Request().Context(), userID, categoryID); err != nil {
		return writeError(c, err)
	}

	_ = h.catalog.Refresh(c.Request().Context())

	return c.JSON(http.StatusOK, SuccessResponse{ID: categoryID, OK: true})
}
