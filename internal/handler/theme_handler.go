package handler

import (
	"net/http"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /themeのHTTP
type ThemeHandler struct {
	uc *usecase.ThemeUsecase
}

// DI
func NewThemeHandler(uc *usecase.ThemeUsecase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// /theme を登録
func (h *ThemeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/theme", h.current)
	e.POST("/theme/toggle", h.toggle)
}

func (h *ThemeHandler) current(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"theme": h.uc.Current(c.Request().Context())})
}

func (h *ThemeHandler) toggle(c echo.Context) error {
	theme, err := h.uc.Toggle(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"theme": theme})
}
