package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"borteh/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 新着通知のHTTP。バッジ取得とSSEストリーム。
type NotificationHandler struct {
	notifier *usecase.NewArrivalNotifier
}

// DI
func NewNotificationHandler(notifier *usecase.NewArrivalNotifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// /notifications を登録
func (h *NotificationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/notifications/badge", h.badge)
	e.POST("/notifications/badge/clear", h.clearBadge)
	e.GET("/notifications/stream", h.stream)
}

func (h *NotificationHandler) badge(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"unread": h.notifier.Badge()})
}

func (h *NotificationHandler) clearBadge(c echo.Context) error {
	h.notifier.ClearBadge()
	return c.JSON(http.StatusOK, echo.Map{"unread": h.notifier.Badge()})
}

// INSERTフィードをSSEで流す。新着フラグ付きの商品のみ。
func (h *NotificationHandler) stream(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := h.notifier.Subscribe(16)
	defer cancel()

	for {
		select {
		case <-c.Request().Context().Done():
			return nil
		case p, ok := <-ch:
			if !ok {
				return nil
			}
			if !p.IsNewArrival {
				continue
			}

			data, err := json.Marshal(p)
			if err != nil {
				continue
			}
			fmt.Fprintf(res, "event: new-arrival\ndata: %s\n\n", data)
			res.Flush()
		}
	}
}
