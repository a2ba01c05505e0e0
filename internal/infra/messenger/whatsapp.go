package messenger

import (
	"fmt"
	"net/url"
	"strings"

	"borteh/internal/usecase"
)

// WhatsAppMessenger は注文メッセージをwa.meのディープリンクにする。
// 送信自体はリンクを開いた側で起きる（fire-and-forget）。
type WhatsAppMessenger struct{}

// DI
func NewWhatsAppMessenger() *WhatsAppMessenger {
	return &WhatsAppMessenger{}
}

func (m *WhatsAppMessenger) Send(msg usecase.OrderMessage) (string, error) {
	phone := strings.TrimSpace(msg.RecipientAddress)
	if phone == "" {
		return "", fmt.Errorf("recipient required")
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(msg.Body)), nil
}
