package usecase

import (
	"context"
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"borteh/internal/domain/model"
)

// 注文メッセージ。外部チャネルへ渡す形。
type OrderMessage struct {
	RecipientAddress string `json:"recipient_address"`
	Body             string `json:"body"`
}

// 外部メッセージチャネル（WhatsAppディープリンクなど）の約束。
// 送信はfire-and-forgetで、開くべきリンクを返す。
type Messenger interface {
	Send(msg OrderMessage) (string, error)
}

// CheckoutUsecase はカートを注文メッセージへ変換して引き渡す。
// 「整形→引き渡し確定→カートを空にする」の順序はここで守る。
type CheckoutUsecase struct {
	cart      *CartUsecase
	messenger Messenger
	recipient string
	printer   *message.Printer
}

// DI
func NewCheckoutUsecase(cart *CartUsecase, messenger Messenger, recipient string) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:      cart,
		messenger: messenger,
		recipient: recipient,
		//金額の桁区切り（Le 1,234,500）
		printer: message.NewPrinter(language.English),
	}
}

// FormatOrder は明細を注文メッセージへ整形する。
// 空カートはエラー（送信をブロックする）。
func (u *CheckoutUsecase) FormatOrder(lines []model.CartLine) (OrderMessage, error) {
	if len(lines) == 0 {
		return OrderMessage{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	var b strings.Builder
	b.WriteString("*NEW ORDER - BORTEH'S LUXURY*\n\n")
	b.WriteString("Hello Borteh, I was shopping on your website and I’d like to place an order.\n\n")

	var total int64
	for _, l := range lines {
		total += l.Subtotal()
		b.WriteString(u.printer.Sprintf("• *%s* (Qty: %d)\n", l.Name, l.Quantity))
		b.WriteString("🔗 Photo: " + l.ImageURL + "\n\n")
	}

	b.WriteString(u.printer.Sprintf("*TOTAL ESTIMATED COST: Le %d*\n\n", total))
	b.WriteString("Please confirm availability. Thank you!")

	return OrderMessage{
		RecipientAddress: u.recipient,
		Body:             b.String(),
	}, nil
}

// チェックアウト結果。Linkを開けば送信される。
type CheckoutResult struct {
	Link    string       `json:"link"`
	Message OrderMessage `json:"message"`
}

// Checkout は現在のカートを整形して引き渡し、確定後にカートを空にする。
// 整形に失敗した場合は何も送らず、カートもそのまま。
func (u *CheckoutUsecase) Checkout(ctx context.Context) (CheckoutResult, error) {
	msg, err := u.FormatOrder(u.cart.Snapshot())
	if err != nil {
		return CheckoutResult{}, err
	}

	link, err := u.messenger.Send(msg)
	if err != nil {
		return CheckoutResult{}, NewHTTPError(http.StatusBadGateway, "messenger error")
	}

	//引き渡しが確定したのでカートを空にする
	if err := u.cart.Clear(ctx); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{Link: link, Message: msg}, nil
}
