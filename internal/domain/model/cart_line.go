package model

// カートの明細。キーは商品名（移行元に安定IDが無い）。
// 同名の商品は1行にまとまり、quantity は常に1以上。
// JSONキーは永続化済みデータと互換にする。
type CartLine struct {
	Name      string `json:"name"`
	UnitPrice int64  `json:"price"`
	ImageURL  string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

// 明細の小計
func (l CartLine) Subtotal() int64 {
	return l.UnitPrice * l.Quantity
}
