package usecase

import (
	"context"
	"sync"

	"borteh/internal/domain/model"
	"borteh/internal/realtime"
)

// NewArrivalNotifier は商品INSERTのフィードを購読し、
// 新着フラグ付きの商品を数えて未読バッジにする。
// カート・お気に入りの正しさには関与しない（通知専用）。
type NewArrivalNotifier struct {
	feed *realtime.ProductFeed

	mu     sync.Mutex
	unread int64
}

// DI
func NewNewArrivalNotifier(feed *realtime.ProductFeed) *NewArrivalNotifier {
	return &NewArrivalNotifier{feed: feed}
}

// Start はフィードの購読を開始する。ctx終了で止まる。
func (n *NewArrivalNotifier) Start(ctx context.Context) {
	ch, cancel := n.feed.Subscribe(16)

	go func() {
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-ch:
				if !ok {
					return
				}
				n.Notify(p)
			}
		}
	}()
}

// Notify はINSERTされた商品を1件処理する。
// 新着フラグの無い商品は無視する。
func (n *NewArrivalNotifier) Notify(p model.Product) {
	if !p.IsNewArrival {
		return
	}

	n.mu.Lock()
	n.unread++
	n.mu.Unlock()
}

// Badge は未読の新着数。
func (n *NewArrivalNotifier) Badge() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.unread
}

// ClearBadge はユーザーが画面を見たときに呼ぶ。
func (n *NewArrivalNotifier) ClearBadge() {
	n.mu.Lock()
	n.unread = 0
	n.mu.Unlock()
}

// Subscribe はSSE配信用にフィードをそのまま購読させる。
func (n *NewArrivalNotifier) Subscribe(buf int) (<-chan model.Product, func()) {
	return n.feed.Subscribe(buf)
}
