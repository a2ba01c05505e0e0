package realtime

import (
	"sync"

	"borteh/internal/domain/model"
)

// ProductFeed は商品INSERTのプロセス内配信。
// 購読者が遅い場合は取りこぼす（通知用途なので欠落を許容）。
type ProductFeed struct {
	mu   sync.Mutex
	subs map[int]chan model.Product
	next int
}

func NewProductFeed() *ProductFeed {
	return &ProductFeed{subs: map[int]chan model.Product{}}
}

// Publish は新規INSERTを全購読者へ流す。ブロックしない。
func (f *ProductFeed) Publish(p model.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ch := range f.subs {
		select {
		case ch <- p:
		default:
			//バッファ満杯なら捨てる
		}
	}
}

// Subscribe は購読チャネルと解除関数を返す。
func (f *ProductFeed) Subscribe(buf int) (<-chan model.Product, func()) {
	if buf < 1 {
		buf = 1
	}

	f.mu.Lock()
	id := f.next
	f.next++
	ch := make(chan model.Product, buf)
	f.subs[id] = ch
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		if c, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(c)
		}
		f.mu.Unlock()
	}
	return ch, cancel
}
