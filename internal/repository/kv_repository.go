package repository

import "context"

// ローカルKVストレージの約束。
// キーが無いときは ErrNotFound を返す。
type KVRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}
