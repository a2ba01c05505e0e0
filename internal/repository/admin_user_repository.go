package repository

import (
	"borteh/internal/domain/model"
	"context"
	"errors"
)

// 管理者が見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 管理者の保存・取得を約束
type AdminUserRepository interface {
	//新規管理者作成
	Create(ctx context.Context, user *model.AdminUser) error
	//メールから管理者を一件取得する。
	FindByEmail(ctx context.Context, email string) (*model.AdminUser, error)
	// 最後のログイン更新など
	Update(ctx context.Context, user *model.AdminUser) error
}
