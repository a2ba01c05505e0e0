package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"borteh/internal/domain/model"
	"borteh/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordTooShort   = errors.New("password too short")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// SeedAdminUsecase は起動時に初期管理者を用意する。
// ダッシュボードに会員登録は無いので、環境変数から1件だけ作る。
type SeedAdminUsecase struct {
	userRepo repository.AdminUserRepository
	hasher   PasswordHasher
	clock    Clock
}

// DI
func NewSeedAdminUsecase(
	userRepo repository.AdminUserRepository,
	hasher PasswordHasher,
	clock Clock,
) *SeedAdminUsecase {
	return &SeedAdminUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		clock:    clock,
	}
}

// EnsureAdmin は同じemailの管理者が居なければ作成する。居れば何もしない。
func (u *SeedAdminUsecase) EnsureAdmin(ctx context.Context, email string, password string) error {
	// emailの形式チェック
	if !isValidEmailFormat(email) {
		return ErrInvalidEmailFormat
	}

	// passwordの長さチェック（最小12文字）
	if len(password) < 12 {
		return ErrPasswordTooShort
	}

	// 既存チェック
	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(password)
	if err != nil {
		return err
	}

	now := u.clock.Now()
	admin := &model.AdminUser{
		Email:        strings.TrimSpace(email),
		PasswordHash: hashed,
		Role:         model.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return u.userRepo.Create(ctx, admin)
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}
