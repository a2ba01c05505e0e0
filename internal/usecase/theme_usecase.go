package usecase

import (
	"context"
	"errors"
	"net/http"

	"borteh/internal/repository"
)

// 永続化キー（移行元のlocalStorageキーと互換）
const themeKey = "theme"

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ThemeUsecase は表示テーマをKVストレージへ保存する。
type ThemeUsecase struct {
	kv repository.KVRepository
}

// DI
func NewThemeUsecase(kv repository.KVRepository) *ThemeUsecase {
	return &ThemeUsecase{kv: kv}
}

// Current は保存済みテーマを返す。未保存・不正値は light。
func (u *ThemeUsecase) Current(ctx context.Context) string {
	v, err := u.kv.Get(ctx, themeKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			//読めない場合もデフォルトへ倒す
			return ThemeLight
		}
		return ThemeLight
	}

	if v != ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Toggle はテーマを反転して保存し、新しいテーマを返す。
func (u *ThemeUsecase) Toggle(ctx context.Context) (string, error) {
	next := ThemeDark
	if u.Current(ctx) == ThemeDark {
		next = ThemeLight
	}

	if err := u.kv.Set(ctx, themeKey, next); err != nil {
		return "", NewHTTPError(http.StatusInternalServerError, "storage error")
	}
	return next, nil
}
