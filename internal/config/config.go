package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	JWTSecret string // JWT署名シークレット

	WhatsAppNumber string // 注文送信先のWhatsApp番号
	GCSBucket      string // 商品画像のバケット名

	RedisAddr string // KVストレージにRedisを使う場合のみ設定

	AdminEmail    string // 初期管理者（両方設定されたときだけ作成）
	AdminPassword string

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		WhatsAppNumber: os.Getenv("WHATSAPP_NUMBER"),
		GCSBucket:      os.Getenv("GCS_BUCKET"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GoEnv: os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.WhatsAppNumber == "" {
		return Config{}, fmt.Errorf("WHATSAPP_NUMBER is required")
	}
	if cfg.GCSBucket == "" {
		return Config{}, fmt.Errorf("GCS_BUCKET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	return cfg, nil
}
