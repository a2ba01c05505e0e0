package model

import "time"

// ローカルKVストレージの1エントリ。
// カート・お気に入り・テーマの3キーをJSON文字列で保存する。
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(255);column:key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
