package model

import "time"

// Persisted keys. The session store owns the first two and always writes
// them together; the localization store owns the third.
const (
	KeyAuthToken        = "auth_token"
	KeyUser             = "user"
	KeySelectedLanguage = "selectedLanguage"
)

// KVModel mirrors the 'app_kv' table, the on-device key-value store that
// survives restarts. Values are stored as opaque strings; structured
// values are JSON-encoded by the repositories.
type KVModel struct {
	Key       string `gorm:"type:varchar(64);primary_key"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (KVModel) TableName() string {
	return "app_kv"
}
