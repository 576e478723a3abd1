package services

import (
	"encoding/json"

	"link-organizer-system/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Storage keys. One flat namespace, all keys independent.
const (
	KeyLinks            = "personal-links"
	KeyProfile          = "user-profile"
	KeyMissions         = "user-missions"
	KeyCurrency         = "user-currency"
	KeyTransactions     = "coin-transactions"
	KeyPageTitle        = "pageTitle"
	KeyBackground       = "selected-background"
	KeyCustomBackground = "custom-background"
	KeyFont             = "selected-font"
)

// AllKeys lists every storage key, for full-board snapshots.
var AllKeys = []string{
	KeyLinks,
	KeyProfile,
	KeyMissions,
	KeyCurrency,
	KeyTransactions,
	KeyPageTitle,
	KeyBackground,
	KeyCustomBackground,
	KeyFont,
}

// Store is the persistence port every service depends on. Load reports false
// when the key is absent or the stored blob cannot be read, and the caller
// substitutes a default; Save failures are logged and swallowed, leaving the
// in-memory state as the source of truth for the rest of the session.
// There are no retries and no atomicity across keys.
type Store interface {
	Load(key string, out any) bool
	Save(key string, value any)
	LoadRaw(key string) (json.RawMessage, bool)
}

// GormStore persists blobs into the kv_records table.
type GormStore struct {
	DB  *gorm.DB
	log *zap.Logger
}

func NewGormStore(db *gorm.DB, log *zap.Logger) *GormStore {
	return &GormStore{DB: db, log: log}
}

func (s *GormStore) Load(key string, out any) bool {
	raw, ok := s.LoadRaw(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.log.Warn("corrupt stored blob, using default", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *GormStore) LoadRaw(key string) (json.RawMessage, bool) {
	var rec models.KVRecord
	err := s.DB.First(&rec, "key = ?", key).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false
	}
	if err != nil {
		s.log.Warn("storage read failed, using default", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return json.RawMessage(rec.Value), true
}

func (s *GormStore) Save(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("storage marshal failed, keeping in-memory state", zap.String("key", key), zap.Error(err))
		return
	}
	rec := models.KVRecord{Key: key, Value: string(data)}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		s.log.Warn("storage write failed, keeping in-memory state", zap.String("key", key), zap.Error(err))
	}
}
