package store

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record é a linha única de cada coleção (payload JSON por chave).
type Record struct {
	Key       string    `gorm:"primaryKey;size:64" json:"key"`
	Payload   string    `gorm:"type:text" json:"payload"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Load(ctx context.Context, key string, dest any) {
	var rec Record
	if err := s.db.WithContext(ctx).First(&rec, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("store: load %q failed, keeping default: %v", key, err)
		}
		return
	}

	if err := json.Unmarshal([]byte(rec.Payload), dest); err != nil {
		log.Printf("store: decode %q failed, keeping default: %v", key, err)
	}
}

func (s *GormStore) Save(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("store: encode %q failed, dropping write: %v", key, err)
		return
	}

	rec := Record{Key: key, Payload: string(raw)}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&rec).Error

	if err != nil {
		log.Printf("store: save %q failed, dropping write: %v", key, err)
	}
}

var _ Store = (*GormStore)(nil)
