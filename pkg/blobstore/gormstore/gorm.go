package gormstore

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"team-notes-be/pkg/blobstore"
)

// Blob is the single table backing the postgres driver: one row per
// collection key, the whole serialized collection in a jsonb column.
type Blob struct {
	Key   string         `gorm:"primaryKey;type:varchar(255)"`
	Value datatypes.JSON `gorm:"type:jsonb;not null"`
}

func (Blob) TableName() string {
	return "blobs"
}

// Store keeps the whole-collection read/replace contract on top of
// postgres. Lookups inside a collection still happen in memory; the
// table is a durability surface, not a query surface.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Blob{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var blob Blob
	err := s.db.WithContext(ctx).First(&blob, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(blob.Value), true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	blob := Blob{Key: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&blob).Error
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Blob{}, "key = ?", key).Error
}

var _ blobstore.Store = (*Store)(nil)
