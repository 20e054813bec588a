package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/smartsolar/backend/internal/domain/document"
	"github.com/smartsolar/backend/internal/domain/shared"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// documentRecord is the storage row behind one document. Fields live as
// a JSON blob so collections stay schemaless the way the hosted store
// they mirror is.
type documentRecord struct {
	Collection string    `gorm:"primaryKey;size:64"`
	DocID      string    `gorm:"primaryKey;size:128;column:doc_id"`
	Data       []byte    `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (documentRecord) TableName() string {
	return "documents"
}

// Ensure DocumentStore implements document.Store
var _ document.Store = (*DocumentStore)(nil)

// DocumentStore implements document.Store on top of GORM.
type DocumentStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewDocumentStore creates a document store over the given database.
func NewDocumentStore(db *Database, logger *zap.Logger) *DocumentStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentStore{db: db.DB, logger: logger}
}

// List reads the complete collection in storage order.
func (s *DocumentStore) List(ctx context.Context, col document.Collection) ([]document.Document, error) {
	var records []documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ?", string(col)).
		Order("doc_id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: listing %s: %v", shared.ErrGatewayUnavailable, col, err)
	}

	docs := make([]document.Document, 0, len(records))
	for _, rec := range records {
		doc, err := rec.toDocument()
		if err != nil {
			// A corrupt row must not take the whole collection down.
			s.logger.Warn("skipping undecodable document",
				zap.String("collection", string(col)),
				zap.String("doc_id", rec.DocID),
				zap.Error(err))
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Get performs a point-read by id.
func (s *DocumentStore) Get(ctx context.Context, col document.Collection, id string) (*document.Document, error) {
	var rec documentRecord
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", string(col), id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: reading %s/%s: %v", shared.ErrGatewayUnavailable, col, id, err)
	}

	doc, err := rec.toDocument()
	if err != nil {
		return nil, fmt.Errorf("decoding %s/%s: %w", col, id, err)
	}
	return &doc, nil
}

// Insert stores a new document and returns its generated id.
func (s *DocumentStore) Insert(ctx context.Context, col document.Collection, fields map[string]any) (string, error) {
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encoding document for %s: %w", col, err)
	}

	rec := documentRecord{
		Collection: string(col),
		DocID:      uuid.New().String(),
		Data:       data,
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return "", fmt.Errorf("%w: inserting into %s: %v", shared.ErrGatewayUnavailable, col, err)
	}
	return rec.DocID, nil
}

// Delete removes a document by id. Deleting an id that is already gone
// is not an error.
func (s *DocumentStore) Delete(ctx context.Context, col document.Collection, id string) error {
	err := s.db.WithContext(ctx).
		Where("collection = ? AND doc_id = ?", string(col), id).
		Delete(&documentRecord{}).Error
	if err != nil {
		return fmt.Errorf("%w: deleting %s/%s: %v", shared.ErrGatewayUnavailable, col, id, err)
	}
	return nil
}

// Upsert writes a document under a caller-chosen id, replacing any
// existing one. Used by seeding and by profile writes that must keep
// the identity provider's uid as the document id.
func (s *DocumentStore) Upsert(ctx context.Context, col document.Collection, id string, fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encoding document for %s: %w", col, err)
	}

	rec := documentRecord{
		Collection: string(col),
		DocID:      id,
		Data:       data,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection"}, {Name: "doc_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: upserting %s/%s: %v", shared.ErrGatewayUnavailable, col, id, err)
	}
	return nil
}

func (r documentRecord) toDocument() (document.Document, error) {
	fields := make(map[string]any)
	if err := json.Unmarshal(r.Data, &fields); err != nil {
		return document.Document{}, err
	}
	return document.Document{ID: r.DocID, Fields: fields}, nil
}
