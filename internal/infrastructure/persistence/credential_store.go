package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartsolar/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRecord stores one sign-in credential. The user id doubles
// as the id of the profile document in the users collection.
type credentialRecord struct {
	UserID       string    `gorm:"primaryKey;size:128;column:user_id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (credentialRecord) TableName() string {
	return "credentials"
}

// Credential is a sign-in credential as seen by the auth layer.
type Credential struct {
	UserID       string
	Email        string
	PasswordHash string
}

// CredentialStore provides lookup and storage of sign-in credentials.
type CredentialStore struct {
	db *gorm.DB
}

// NewCredentialStore creates a credential store over the given database.
func NewCredentialStore(db *Database) *CredentialStore {
	return &CredentialStore{db: db.DB}
}

// FindByEmail looks up a credential by email. Returns shared.ErrNotFound
// when no account with that email exists.
func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	var rec credentialRecord
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("%w: looking up credential: %v", shared.ErrGatewayUnavailable, err)
	}
	return &Credential{UserID: rec.UserID, Email: rec.Email, PasswordHash: rec.PasswordHash}, nil
}

// Save writes a credential, replacing any existing one for the same
// user id.
func (s *CredentialStore) Save(ctx context.Context, cred Credential) error {
	rec := credentialRecord{
		UserID:       cred.UserID,
		Email:        cred.Email,
		PasswordHash: cred.PasswordHash,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "password_hash", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("%w: saving credential: %v", shared.ErrGatewayUnavailable, err)
	}
	return nil
}
