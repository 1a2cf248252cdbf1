// internal/identity/store.go
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Credential struct {
	ID           string    `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshSession tracks one issued refresh token by its jti.
type RefreshSession struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index;not null"`
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite file at path and migrates the identity tables.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Credential{}, &RefreshSession{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) CreateCredential(ctx context.Context, c *Credential) error {
	var existing Credential
	err := s.db.WithContext(ctx).Where("email = ?", c.Email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *Store) FindByEmail(ctx context.Context, email string) (*Credential, error) {
	return s.first(ctx, "email = ?", email)
}

func (s *Store) FindByID(ctx context.Context, id string) (*Credential, error) {
	return s.first(ctx, "id = ?", id)
}

func (s *Store) first(ctx context.Context, query string, arg string) (*Credential, error) {
	var c Credential
	err := s.db.WithContext(ctx).Where(query, arg).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res := s.db.WithContext(ctx).Model(&Credential{}).Where("id = ?", id).Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteCredential removes the user and every refresh session it holds.
func (s *Store) DeleteCredential(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&RefreshSession{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&Credential{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}

func (s *Store) CreateSession(ctx context.Context, rs *RefreshSession) error {
	return s.db.WithContext(ctx).Create(rs).Error
}

// ActiveSession returns the refresh session with the given jti if it is
// neither revoked nor expired.
func (s *Store) ActiveSession(ctx context.Context, id string, now time.Time) (*RefreshSession, error) {
	var rs RefreshSession
	err := s.db.WithContext(ctx).Where("id = ? AND revoked_at IS NULL", id).First(&rs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionRevoked
	}
	if err != nil {
		return nil, err
	}
	if !rs.ExpiresAt.After(now) {
		return nil, ErrSessionRevoked
	}
	return &rs, nil
}

func (s *Store) RevokeSession(ctx context.Context, id string, at time.Time) error {
	return s.db.WithContext(ctx).Model(&RefreshSession{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at).Error
}
