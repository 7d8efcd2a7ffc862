// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Profile
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a profile is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/go-match-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateProfile inserts a new Profile row with the given (already validated)
// fields. The profile ID is a randomly generated UUID, and CreatedAt is set
// to UTC here, not by the caller.
//
// On success, it returns the persisted Profile. On failure, it returns a DB error.
func CreateProfile(ctx context.Context, db *gorm.DB, nickname string, age int, gender domain.Gender, contact string) (*domain.Profile, error) {
	p := &domain.Profile{
		ID:        uuid.NewString(),
		Nickname:  nickname,
		Age:       age,
		Gender:    gender,
		Contact:   contact,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// GetProfile fetches a single profile by its ID. If the record does not
// exist, it returns ErrNotFound. On other DB errors, the raw error is
// returned.
func GetProfile(ctx context.Context, db *gorm.DB, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindCandidate returns one profile with the requested gender, excluding
// excludeID (the requester). If no eligible row exists, it returns
// ErrNotFound.
//
// Selection is "first row matching the filter" with no ORDER BY: the store
// decides which eligible row comes back. Callers must not assume uniform
// randomness.
func FindCandidate(ctx context.Context, db *gorm.DB, gender domain.Gender, excludeID string) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).
		Where("gender = ? AND id <> ?", gender, excludeID).
		Limit(1).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
