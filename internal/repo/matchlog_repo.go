// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the MatchLog
// model.
//
// Match logs are append-only: they are written once per successful draw and
// never updated or deleted by the application. The latest entry per user
// drives the draw cooldown gate.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-match-backend/internal/domain"
)

// CreateMatchLog appends a draw record for userID against matchedUserID.
// ipHash may be nil when the request origin could not be determined; it is
// stored for abuse diagnostics only and never read by the matching logic.
//
// On success, it returns the persisted MatchLog. On failure, it returns a DB error.
func CreateMatchLog(ctx context.Context, db *gorm.DB, userID, matchedUserID string, ipHash *string) (*domain.MatchLog, error) {
	entry := &domain.MatchLog{
		UserID:        userID,
		MatchedUserID: matchedUserID,
		IPHash:        ipHash,
		CreatedAt:     time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

// LastMatchLog returns the most recent draw record for userID, ordered by
// created_at descending. If the user has never drawn, it returns ErrNotFound.
func LastMatchLog(ctx context.Context, db *gorm.DB, userID string) (*domain.MatchLog, error) {
	var entry domain.MatchLog
	err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CountMatchLogs returns the total number of draw records for userID.
// On DB error, it returns the error.
func CountMatchLogs(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.MatchLog{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}
