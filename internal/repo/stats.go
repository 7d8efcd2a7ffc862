// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate queries used by the
// operational stats endpoint. Each function is context-aware and safe to
// call from services or handlers.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-match-backend/internal/domain"
)

// ProfileStats returns the total number of profiles and a per-gender
// breakdown. When the table is empty, total is 0 and the map contains
// zero entries.
//
// Return values:
//   - total:    total profile rows
//   - byGender: rows per gender value (only genders present appear)
//   - err:      database error, if any
func ProfileStats(ctx context.Context, db *gorm.DB) (total int64, byGender map[domain.Gender]int64, err error) {
	if err = db.WithContext(ctx).Model(&domain.Profile{}).Count(&total).Error; err != nil {
		return 0, nil, err
	}

	byGender = make(map[domain.Gender]int64)
	if total == 0 {
		return 0, byGender, nil
	}

	var rows []struct {
		Gender domain.Gender
		N      int64
	}
	err = db.WithContext(ctx).
		Model(&domain.Profile{}).
		Select("gender, COUNT(*) AS n").
		Group("gender").
		Scan(&rows).Error
	if err != nil {
		return 0, nil, err
	}
	for _, r := range rows {
		byGender[r.Gender] = r.N
	}
	return total, byGender, nil
}
