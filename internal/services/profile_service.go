// Package services – ProfileService
//
// This file implements the ProfileService, which owns profile submission.
// It normalizes and validates the raw payload (every rule is checked so one
// response names all invalid fields), then persists the profile via the
// repository. Validation failures and storage faults are kept distinct so
// handlers can tell "your input is bad" from "try again later".
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/tbourn/go-match-backend/internal/domain"
	"github.com/tbourn/go-match-backend/internal/repo"

	"golang.org/x/text/unicode/norm"
)

// Field length bounds for submitted profiles.
const (
	MaxNicknameLen = 50
	MaxContactLen  = 64
	MinAge         = 18
	MaxAge         = 50
)

// SubmitInput is the raw, untrusted profile payload handed to Submit.
// Age arrives already coerced to an int by the transport layer (JSON numbers
// and numeric strings are both accepted there).
type SubmitInput struct {
	Nickname string
	Age      int
	Gender   string
	Contact  string
}

// ProfileService validates and persists submitted profiles.
type ProfileService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewProfileService constructs a ProfileService bound to db.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{DB: db}
}

// Submit validates and normalizes in, then inserts a new profile.
//
// Rules (all must hold):
//   - nickname: trimmed, NFC-normalized, 1–50 runes
//   - age: 18–50 inclusive
//   - gender: "male" or "female"
//   - contact_handle: trimmed, NFC-normalized, 1–64 runes
//
// On any rule failure Submit returns a *ValidationError naming every failing
// field and touches no storage. Storage faults pass through unwrapped so the
// handler can surface them as a retryable server error. No partial or
// unvalidated row is ever inserted.
func (s *ProfileService) Submit(ctx context.Context, in SubmitInput) (*domain.Profile, error) {
	nickname := normalizeText(in.Nickname)
	contact := normalizeText(in.Contact)
	gender := domain.Gender(strings.TrimSpace(in.Gender))

	var bad []string
	if n := utf8.RuneCountInString(nickname); n == 0 || n > MaxNicknameLen {
		bad = append(bad, "nickname")
	}
	if in.Age < MinAge || in.Age > MaxAge {
		bad = append(bad, "age")
	}
	if !gender.IsValid() {
		bad = append(bad, "gender")
	}
	if n := utf8.RuneCountInString(contact); n == 0 || n > MaxContactLen {
		bad = append(bad, "contact_handle")
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	return repo.CreateProfile(ctx, s.DB, nickname, in.Age, gender, contact)
}

// normalizeText trims surrounding whitespace and applies Unicode NFC so that
// visually identical input is stored in one canonical form.
func normalizeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
