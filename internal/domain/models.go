// Package domain defines the persistence models for user profiles and match
// logs. These types are mapped with GORM and form the core data layer of the
// matchmaking application.
package domain

import "time"

// Gender is the self-declared gender of a profile. Exactly two values are
// supported; a draw always targets the opposite value.
type Gender string

// Supported gender values.
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid reports whether g is one of the supported enum literals.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Opposite returns the gender a draw issued by g targets.
func (g Gender) Opposite() Gender {
	if g == GenderMale {
		return GenderFemale
	}
	return GenderMale
}

// Profile represents a submitted user profile. Profiles are anonymous: the
// only identity a client holds is the opaque ID returned at submission time.
//
// Fields:
//   - ID: stable UUID primary key (char(36)), assigned at insertion.
//   - Nickname: display name, trimmed, 1–50 characters.
//   - Age: 18–50 inclusive (enforced by validation and a DB check).
//   - Gender: "male" or "female" (enforced by DB constraint).
//   - Contact: contact handle shown to a matched user, trimmed, 1–64 chars.
//   - CreatedAt: insertion timestamp, immutable.
//
// Identical payloads submitted twice produce two distinct rows; there is no
// uniqueness constraint on profile content.
type Profile struct {
	ID        string    `json:"id"             gorm:"type:char(36);primaryKey"`
	Nickname  string    `json:"nickname"       gorm:"type:varchar(50);not null"`
	Age       int       `json:"age"            gorm:"not null;check:age BETWEEN 18 AND 50"`
	Gender    Gender    `json:"gender"         gorm:"type:varchar(8);not null;check:gender IN ('male','female')"`
	Contact   string    `json:"contact_handle" gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for Profile.
func (Profile) TableName() string { return "profiles" }

// MatchLog records one successful draw: who asked, who was shown, when, and an
// optional non-reversible fingerprint of the request origin. Rows are written
// exactly once per successful draw and never updated or deleted.
//
// The (user_id, created_at) index serves the latest-entry lookup used by the
// draw cooldown gate.
type MatchLog struct {
	ID            uint      `json:"id"              gorm:"primaryKey;autoIncrement"`
	UserID        string    `json:"user_id"         gorm:"type:char(36);not null;index:idx_user_draws,priority:1"`
	MatchedUserID string    `json:"matched_user_id" gorm:"type:char(36);not null"`
	IPHash        *string   `json:"-"               gorm:"type:varchar(32)"` // sha256(origin IP), first 32 hex chars; nil when origin unknown
	CreatedAt     time.Time `json:"created_at"      gorm:"index:idx_user_draws,priority:2"`
}

// TableName returns the database table name for MatchLog.
func (MatchLog) TableName() string { return "match_logs" }
