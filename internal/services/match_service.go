// Package services – MatchService
//
// This file implements MatchService, the matching engine behind the draw
// endpoint. A draw walks a fixed gate sequence: requester lookup, cooldown
// check against the latest match log entry, opposite-gender candidate
// selection, then a detached log append. Each gate short-circuits with a
// service-level sentinel (ErrUserNotFound, ErrRateLimited, ErrEmptyPool)
// so handlers can map outcomes to HTTP results consistently.
//
// Observability: Draw is OpenTelemetry-instrumented; spans carry the
// requester id and the gate at which a draw ended.
package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/go-match-backend/internal/domain"
	"github.com/tbourn/go-match-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultCooldown is the minimum interval between draws per requester.
const DefaultCooldown = 30 * time.Second

// MatchResult is the only projection of a matched profile ever returned to a
// caller. The candidate's id (and the requester/candidate relationship) stays
// server-side.
type MatchResult struct {
	Nickname string
	Age      int
	Contact  string
}

// MatchService implements the draw use-case: cooldown enforcement and
// opposite-gender candidate selection over the profile pool.
type MatchService struct {
	// DB is the GORM handle used for all draw operations.
	DB *gorm.DB
	// Cooldown is the minimum interval between draws per requester.
	Cooldown time.Duration
}

// NewMatchService constructs a MatchService with the default 30s cooldown.
func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db, Cooldown: DefaultCooldown}
}

// Draw executes one draw for userID and returns the matched profile's public
// fields, or a sentinel describing which gate refused the request.
//
// Gate sequence, each step short-circuiting on failure:
//  1. userID must reference an existing profile (ErrUserNotFound).
//  2. The requester's most recent match log entry, if any, must be at least
//     Cooldown old (ErrRateLimited). The check is best-effort: it is not
//     serialized against concurrent draws by the same user, so two requests
//     racing inside the window can both pass. Accepted for this domain.
//  3. One profile with the opposite gender, excluding the requester, is
//     selected: arbitrary first match, no randomness guarantee
//     (ErrEmptyPool when none exists).
//  4. A match log entry (requester, candidate, timestamp, optional origin
//     fingerprint) is appended on a detached goroutine. Its failure is
//     logged and never turns a found match into an error response.
//
// fingerprint is an optional non-reversible hash of the request origin; pass
// "" when unknown. It is stored for abuse diagnostics only.
func (s *MatchService) Draw(ctx context.Context, userID, fingerprint string) (*MatchResult, error) {
	tr := otel.Tracer("services/MatchService")
	ctx, span := tr.Start(ctx, "Draw",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	// 1) Identity gate.
	requester, err := repo.GetProfile(ctx, s.DB, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			span.SetAttributes(attribute.String("draw.outcome", "user_not_found"))
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 2) Cooldown gate.
	last, err := repo.LastMatchLog(ctx, s.DB, userID)
	switch {
	case err == nil:
		if elapsed := time.Now().UTC().Sub(last.CreatedAt); elapsed < s.cooldown() {
			span.SetAttributes(attribute.String("draw.outcome", "rate_limited"))
			return nil, ErrRateLimited
		}
	case errors.Is(err, repo.ErrNotFound):
		// First draw for this user; the gate passes unconditionally.
	default:
		return nil, err
	}

	// 3) Candidate gate.
	candidate, err := repo.FindCandidate(ctx, s.DB, requester.Gender.Opposite(), userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			span.SetAttributes(attribute.String("draw.outcome", "empty_pool"))
			return nil, ErrEmptyPool
		}
		return nil, err
	}

	// 4) Detached log append. context.WithoutCancel keeps the write alive
	// when the caller disconnects before it lands.
	go s.appendLog(context.WithoutCancel(ctx), userID, candidate.ID, fingerprint)

	span.SetAttributes(attribute.String("draw.outcome", "matched"))
	return &MatchResult{
		Nickname: candidate.Nickname,
		Age:      candidate.Age,
		Contact:  candidate.Contact,
	}, nil
}

// PoolStats returns the profile pool totals for the stats endpoint.
func (s *MatchService) PoolStats(ctx context.Context) (int64, map[domain.Gender]int64, error) {
	return repo.ProfileStats(ctx, s.DB)
}

// cooldown returns the configured cooldown, falling back to the default when
// the service was constructed with a zero value.
func (s *MatchService) cooldown() time.Duration {
	if s.Cooldown > 0 {
		return s.Cooldown
	}
	return DefaultCooldown
}

// appendLog writes the draw record and logs (only) on failure. It runs off
// the request path; callers never observe its outcome.
func (s *MatchService) appendLog(ctx context.Context, userID, matchedUserID, fingerprint string) {
	var ipHash *string
	if fingerprint != "" {
		ipHash = &fingerprint
	}
	if _, err := repo.CreateMatchLog(ctx, s.DB, userID, matchedUserID, ipHash); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("match log append failed")
	}
}
