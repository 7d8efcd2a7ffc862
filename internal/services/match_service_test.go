package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/go-match-backend/internal/domain"
	"github.com/tbourn/go-match-backend/internal/repo"
)

func seedProfile(t *testing.T, svc *MatchService, id string, gender domain.Gender) {
	t.Helper()
	p := domain.Profile{
		ID:        id,
		Nickname:  "nick-" + id,
		Age:       25,
		Gender:    gender,
		Contact:   "wx_" + id,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.DB.Create(&p).Error; err != nil {
		t.Fatalf("seed profile %s: %v", id, err)
	}
}

func seedLog(t *testing.T, svc *MatchService, userID string, createdAt time.Time) {
	t.Helper()
	entry := domain.MatchLog{UserID: userID, MatchedUserID: "whoever", CreatedAt: createdAt}
	if err := svc.DB.Create(&entry).Error; err != nil {
		t.Fatalf("seed log for %s: %v", userID, err)
	}
}

// waitForLogs polls until the user has at least want log rows or the deadline
// expires. The log append is detached from the draw, so tests must wait.
func waitForLogs(t *testing.T, svc *MatchService, userID string, want int64) int64 {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		n, err := repo.CountMatchLogs(context.Background(), svc.DB, userID)
		if err != nil {
			t.Fatalf("count logs: %v", err)
		}
		if n >= want || time.Now().After(deadline) {
			return n
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDraw_UserNotFound(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	if _, err := svc.Draw(context.Background(), "ghost", ""); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDraw_FirstDrawSkipsCooldownGate(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)

	res, err := svc.Draw(context.Background(), "m1", "")
	if err != nil {
		t.Fatalf("first draw should pass the cooldown gate unconditionally: %v", err)
	}
	if res.Nickname != "nick-f1" || res.Age != 25 || res.Contact != "wx_f1" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestDraw_OppositeGenderOnly_NeverSelf(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "f1", domain.GenderFemale)
	seedProfile(t, svc, "m1", domain.GenderMale)

	res, err := svc.Draw(context.Background(), "f1", "")
	if err != nil {
		t.Fatalf("Draw: %v", err)
	}
	// The only eligible profile is the male one; the requester can never
	// match herself even though she satisfies no other filter.
	if res.Contact != "wx_m1" {
		t.Fatalf("expected the male candidate, got %+v", res)
	}
}

func TestDraw_RateLimitedWithinCooldown(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)
	seedLog(t, svc, "m1", time.Now().UTC().Add(-time.Second))

	if _, err := svc.Draw(context.Background(), "m1", ""); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestDraw_PassesAtExactCooldownBoundary(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)
	// Entry aged exactly one cooldown: elapsed >= cooldown, so the gate passes.
	seedLog(t, svc, "m1", time.Now().UTC().Add(-svc.Cooldown))

	if _, err := svc.Draw(context.Background(), "m1", ""); err != nil {
		t.Fatalf("draw at the 30s boundary must pass, got %v", err)
	}
}

func TestDraw_CooldownIsPerUser(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "m2", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)
	seedLog(t, svc, "m1", time.Now().UTC()) // m1 is cooling down; m2 is not

	if _, err := svc.Draw(context.Background(), "m2", ""); err != nil {
		t.Fatalf("m2 should not inherit m1's cooldown: %v", err)
	}
}

func TestDraw_EmptyPool(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "m2", domain.GenderMale)

	if _, err := svc.Draw(context.Background(), "m1", ""); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool with no female profiles, got %v", err)
	}
}

func TestDraw_AppendsLogEventually(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)

	if _, err := svc.Draw(context.Background(), "m1", "0123456789abcdef0123456789abcdef"); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	if n := waitForLogs(t, svc, "m1", 1); n != 1 {
		t.Fatalf("expected 1 log entry for m1, got %d", n)
	}
	entry, err := repo.LastMatchLog(context.Background(), svc.DB, "m1")
	if err != nil {
		t.Fatalf("LastMatchLog: %v", err)
	}
	if entry.MatchedUserID != "f1" {
		t.Fatalf("log should record the candidate: %+v", entry)
	}
	if entry.IPHash == nil || *entry.IPHash != "0123456789abcdef0123456789abcdef" {
		t.Fatalf("fingerprint not recorded: %+v", entry.IPHash)
	}
}

func TestDraw_NoFingerprintStoresNull(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)

	if _, err := svc.Draw(context.Background(), "m1", ""); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	waitForLogs(t, svc, "m1", 1)

	entry, err := repo.LastMatchLog(context.Background(), svc.DB, "m1")
	if err != nil {
		t.Fatalf("LastMatchLog: %v", err)
	}
	if entry.IPHash != nil {
		t.Fatalf("expected nil fingerprint, got %q", *entry.IPHash)
	}
}

func TestDraw_SecondDrawAfterSuccessIsRateLimited(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)

	if _, err := svc.Draw(context.Background(), "m1", ""); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	// The log append is detached; wait for it before relying on the cooldown.
	waitForLogs(t, svc, "m1", 1)

	if _, err := svc.Draw(context.Background(), "m1", ""); !errors.Is(err, ErrRateLimited) {
		t.Fatalf("immediate second draw should be rate limited, got %v", err)
	}
}

func TestDraw_ZeroCooldownFallsBackToDefault(t *testing.T) {
	svc := &MatchService{DB: newTestDB(t)} // Cooldown left zero
	if svc.cooldown() != DefaultCooldown {
		t.Fatalf("expected default cooldown, got %v", svc.cooldown())
	}
}

func TestPoolStats(t *testing.T) {
	svc := NewMatchService(newTestDB(t))
	seedProfile(t, svc, "m1", domain.GenderMale)
	seedProfile(t, svc, "f1", domain.GenderFemale)
	seedProfile(t, svc, "f2", domain.GenderFemale)

	total, byGender, err := svc.PoolStats(context.Background())
	if err != nil {
		t.Fatalf("PoolStats: %v", err)
	}
	if total != 3 || byGender[domain.GenderFemale] != 2 || byGender[domain.GenderMale] != 1 {
		t.Fatalf("unexpected stats: total=%d byGender=%v", total, byGender)
	}
}
