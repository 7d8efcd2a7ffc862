package repo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tbourn/go-match-backend/internal/domain"
)

func TestOpenSQLite_ErrorWhenParentDirMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist", "app.db")
	if _, err := OpenSQLite(missing); err == nil {
		t.Fatalf("expected error for missing parent directory")
	}
}

func TestOpenSQLite_AndAutoMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	// Both tables usable after migration.
	if err := db.Create(&domain.Profile{ID: "p1", Nickname: "N", Age: 20, Gender: domain.GenderMale, Contact: "c"}).Error; err != nil {
		t.Fatalf("insert profile: %v", err)
	}
	if err := db.Create(&domain.MatchLog{UserID: "p1", MatchedUserID: "p2"}).Error; err != nil {
		t.Fatalf("insert match log: %v", err)
	}
}

func TestOpenSQLite_RelativePathInCwd(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	db, err := OpenSQLite("rel.db")
	if err != nil {
		t.Fatalf("OpenSQLite relative: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
