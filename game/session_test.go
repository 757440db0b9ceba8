package game

import (
	"path"
	"testing"
	"time"

	"go.etcd.io/bbolt"

	"godreidel/config"
	"godreidel/storage"
)

func openTestDB(t *testing.T) *bbolt.DB {
	t.Helper()
	db, err := storage.OpenDB(path.Join(t.TempDir(), "spins.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestNewSession_SeedHandling(t *testing.T) {
	db := openTestDB(t)
	session, err := NewSession(&config.Config{Seed: 42, SessionName: "seeded"}, db)
	if err != nil {
		t.Fatal(err)
	}
	if session.Seed != 42 {
		t.Fatal("configured seed ignored:", session.Seed)
	}
	// an unset seed gets a random non-zero one
	session, err = NewSession(&config.Config{SessionName: "unseeded"}, db)
	if err != nil {
		t.Fatal(err)
	}
	if session.Seed == 0 {
		t.Fatal("no seed picked")
	}
	// a seed whose low 32 bits are zero cannot construct a generator
	if _, err := NewSession(&config.Config{Seed: 0x100000000}, db); err == nil {
		t.Fatal("masked-to-zero seed accepted")
	}
}

func TestSession_SpinLimit(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{
		Seed:        12345,
		Interval:    "5ms",
		MaxSpins:    20,
		SessionName: "limited",
	}
	session, err := NewSession(cfg, db)
	if err != nil {
		t.Fatal(err)
	}
	session.Start()
	deadline := time.Now().Add(10 * time.Second)
	for uint64(session.TotalSpins()) < cfg.MaxSpins && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	// give the loop a moment to overshoot, if it was going to
	time.Sleep(50 * time.Millisecond)
	session.Stop()
	if total := uint64(session.TotalSpins()); total != cfg.MaxSpins {
		t.Fatal("spin count wrong:", total)
	}
	counts, err := storage.SessionCounts(db, "limited")
	if err != nil {
		t.Fatal(err)
	}
	var recorded uint64
	for _, count := range counts {
		recorded += count
	}
	if recorded != cfg.MaxSpins {
		t.Fatal("recorded spins wrong:", recorded)
	}
}

func TestSession_StartStopIdempotent(t *testing.T) {
	db := openTestDB(t)
	session, err := NewSession(&config.Config{Seed: 7, Interval: "1h", SessionName: "idle"}, db)
	if err != nil {
		t.Fatal(err)
	}
	session.Start()
	session.Start()
	session.Stop()
	session.Stop()
}
