package charting

import (
	"bytes"
	"path"
	"strings"
	"testing"
	"time"

	"godreidel/dreidel"
	"godreidel/storage"
)

func TestService_Render(t *testing.T) {
	db, err := storage.OpenDB(path.Join(t.TempDir(), "spins.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	now := time.Now()
	for i, face := range []dreidel.Face{dreidel.Gimel, dreidel.Nun, dreidel.Gimel} {
		if err := storage.WriteSpin(db, "charted", now.Add(time.Duration(i)*time.Second), face); err != nil {
			t.Fatal(err)
		}
	}
	service := NewService(storage.NewSummaryCache(db))
	var buf bytes.Buffer
	if err := service.Render("charted", &buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("rendered chart is empty")
	}
	for _, face := range dreidel.Faces {
		if !strings.Contains(buf.String(), face.String()) {
			t.Fatal("chart missing face:", face)
		}
	}
}

func TestService_Render_MissingSession(t *testing.T) {
	db, err := storage.OpenDB(path.Join(t.TempDir(), "spins.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = db.Close()
	}()
	service := NewService(storage.NewSummaryCache(db))
	var buf bytes.Buffer
	if err := service.Render("nobody", &buf); err != storage.BucketNotFound {
		t.Fatal("expected BucketNotFound, got", err)
	}
}
