package app

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/mlb-browser/internal/testutil"
)

func TestLoadBackgroundDecodesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bg.png")
	if err := os.WriteFile(path, testutil.PNGBytes(16, 9, color.Black), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	img := loadBackground(path, nil)
	if img == nil || img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
		t.Fatalf("expected 16x9 background, got %v", img)
	}
}

func TestLoadBackgroundFallsBackToNil(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	dir := t.TempDir()

	if loadBackground("", logger) != nil {
		t.Fatalf("expected nil for empty path")
	}
	if loadBackground(filepath.Join(dir, "missing.jpg"), logger) != nil {
		t.Fatalf("expected nil for missing file")
	}
	broken := filepath.Join(dir, "broken.jpg")
	_ = os.WriteFile(broken, []byte("not an image"), 0o644)
	if loadBackground(broken, logger) != nil {
		t.Fatalf("expected nil for undecodable file")
	}
	if strings.Count(buf.String(), "background image unavailable") != 2 {
		t.Fatalf("expected two warnings, got %s", buf.String())
	}
}
