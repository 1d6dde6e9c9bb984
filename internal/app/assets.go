package app

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/preston-bernstein/mlb-browser/internal/logging"
)

// loadBackground decodes the background image at path. A missing or broken file is logged
// and yields nil so the window falls back to a solid fill.
func loadBackground(path string, logger *slog.Logger) image.Image {
	if path == "" {
		return nil
	}
	img, err := decodeImageFile(path)
	if err != nil {
		logging.Warn(logger, "background image unavailable, using solid fill",
			logging.FieldPath, path,
			"error", err,
		)
		return nil
	}
	return img
}

func decodeImageFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
