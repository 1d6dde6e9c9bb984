package imagecache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/logging"
	"github.com/preston-bernstein/mlb-browser/internal/metrics"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
)

const (
	imagesDir  = "images"
	defaultExt = ".img"
)

// ErrNoImageRef reports a game without a recap image to fetch.
var ErrNoImageRef = errors.New("game has no recap image")

// Cache resolves recap images from a flat directory, fetching and storing on a miss.
// Entries are never evicted.
type Cache struct {
	dir     string
	fetcher providers.ImageFetcher
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs a cache rooted at {dir}/images.
func New(dir string, fetcher providers.ImageFetcher, logger *slog.Logger, recorder *metrics.Recorder) *Cache {
	return &Cache{
		dir:     filepath.Join(dir, imagesDir),
		fetcher: fetcher,
		logger:  logger,
		metrics: recorder,
	}
}

// Path returns where the image for game is stored.
func (c *Cache) Path(game domaingames.Game) string {
	return filepath.Join(c.dir, game.Key()+extension(game.RecapImageRef))
}

// ResolveImage returns the cached bytes for game, fetching them when the cache has none.
// A failed cache write is logged; the fetched bytes are still returned.
func (c *Cache) ResolveImage(ctx context.Context, game domaingames.Game) ([]byte, error) {
	target := c.Path(game)
	if data, err := os.ReadFile(target); err == nil && len(data) > 0 {
		c.metrics.RecordImageLookup(metrics.SourceCache)
		return data, nil
	}

	data, err := c.fetch(ctx, game)
	if err != nil {
		c.metrics.RecordImageLookup(metrics.SourceError)
		return nil, err
	}
	c.metrics.RecordImageLookup(metrics.SourceFetch)

	if err := c.store(target, data); err != nil {
		logging.Warn(c.logger, "image cache write failed",
			logging.FieldGameID, game.ID,
			logging.FieldPath, target,
			"error", err,
		)
	}
	return data, nil
}

func (c *Cache) fetch(ctx context.Context, game domaingames.Game) ([]byte, error) {
	if game.RecapImageRef == "" {
		return nil, fmt.Errorf("game %d: %w", game.ID, ErrNoImageRef)
	}
	if c.fetcher == nil {
		return nil, fmt.Errorf("game %d: %w", game.ID, providers.ErrProviderUnavailable)
	}
	data, err := c.fetcher.FetchImage(ctx, game.RecapImageRef)
	if err != nil {
		return nil, fmt.Errorf("fetch image for game %d: %w", game.ID, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("fetch image for game %d: empty body", game.ID)
	}
	return data, nil
}

func (c *Cache) store(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

func extension(ref string) string {
	p := ref
	if u, err := url.Parse(ref); err == nil {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" || len(ext) > 5 {
		return defaultExt
	}
	return ext
}
