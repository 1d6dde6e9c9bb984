package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/mlb-browser/internal/domain/games"
	"github.com/preston-bernstein/mlb-browser/internal/providers"
	"github.com/preston-bernstein/mlb-browser/internal/timeutil"
)

// Config controls how the stats API client reaches the upstream API.
type Config struct {
	BaseURL    string
	SportID    int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches schedules from the MLB stats API and maps them to domain models.
type Client struct {
	baseURL    string
	sportID    int
	httpClient httpDoer
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		sportID:    resolveSportID(cfg.SportID),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchSchedule retrieves the games played on date, hydrated with editorial recaps.
func (c *Client) FetchSchedule(ctx context.Context, date timeutil.Date) ([]domaingames.Game, error) {
	if !date.Valid() {
		return nil, fmt.Errorf("%w: %s", providers.ErrInvalidDate, date)
	}

	req, err := c.buildRequest(ctx, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statsapi: schedule request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("statsapi: decode schedule: %w", err)
	}

	if len(payload.Dates) == 0 || len(payload.Dates[0].Games) == 0 {
		return nil, providers.ErrNoGames
	}

	games := make([]domaingames.Game, 0, len(payload.Dates[0].Games))
	for _, g := range payload.Dates[0].Games {
		games = append(games, mapGame(g))
	}
	return games, nil
}

// FetchImage downloads the recap photo at ref.
func (c *Client) FetchImage(ctx context.Context, ref string) ([]byte, error) {
	if ref == "" {
		return nil, fmt.Errorf("statsapi: empty image reference")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statsapi: image request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("statsapi: read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("statsapi: image exceeds %d bytes", maxImageBytes)
	}
	return data, nil
}

func (c *Client) buildRequest(ctx context.Context, date timeutil.Date) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("hydrate", scheduleHydrate)
	q.Set("date", date.String())
	q.Set("sportId", strconv.Itoa(c.sportID))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(body)),
	}
}
