package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the official FPL API root.
const DefaultBaseURL = "https://fantasy.premierleague.com/api"

// FPLClient fetches data from the official Fantasy Premier League API.
//
// Outbound calls go through a token-bucket rate limiter and a circuit
// breaker: the FPL API is unauthenticated and shared, so the client stays
// polite and fails fast while the upstream is struggling.
type FPLClient struct {
	BaseURL string
	Client  *http.Client

	cache   *BootstrapCache
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*http.Response]
}

// FPLError represents an error response from the FPL API.
type FPLError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *FPLError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an FPL 404.
func IsNotFound(err error) bool {
	fplErr, ok := err.(*FPLError)
	return ok && fplErr.StatusCode == http.StatusNotFound
}

// NewFPLClient creates a client. If baseURL is empty the official API is
// used. cache may be nil to disable bootstrap caching.
func NewFPLClient(baseURL string, cache *BootstrapCache) *FPLClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &FPLClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache:   cache,
		limiter: rate.NewLimiter(rate.Limit(5), 5),
		breaker: gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
			Name:    "fpl-api",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// BootstrapStatic fetches /bootstrap-static/ (all players, teams and
// gameweeks). Responses are cached; force bypasses a fresh cache entry. On
// fetch failure a stale cached copy is returned when one exists.
func (c *FPLClient) BootstrapStatic(ctx context.Context, force bool) (*Bootstrap, error) {
	if !force && c.cache != nil {
		if cached, ok := c.cache.Get(); ok {
			log.Printf("[FPL] Cache hit: bootstrap with %d players", len(cached.Elements))
			return cached, nil
		}
	}

	var result Bootstrap
	if err := c.get(ctx, "/bootstrap-static/", &result); err != nil {
		if c.cache != nil {
			if stale, ok := c.cache.Stale(); ok {
				log.Printf("[FPL] Bootstrap fetch failed, falling back to stale cache: %v", err)
				return stale, nil
			}
		}
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(&result)
	}
	log.Printf("[FPL] Bootstrap fetched: %d players, %d teams, %d events",
		len(result.Elements), len(result.Teams), len(result.Events))
	return &result, nil
}

// Entry fetches /entry/{teamID}/ (manager summary).
func (c *FPLClient) Entry(ctx context.Context, teamID int) (*Entry, error) {
	var result Entry
	if err := c.get(ctx, fmt.Sprintf("/entry/%d/", teamID), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// EntryPicks fetches the 15-player squad for a team. If gameweek <= 0 the
// current gameweek is resolved from bootstrap data (defaulting to 1 when no
// event is flagged current).
func (c *FPLClient) EntryPicks(ctx context.Context, teamID, gameweek int) (*Picks, error) {
	if gameweek <= 0 {
		bootstrap, err := c.BootstrapStatic(ctx, false)
		if err != nil {
			return nil, err
		}
		gameweek = currentEvent(bootstrap)
	}

	var result Picks
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", teamID, gameweek)
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	log.Printf("[FPL] Picks fetched for team %d gameweek %d: %d players",
		teamID, gameweek, len(result.Picks))
	return &result, nil
}

// Fixtures fetches /fixtures/, optionally filtered to one gameweek.
func (c *FPLClient) Fixtures(ctx context.Context, gameweek int) ([]Fixture, error) {
	path := "/fixtures/"
	if gameweek > 0 {
		path = fmt.Sprintf("/fixtures/?event=%d", gameweek)
	}
	var result []Fixture
	if err := c.get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func currentEvent(b *Bootstrap) int {
	for _, e := range b.Events {
		if e.IsCurrent {
			return e.ID
		}
	}
	return 1
}

// get performs a rate-limited GET through the circuit breaker and decodes
// the JSON body into out.
func (c *FPLClient) get(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[FPL] Request: GET %s", path)
	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		return c.Client.Do(req)
	})
	duration := time.Since(start)
	if err != nil {
		log.Printf("[FPL] Request failed: %v (duration: %v)", err, duration)
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			return &FPLError{
				Code:    "CIRCUIT_OPEN",
				Message: "FPL API temporarily unavailable (circuit open)",
			}
		}
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[FPL] Response: %d %s (duration: %v, path=%s)",
		resp.StatusCode, resp.Status, duration, path)

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusNotFound:
		return &FPLError{
			StatusCode: resp.StatusCode,
			Code:       "NOT_FOUND",
			Message:    fmt.Sprintf("FPL API returned 404 for %s", path),
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header.Get("Retry-After")
		return &FPLError{
			StatusCode: resp.StatusCode,
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
		}
	default:
		return &FPLError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("FPL API returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("[FPL] Error decoding response: %v (path=%s)", err, path)
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
