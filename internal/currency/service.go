package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultRequestTimeout = 10 * time.Second

// Service fetches exchange rates from a remote rate API through an
// injected cache.
type Service struct {
	client  *http.Client
	baseURL string
	apiKey  string
	cache   Cache
	logger  *zap.Logger
}

// NewService creates a rate service. A nil cache disables caching; a nil
// logger falls back to a no-op logger.
func NewService(baseURL, apiKey string, cache Cache, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:  &http.Client{Timeout: defaultRequestTimeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		cache:   cache,
		logger:  logger,
	}
}

// ratesResponse is the payload shape of the rate API.
type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Pair returns the cache key for a currency pair.
func Pair(from, to string) string {
	return strings.ToUpper(from) + "/" + strings.ToUpper(to)
}

// Rate returns the exchange rate from one currency to another, consulting
// the cache first. Failures propagate as errors.
func (s *Service) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, fmt.Errorf("currency codes cannot be empty")
	}
	if from == to {
		return 1, nil
	}

	pair := Pair(from, to)
	if s.cache != nil {
		if rate, ok := s.cache.Get(ctx, pair); ok {
			s.logger.Debug("exchange rate served from cache",
				zap.String("pair", pair),
				zap.Float64("rate", rate),
			)
			return rate, nil
		}
	}

	rate, err := s.fetch(ctx, from, to)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pair, rate); err != nil {
			// A dead cache only costs extra lookups.
			s.logger.Warn("failed to cache exchange rate",
				zap.String("pair", pair),
				zap.Error(err),
			)
		}
	}
	return rate, nil
}

// Convert converts an amount between currencies at the current rate.
func (s *Service) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	rate, err := s.Rate(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %s to %s: %w", from, to, err)
	}
	return amount * rate, nil
}

func (s *Service) fetch(ctx context.Context, from, to string) (float64, error) {
	endpoint := fmt.Sprintf("%s/latest?%s", s.baseURL, url.Values{
		"base":    []string{from},
		"symbols": []string{to},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build rate request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("rate lookup for %s failed: %w", Pair(from, to), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate service returned status %d for %s", resp.StatusCode, Pair(from, to))
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := payload.Rates[to]
	if !ok {
		return 0, fmt.Errorf("rate service response missing rate for %s", to)
	}
	if rate <= 0 {
		return 0, fmt.Errorf("rate service returned non-positive rate %f for %s", rate, Pair(from, to))
	}
	return rate, nil
}
