package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/packwise/api/internal/model"
)

// DefaultCurrencyBaseURL is the apilayer exchangerates endpoint
const DefaultCurrencyBaseURL = "https://api.apilayer.com/exchangerates_data"

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// CurrencyService fetches exchange rates from the apilayer
// exchangerates API. It holds no state beyond its credentials; every
// lookup is a one-shot outbound call.
type CurrencyService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// CurrencyServiceConfig holds configuration for the currency service
type CurrencyServiceConfig struct {
	BaseURL string // defaults to DefaultCurrencyBaseURL
	APIKey  string
	Client  *http.Client // defaults to a client with a 10s timeout
}

// NewCurrencyService creates a new currency service
func NewCurrencyService(cfg CurrencyServiceConfig) *CurrencyService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultCurrencyBaseURL
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &CurrencyService{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  client,
	}
}

// convertResponse mirrors the apilayer convert payload
type convertResponse struct {
	Success bool `json:"success"`
	Info    struct {
		Rate float64 `json:"rate"`
	} `json:"info"`
	Date   string  `json:"date"`
	Result float64 `json:"result"`
}

// Convert fetches the current rate for converting one unit of the from
// currency into the to currency
func (s *CurrencyService) Convert(ctx context.Context, from, to string) (*model.CurrencyRate, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	var errs []model.FieldError
	if !currencyCodePattern.MatchString(from) {
		errs = append(errs, model.FieldError{Field: "from", Message: "from must be a three-letter currency code"})
	}
	if !currencyCodePattern.MatchString(to) {
		errs = append(errs, model.FieldError{Field: "to", Message: "to must be a three-letter currency code"})
	}
	if len(errs) > 0 {
		return nil, model.NewValidationError(errs)
	}

	endpoint := fmt.Sprintf("%s/convert?to=%s&from=%s&amount=1",
		s.baseURL, url.QueryEscape(to), url.QueryEscape(from))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build currency request: %w", err)
	}
	req.Header.Set("apikey", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCurrencyUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// apilayer rejects unknown currency codes with a 4xx
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownCurrency, from, to)
	default:
		return nil, fmt.Errorf("%w: upstream returned %d", ErrCurrencyUnavailable, resp.StatusCode)
	}

	var payload convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: invalid upstream response", ErrCurrencyUnavailable)
	}
	if !payload.Success {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownCurrency, from, to)
	}

	return &model.CurrencyRate{
		From: from,
		To:   to,
		Rate: payload.Info.Rate,
		Date: payload.Date,
	}, nil
}
