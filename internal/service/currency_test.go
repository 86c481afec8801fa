package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/packwise/api/internal/model"
)

func TestConvert_ReturnsRate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			t.Errorf("expected the api key header, got %q", r.Header.Get("apikey"))
		}
		if got := r.URL.Query().Get("from"); got != "USD" {
			t.Errorf("expected from=USD, got %q", got)
		}
		if got := r.URL.Query().Get("to"); got != "EUR" {
			t.Errorf("expected to=EUR, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"query": {"from": "USD", "to": "EUR", "amount": 1},
			"info": {"timestamp": 1657670399, "rate": 0.997805},
			"date": "2022-07-11",
			"result": 0.997805
		}`))
	}))
	defer server.Close()

	svc := NewCurrencyService(CurrencyServiceConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	})

	rate, err := svc.Convert(context.Background(), "usd", "eur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rate.From != "USD" || rate.To != "EUR" {
		t.Errorf("expected USD/EUR, got %s/%s", rate.From, rate.To)
	}
	if rate.Rate != 0.997805 {
		t.Errorf("expected rate 0.997805, got %f", rate.Rate)
	}
	if rate.Date != "2022-07-11" {
		t.Errorf("expected date 2022-07-11, got %s", rate.Date)
	}
}

func TestConvert_UpstreamFailure_ReturnsUnavailable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewCurrencyService(CurrencyServiceConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	})

	_, err := svc.Convert(context.Background(), "USD", "EUR")
	if !errors.Is(err, ErrCurrencyUnavailable) {
		t.Fatalf("expected ErrCurrencyUnavailable, got %v", err)
	}
}

func TestConvert_UnknownCode_ReturnsUnknownCurrency(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	svc := NewCurrencyService(CurrencyServiceConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	})

	_, err := svc.Convert(context.Background(), "USD", "XXX")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestConvert_MalformedCode_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	svc := NewCurrencyService(CurrencyServiceConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Client:  server.Client(),
	})

	_, err := svc.Convert(context.Background(), "US", "EURO")

	var problem *model.ProblemDetails
	if !errors.As(err, &problem) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if called {
		t.Error("expected no upstream call for malformed codes")
	}
}
