package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iho/doubleentry/internal/adapter/http/dto"
	"github.com/iho/doubleentry/internal/domain"
	"github.com/iho/doubleentry/internal/infrastructure/metrics"
	"github.com/iho/doubleentry/internal/usecase"
)

type accountServiceStub struct {
	createFn func(ctx context.Context, ref string, openingBalance domain.Money) error
	getFn    func(ctx context.Context, ref string) (domain.Money, error)
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, ref string, openingBalance domain.Money) error {
	return s.createFn(ctx, ref, openingBalance)
}

func (s *accountServiceStub) GetAccountBalance(ctx context.Context, ref string) (domain.Money, error) {
	return s.getFn(ctx, ref)
}

func testMetrics() *metrics.Metrics {
	return metrics.NewWith(prometheus.NewRegistry())
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestAccountHandler_Create_Success(t *testing.T) {
	var capturedRef string
	var capturedBalance domain.Money

	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, ref string, openingBalance domain.Money) error {
			capturedRef = ref
			capturedBalance = openingBalance
			return nil
		},
	}, testMetrics())

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Reference:      "acc-1",
		OpeningBalance: dto.MoneyRequest{Amount: "100.50", Currency: "EUR"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if capturedRef != "acc-1" || capturedBalance.String() != "100.5 EUR" {
		t.Fatalf("expected input to match request, got %s %s", capturedRef, capturedBalance)
	}

	var resp dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Reference != "acc-1" {
		t.Fatalf("expected reference acc-1, got %s", resp.Reference)
	}
}

func TestAccountHandler_Create_InvalidJSON(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, ref string, openingBalance domain.Money) error {
			t.Fatal("CreateAccount should not be called for invalid payload")
			return nil
		},
	}, testMetrics())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewBufferString("{invalid json"))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_MalformedMoney(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, ref string, openingBalance domain.Money) error {
			t.Fatal("CreateAccount should not be called for malformed money")
			return nil
		},
	}, testMetrics())

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Reference:      "acc-1",
		OpeningBalance: dto.MoneyRequest{Amount: "ten", Currency: "EUR"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAccountHandler_Create_Duplicate(t *testing.T) {
	handler := NewAccountHandler(&accountServiceStub{
		createFn: func(ctx context.Context, ref string, openingBalance domain.Money) error {
			return domain.NewInfrastructure("account acc-1 already exists", usecase.ErrAlreadyExists)
		},
	}, testMetrics())

	body, _ := json.Marshal(dto.CreateAccountRequest{
		Reference:      "acc-1",
		OpeningBalance: dto.MoneyRequest{Amount: "100", Currency: "EUR"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAccountHandler_GetBalance(t *testing.T) {
	t.Run("returns balance", func(t *testing.T) {
		handler := NewAccountHandler(&accountServiceStub{
			getFn: func(ctx context.Context, ref string) (domain.Money, error) {
				return domain.MustMoney("42.50", "EUR"), nil
			},
		}, testMetrics())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/acc-1/balance", nil)
		req = setChiURLParam(req, "ref", "acc-1")
		rec := httptest.NewRecorder()

		handler.GetBalance(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp dto.BalanceResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Balance.Amount != "42.5" || resp.Balance.Currency != "EUR" {
			t.Fatalf("unexpected balance payload: %+v", resp.Balance)
		}
	})

	t.Run("unknown account is 404", func(t *testing.T) {
		handler := NewAccountHandler(&accountServiceStub{
			getFn: func(ctx context.Context, ref string) (domain.Money, error) {
				return domain.Money{}, domain.NewAccountNotFound(ref)
			},
		}, testMetrics())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/ghost/balance", nil)
		req = setChiURLParam(req, "ref", "ghost")
		rec := httptest.NewRecorder()

		handler.GetBalance(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
