package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"serviceability-relay/internal/apperr"
	"serviceability-relay/internal/domain"
	"serviceability-relay/internal/http/handlers"
)

type envelopeResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details"`
	Error   string          `json:"error"`
}

type stubUsecase struct {
	checkFn func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error)
}

func (s *stubUsecase) Check(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
	if s.checkFn == nil {
		panic("Check not expected")
	}
	return s.checkFn(ctx, req)
}

func doCheck(t *testing.T, h *handlers.ServiceabilityHandler, body string) (*httptest.ResponseRecorder, envelopeResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/rapidshyp/check", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	h.Check(rr, req)

	var resp envelopeResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return rr, resp
}

const validBody = `{"pickup_pincode":"110001","delivery_pincode":"400001","weight":2.5,"cod":1500}`

func TestCheck_OK(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			require.Equal(t, "110001", req.PickupPincode)
			require.Equal(t, "400001", req.DeliveryPincode)
			require.NotNil(t, req.Weight)
			require.Equal(t, 2.5, *req.Weight)
			require.NotNil(t, req.COD)
			require.Equal(t, 1500.0, *req.COD)
			return domain.CheckResult{Data: json.RawMessage(`{"serviceable":true}`)}, nil
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, resp := doCheck(t, h, validBody)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, resp.Success)
	require.Equal(t, "Serviceability check completed", resp.Message)
	require.JSONEq(t, `{"serviceable":true}`, string(resp.Data))
	require.Empty(t, resp.Error)
}

func TestCheck_NumericPincodesAndStringAmountsAccepted(t *testing.T) {
	t.Parallel()

	var got domain.ServiceabilityRequest
	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			got = req
			return domain.CheckResult{}, nil
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, _ := doCheck(t, h, `{"pickup_pincode":110001,"delivery_pincode":"400001","weight":"2.5","cod":"1500"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "110001", got.PickupPincode)
	require.NotNil(t, got.Weight)
	require.Equal(t, 2.5, *got.Weight)
	require.NotNil(t, got.COD)
	require.Equal(t, 1500.0, *got.COD)
}

func TestCheck_AbsentOptionalCOD_IsNil(t *testing.T) {
	t.Parallel()

	var got domain.ServiceabilityRequest
	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			got = req
			return domain.CheckResult{}, nil
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	doCheck(t, h, `{"pickup_pincode":"110001","delivery_pincode":"400001","weight":2.5}`)

	require.Nil(t, got.COD)
}

func TestCheck_MissingField(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, apperr.MissingField("weight")
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, resp := doCheck(t, h, `{"pickup_pincode":"110001","delivery_pincode":"400001"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "weight is required", resp.Message)
}

func TestCheck_UpstreamAuthError(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, apperr.ErrUpstreamAuth
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, resp := doCheck(t, h, validBody)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "Unauthorized: Invalid RapidShyp API key", resp.Message)
}

func TestCheck_UpstreamBadRequest_EchoesDetails(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, &apperr.UpstreamBadRequestError{
				Details: json.RawMessage(`{"error":"bad pincode"}`),
			}
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, resp := doCheck(t, h, validBody)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "Bad request to RapidShyp API", resp.Message)
	require.JSONEq(t, `{"error":"bad pincode"}`, string(resp.Details))
}

func TestCheck_UpstreamUnavailable_ProductionHidesDetail(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, errors.New("dial tcp: connection refused")
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, resp := doCheck(t, h, validBody)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "Internal server error", resp.Message)
	require.Empty(t, resp.Error)
}

func TestCheck_UpstreamUnavailable_DevelopmentEchoesDetail(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, errors.New("dial tcp: connection refused")
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, true)

	rr, resp := doCheck(t, h, validBody)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "Internal server error", resp.Message)
	require.Contains(t, resp.Error, "connection refused")
}

func TestCheck_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handlers.NewServiceabilityHandler(testLogger(), &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			require.FailNow(t, "usecase.Check should not be called on invalid json")
			return domain.CheckResult{}, nil
		},
	}, false)

	rr, resp := doCheck(t, h, `{"pickup_pincode":`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.False(t, resp.Success)
	require.Equal(t, "invalid json", resp.Message)
}

func TestCheck_UnknownFieldsTolerated(t *testing.T) {
	t.Parallel()

	uc := &stubUsecase{
		checkFn: func(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
			return domain.CheckResult{}, nil
		},
	}
	h := handlers.NewServiceabilityHandler(testLogger(), uc, false)

	rr, _ := doCheck(t, h, `{"pickup_pincode":"110001","delivery_pincode":"400001","weight":2.5,"order_value":100}`)

	require.Equal(t, http.StatusOK, rr.Code)
}
