package serviceability

import (
	"context"
	"fmt"
	"net/http"

	"serviceability-relay/internal/apperr"
	"serviceability-relay/internal/domain"
	"serviceability-relay/internal/gateway/rapidshyp"
	"serviceability-relay/internal/logx"
)

// Service runs pincode serviceability checks against the RapidShyp gateway.
type Service struct {
	gw     gateway
	logger logx.Logger
}

// NewService creates a serviceability Service.
func NewService(gw gateway, logger logx.Logger) *Service {
	if gw == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{gw: gw, logger: logger}
}

// Check validates the request, builds the upstream payload and makes exactly
// one gateway call. Validation failures never reach the gateway. Upstream
// outcomes map onto the apperr taxonomy: 401 is terminal auth failure, 400
// carries the upstream detail, everything else collapses into
// ErrUpstreamUnavailable.
func (s *Service) Check(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error) {
	if err := req.Validate(); err != nil {
		return domain.CheckResult{}, err
	}

	p := req.Payload()
	res := s.gw.CheckServiceability(ctx, p)

	switch res.Kind {
	case rapidshyp.CallOK:
		s.logger.Info("serviceability check completed",
			logx.String("event", "serviceability_checked"),
			logx.String("pickup_pincode", p.PickupPincode),
			logx.String("delivery_pincode", p.DeliveryPincode),
			logx.Float64("weight", p.Weight),
		)
		return domain.CheckResult{Data: res.Body}, nil
	case rapidshyp.CallClientError:
		switch res.Status {
		case http.StatusUnauthorized:
			return domain.CheckResult{}, apperr.ErrUpstreamAuth
		case http.StatusBadRequest:
			return domain.CheckResult{}, &apperr.UpstreamBadRequestError{Details: res.Body}
		default:
			return domain.CheckResult{}, fmt.Errorf("%w: upstream status %d", apperr.ErrUpstreamUnavailable, res.Status)
		}
	default:
		return domain.CheckResult{}, fmt.Errorf("%w: %v", apperr.ErrUpstreamUnavailable, res.Err)
	}
}
