package handlers

import (
	"context"

	"serviceability-relay/internal/domain"
	"serviceability-relay/internal/service/serviceability"
)

type serviceabilityUsecase interface {
	Check(ctx context.Context, req domain.ServiceabilityRequest) (domain.CheckResult, error)
}

// NewServiceabilityUsecase wires a serviceability Service into a serviceabilityUsecase.
func NewServiceabilityUsecase(svc *serviceability.Service) serviceabilityUsecase {
	return svc
}
