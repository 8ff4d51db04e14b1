package serviceability

import (
	"context"

	"serviceability-relay/internal/domain"
	"serviceability-relay/internal/gateway/rapidshyp"
)

type gateway interface {
	CheckServiceability(ctx context.Context, p domain.Payload) rapidshyp.CallResult
}
