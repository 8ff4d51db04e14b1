package handlers

import (
	"errors"
	"net/http"

	"serviceability-relay/internal/apperr"
	"serviceability-relay/internal/logx"
)

// ServiceabilityHandler serves the pincode serviceability endpoint.
type ServiceabilityHandler struct {
	usecase serviceabilityUsecase
	logger  logx.Logger
	devMode bool
}

// NewServiceabilityHandler creates a new ServiceabilityHandler. devMode
// controls whether internal error detail is echoed in 500 responses.
func NewServiceabilityHandler(logger logx.Logger, uc serviceabilityUsecase, devMode bool) *ServiceabilityHandler {
	return &ServiceabilityHandler{usecase: uc, logger: logger, devMode: devMode}
}

// Check handles POST /api/rapidshyp/check.
func (h *ServiceabilityHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkServiceabilityRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.usecase.Check(r.Context(), req.toModel())

	var fieldErr *apperr.FieldError
	var badReqErr *apperr.UpstreamBadRequestError

	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, envelope{
			Success: true,
			Data:    res.Data,
			Message: "Serviceability check completed",
		})
	case errors.As(err, &fieldErr):
		writeError(h.logger, w, r, http.StatusBadRequest, fieldErr.Field+" is required")
	case errors.Is(err, apperr.ErrUpstreamAuth):
		writeError(h.logger, w, r, http.StatusUnauthorized, "Unauthorized: Invalid RapidShyp API key")
	case errors.As(err, &badReqErr):
		writeJSON(h.logger, w, r, http.StatusBadRequest, envelope{
			Success: false,
			Message: "Bad request to RapidShyp API",
			Details: badReqErr.Details,
		})
	default:
		h.logger.Error("serviceability check failed",
			logx.String("req_id", reqID(r.Context())),
			logx.Any("err", err),
		)
		env := envelope{Success: false, Message: "Internal server error"}
		if h.devMode {
			env.Error = err.Error()
		}
		writeJSON(h.logger, w, r, http.StatusInternalServerError, env)
	}
}
