package handler

import (
	"errors"
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/httputil"
)

// handleError converts domain errors to HTTP responses. The Unauthorized
// vs Forbidden distinction is preserved: collapsing them would obscure
// whether the caller needs to authenticate or simply lacks privilege.
func handleError(w http.ResponseWriter, err error) {
	var fieldErrs *domain.FieldErrors

	switch {
	case errors.As(err, &fieldErrs):
		extras := map[string]interface{}{"errors": fieldErrs.Fields}
		httputil.RespondErrorWithExtras(w, http.StatusBadRequest, "validation failed", extras)
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// HealthCheck reports service liveness
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
