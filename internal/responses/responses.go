// Package responses writes JSON bodies and translates errors into ErrorResponse bodies.
package responses

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hardcore/accounting/internal/apperrors"
	"github.com/hardcore/accounting/internal/logger"
	"github.com/hardcore/accounting/internal/models"
)

const contentTypeJSON = "application/json"

// JSON writes v with the given status. The body has no trailing newline.
func JSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
		Error(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error is the single place where errors become client responses.
// A *apperrors.ServiceError anywhere in the chain is reported as is;
// anything else is logged and reported as an internal error.
func Error(w http.ResponseWriter, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		logger.Log.Errorw("internal server error", "error", err)
		svcErr = apperrors.NewInternalError()
	}

	JSON(w, svcErr.StatusCode, models.ErrorResponse{
		Code:       svcErr.Code,
		ErrorType:  string(svcErr.Type),
		Message:    svcErr.Message,
		StatusCode: svcErr.StatusCode,
	})
}
