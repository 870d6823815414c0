package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-lockr/internal/app"
	"github.com/MKhiriev/go-lockr/internal/logger"
	"github.com/MKhiriev/go-lockr/internal/service"
	"github.com/MKhiriev/go-lockr/internal/store"
	"github.com/MKhiriev/go-lockr/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidOTP:              http.StatusBadRequest,
	service.ErrOTPDelivery:             http.StatusBadGateway,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrCategoryNotFound:   http.StatusNotFound,
	store.ErrEntryNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessages holds the client-facing text for statuses whose cause must
// not leak, keyed by status.
var errorMessages = map[int]string{
	http.StatusUnauthorized:        app.MsgInvalidEmailPassword,
	http.StatusInternalServerError: app.MsgInternalServerError,
	http.StatusBadGateway:          app.MsgOTPDeliveryFailed,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the mapped status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", status).Msg(msg)
	}

	text, ok := errorMessages[status]
	if !ok {
		text = err.Error()
	}
	utils.WriteError(w, text, status)
}
