package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes err using the {"error":{"code","message"}} envelope.
// 5xx responses are logged at error level with the internal cause.
func WriteJSON(w http.ResponseWriter, log *slog.Logger, err error) {
	status, body := ToHTTPError(err)

	if status >= 500 {
		log.Error("request error",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Handler returns an http.HandlerFunc that always responds with err.
// Used for chi's NotFound and MethodNotAllowed hooks on JSON routes.
func Handler(log *slog.Logger, err *Error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodHead {
			w.WriteHeader(err.HTTPStatus)
			return
		}
		WriteJSON(w, log, err)
	}
}
