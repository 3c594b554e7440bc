package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jwaiton/nexus/exception"
)

type contextKeyType string

const contextQueryKey contextKeyType = "query"

var (
	errMalformed = errors.New("malformed request")
	errNotReady  = errors.New("default geometry is not available")
)

// requestContext exposes the query parameters to handlers.
func requestContext(r *http.Request) context.Context {
	return context.WithValue(r.Context(), contextQueryKey, r.URL.Query())
}

func extractQuery(ctx context.Context) url.Values {
	query, ok := ctx.Value(contextQueryKey).(url.Values)
	if !ok {
		log.Error("[ASSERT] Missing query in context")
		return url.Values{}
	}
	return query
}

func extractURLParam(ctx context.Context, name string) string {
	return chi.URLParamFromCtx(ctx, name)
}

func extractGeometryName(ctx context.Context) string {
	return extractURLParam(ctx, "name")
}

// extractIntQuery returns def when the parameter is absent.
func extractIntQuery(ctx context.Context, name string, def int64) (int64, error) {
	raw := extractQuery(ctx).Get(name)
	if raw == "" {
		return def, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", errMalformed, name, raw)
	}
	return value, nil
}

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

type errorResponse struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, exception.ErrUnknownGeometry):
		return http.StatusNotFound
	case errors.Is(err, errNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, errMalformed),
		errors.Is(err, exception.ErrUnknownCommand),
		errors.Is(err, exception.ErrInvalidArgument),
		errors.Is(err, exception.ErrOutOfRange),
		errors.Is(err, exception.ErrUnknownRegion):
		return http.StatusBadRequest
	}
	var e *exception.Exception
	if errors.As(err, &e) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func handleRequestErr(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Error(err)
	}
	_ = writeJSONResponse(w, status, errorResponse{Error: err.Error()})
}
