package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

type webHandler = func(w http.ResponseWriter, r *http.Request)

// requestWrapper adapts a handler that only needs the request context.
func requestWrapper[R any](handler func(ctx context.Context) (R, error)) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := handler(requestContext(r))
		requestWrapperResultHandler(w, result, err)
	}
}

// requestWrapperWithBody decodes the JSON body into a new T before calling
// the handler. An empty body leaves T at its zero value.
func requestWrapperWithBody[T, R any](handler func(ctx context.Context, body *T) (R, error)) webHandler {
	return func(w http.ResponseWriter, r *http.Request) {
		arg := new(T)
		if err := json.NewDecoder(r.Body).Decode(arg); err != nil && !errors.Is(err, io.EOF) {
			log.Debugf("Malformed request body for %s: %v", r.URL.Path, err)
			handleRequestErr(w, errMalformed)
			return
		}
		result, err := handler(requestContext(r), arg)
		requestWrapperResultHandler(w, result, err)
	}
}

func requestWrapperResultHandler(w http.ResponseWriter, result interface{}, err error) {
	if err != nil {
		handleRequestErr(w, err)
		return
	}
	if writeErr := writeJSONResponse(w, http.StatusOK, result); writeErr != nil {
		log.Warnf("Writing response failed: %v", writeErr)
	}
}
