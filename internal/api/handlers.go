package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

// handle adapts a runner method to an HTTP handler: decode the request
// body into Req, run, encode the result.
func handle[Req, T any](s *Server, run func(context.Context, Req) (*pipeline.Result[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode request"))
			return
		}

		res, err := run(r.Context(), req)
		if err != nil {
			if code := cerrors.GetCode(err); !code.IsClientError() {
				s.logger.Error("request failed", "path", r.URL.Path, "request_id", w.Header().Get(headerRequestID), "error", err)
			}
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

type errorBody struct {
	Code    cerrors.Code `json:"code"`
	Message string       `json:"message"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(code cerrors.Code) int {
	switch code {
	case cerrors.ErrCodeInvalidInput, cerrors.ErrCodeInvalidArgument,
		cerrors.ErrCodeInvalidState, cerrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case cerrors.ErrCodeNotFound, cerrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case cerrors.ErrCodeUnsupported, cerrors.ErrCodeTooLarge:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	code := cerrors.GetCode(err)
	switch {
	case code != "":
	case errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Code: cerrors.ErrCodeInternal, Message: "request timed out"})
		return
	default:
		code = cerrors.ErrCodeInternal
	}
	msg := cerrors.UserMessage(err)
	if code == cerrors.ErrCodeInternal {
		msg = "internal error"
	}
	writeJSON(w, statusFor(code), errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func notFound(path string) error {
	return cerrors.New(cerrors.ErrCodeNotFound, "no route for %s", path)
}
