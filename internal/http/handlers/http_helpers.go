package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/service"
)

const (
	CodeInvalidInput  = "invalid_input"
	CodeValidation    = "validation_failed"
	CodeAlreadyExists = "already_exists"
	CodeNotFound      = "not_found"
	CodeStockExceeded = "stock_exceeded"
	CodeInternal      = "internal_error"
	CodeUnavailable   = "unavailable"
	CodeRateLimited   = "rate_limited"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// WriteError writes the {"error":{"code","message"}} envelope.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	_ = writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func writeValidationErrors(w http.ResponseWriter, errs []ValidationError) {
	_ = writeJSON(w, http.StatusBadRequest, ValidationErrorsResponse{Errors: errs})
}

func (h *SodaHandler) respond(ctx context.Context, w http.ResponseWriter, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		h.log.Error(ctx, "response.write_failed", err)
	}
}

// writeServiceError maps inventory errors onto status codes.
func writeServiceError(ctx context.Context, log *logger.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		WriteError(w, http.StatusBadRequest, CodeAlreadyExists, err.Error())
	case errors.Is(err, service.ErrStockExceeded):
		WriteError(w, http.StatusBadRequest, CodeStockExceeded, err.Error())
	default:
		log.Error(ctx, "request.failed", err)
		WriteError(w, http.StatusInternalServerError, CodeInternal, "internal error")
	}
}

// nameParam decodes the name segment. chi matches on RawPath when the request
// has one (for example an escaped "/"), leaving the value escaped.
func nameParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name, nil
	}
	decoded, err := url.PathUnescape(name)
	if err != nil {
		return "", fmt.Errorf("invalid soda name %q", name)
	}
	return decoded, nil
}

func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid soda id %q", idStr)
	}
	return id, nil
}
