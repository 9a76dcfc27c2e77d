package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/listquery"
	"github.com/dhdev19/team-aman-chawla-website-sub000/internal/models"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. It writes the error response
// itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		respondError(w, http.StatusRequestEntityTooLarge, models.CodeInvalidInput, "Request body too large")
	case errors.Is(err, io.EOF):
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Request body is empty")
	default:
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON format")
	}
	return false
}

// pathID parses the {id} URL parameter. It writes the error response itself
// and reports whether parsing succeeded.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		respondError(w, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func listParams(r *http.Request) listquery.Params {
	return listquery.ParamsFromValues(r.URL.Query())
}
