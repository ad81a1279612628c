package utils

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dst)
	if err != nil {
		return err
	}
	return nil
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondError writes msg as the error and the underlying error, if any, as
// details.
func RespondError(w http.ResponseWriter, statusCode int, err error, msg string) {
	body := ErrorResponse{Error: msg}
	if err != nil && err.Error() != msg {
		body.Details = err.Error()
	}
	RespondJSON(w, statusCode, body)
}

// GetPageLimitAndOffset reads limit plus either offset or a 1-based page from
// the query string. A zero limit means no limit.
func GetPageLimitAndOffset(r *http.Request) (int, int) {
	query := r.URL.Query()

	limit, err := strconv.Atoi(query.Get("limit"))
	if err != nil || limit < 0 {
		limit = 0
	}

	offset, err := strconv.Atoi(query.Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil && page > 1 && limit > 0 {
		offset = (page - 1) * limit
	}
	return limit, offset
}
