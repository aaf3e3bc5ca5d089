package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// statusFor maps an error kind to the HTTP status returned to clients.
func statusFor(kind common.Kind) int {
	switch kind {
	case common.KindValidation, common.KindDuplicateEmail, common.KindInvalidCredentials:
		return http.StatusBadRequest
	case common.KindNotFound:
		return http.StatusNotFound
	case common.KindPoolExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status for err. Store failures carry the raw
// error text in the "error" field; fallback is their human-readable message.
func (s *HTTPServer) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	kind := common.KindOf(err)
	status := statusFor(kind)

	resp := errorResponse{}
	switch kind {
	case common.KindValidation:
		resp.Message = msgBadRequest
		resp.Error = err.Error()
	case common.KindNotFound:
		resp.Message = msgEquipmentNotFound
	case common.KindDuplicateEmail:
		resp.Message = msgDuplicateEmail
	case common.KindInvalidCredentials:
		resp.Message = msgBadCredentials
	case common.KindPoolExhausted:
		resp.Message = msgPoolExhausted
	default:
		resp.Message = fallback
		resp.Error = err.Error()
		s.logger.Error(r.Context(), fallback, "error", err.Error(), "request_id", requestIDFrom(r.Context()))
	}

	writeJSON(w, status, resp)
}

// decodeJSON reads the request body into dst. An empty body leaves dst
// untouched; anything that is not a JSON object of the right shape is a
// validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %s", common.ErrorValidation, err.Error())
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", common.ErrorValidation, raw)
	}
	return id, nil
}
