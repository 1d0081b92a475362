package server

import (
	"crypto/ed25519"
	"encoding/json"
	"net/http"

	"github.com/mr-tron/base58"
)

type errorResponse struct {
	Error *apiError `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.WithError(err).Warn("failed to write response body")
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	apiErr, ok := err.(*apiError)
	if !ok {
		s.log.WithError(err).Warn("unclassified handler error")
		apiErr = errInternal("internal server error")
	}

	if apiErr.Code == codeInternal || apiErr.Code == codeUpstreamUnavailable {
		log := s.log.WithField("code", apiErr.Code)
		if apiErr.cause != nil {
			log = log.WithError(apiErr.cause)
		}
		log.Warn(apiErr.Message)
	}

	s.writeJSON(w, apiErr.httpStatus(), errorResponse{Error: apiErr})
}

func (s *Server) decodeRequest(r *http.Request, req interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errInvalidInput("malformed request body")
	}
	return nil
}

// parseAddress rejects anything that isn't a base58 encoded 32 byte key.
func parseAddress(value string) (ed25519.PublicKey, bool) {
	raw, err := base58.Decode(value)
	if err != nil || len(raw) != ed25519.PublicKeySize {
		return nil, false
	}
	return raw, true
}
