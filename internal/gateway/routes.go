package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type convertRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type convertResponse struct {
	ConvertedCode string `json:"convertedCode"`
}

type debugRequest struct {
	Code string `json:"code"`
}

type debugResponse struct {
	DebuggedCode string `json:"debuggedCode"`
}

type qualityRequest struct {
	Code       string `json:"code"`
	Parameters string `json:"parameters"`
}

type qualityResponse struct {
	QualityResult string `json:"qualityResult"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes mounts the operation endpoints.
func RegisterRoutes(r chi.Router, g *Gateway) {
	r.Post("/convert", handleConvert(g))
	r.Post("/debug", handleDebug(g))
	r.Post("/quality", handleQuality(g))
}

func handleConvert(g *Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req convertRequest
		if !decodeBody(w, r, &req) {
			return
		}

		out, err := g.Convert(r.Context(), ConversionRequest{
			SourceCode:     req.Code,
			TargetLanguage: req.Language,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, convertResponse{ConvertedCode: out})
	}
}

func handleDebug(g *Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req debugRequest
		if !decodeBody(w, r, &req) {
			return
		}

		out, err := g.Debug(r.Context(), DebugRequest{SourceCode: req.Code})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, debugResponse{DebuggedCode: out})
	}
}

func handleQuality(g *Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req qualityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		out, err := g.CheckQuality(r.Context(), QualityRequest{
			SourceCode: req.Code,
			Parameters: req.Parameters,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, qualityResponse{QualityResult: out})
	}
}

// maxBodyBytes caps request bodies read by decodeBody.
const maxBodyBytes = 1 << 20

// decodeBody reads a JSON object into v. An empty body decodes as an empty
// object so missing fields are forwarded as empty strings. Only JSON is
// accepted; form-encoded bodies fail to decode and get a 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "Request body too large"})
		return false
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
	return false
}

// writeError maps gateway errors to the client-facing error shape. Upstream
// causes never reach the response body.
func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message})
		return
	}
	var oerr *OperationFailedError
	if errors.As(err, &oerr) {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: oerr.Message()})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Operation failed"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
