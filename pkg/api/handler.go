// Package api exposes loaded datasets over HTTP and MCP.
package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/wordforge/wordforge/pkg/dataset"
	"github.com/wordforge/wordforge/pkg/kit"
)

// NewRouter returns an http.Handler with all wordforge API routes.
func NewRouter(reg *dataset.Registry) http.Handler {
	mux := http.NewServeMux()
	h := &handler{
		lookup:       lookupEndpoint(reg),
		listDatasets: listDatasetsEndpoint(reg),
		reg:          reg,
	}

	mux.HandleFunc("GET /v1/lookup/{language}/{dataType}/{wordform}", h.handleLookup)
	mux.HandleFunc("GET /v1/datasets", h.handleListDatasets)
	mux.HandleFunc("GET /v1/health", h.handleHealth)

	return cors(mux)
}

type handler struct {
	lookup       kit.Endpoint
	listDatasets kit.Endpoint
	reg          *dataset.Registry
}

func (h *handler) handleLookup(w http.ResponseWriter, r *http.Request) {
	req := &lookupReq{
		Language: r.PathValue("language"),
		DataType: r.PathValue("dataType"),
		Wordform: r.PathValue("wordform"),
	}
	if req.Wordform == "" {
		writeError(w, http.StatusBadRequest, "missing wordform")
		return
	}

	resp, err := h.lookup(r.Context(), req)
	if err != nil {
		code := http.StatusNotFound
		if strings.Contains(err.Error(), "no dataset") {
			code = http.StatusBadRequest
		}
		writeError(w, code, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.listDatasets(r.Context(), nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

type healthResponse struct {
	Status       string `json:"status"`
	Datasets     int    `json:"datasets"`
	TotalEntries int    `json:"total_entries"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "ok",
		Datasets:     h.reg.DatasetCount(),
		TotalEntries: h.reg.TotalEntries(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// cors is a simple CORS middleware for browser-based clients.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
