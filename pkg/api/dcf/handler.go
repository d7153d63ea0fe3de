// Package dcf exposes the valuation engine over HTTP: POST /dcf runs one
// valuation, GET /health reports liveness.
package dcf

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"

	"madlab_dcf/pkg/core/cache"
	coredcf "madlab_dcf/pkg/core/dcf"
	"madlab_dcf/pkg/core/export"
	"madlab_dcf/pkg/core/store"
)

// Handler wires the engine to its boundary collaborators. Export and
// archive failures are logged and swallowed; the valuation result is
// returned regardless.
type Handler struct {
	cache     cache.Cache
	archive   *store.Archive
	exportDir string
}

func NewHandler(c cache.Cache, a *store.Archive, exportDir string) *Handler {
	return &Handler{cache: c, archive: a, exportDir: exportDir}
}

type response struct {
	Assumptions  coredcf.Assumptions        `json:"assumptions"`
	PVByScenario map[string]float64         `json:"pvByScenario"`
	Sensitivity  []coredcf.SensitivityPoint `json:"sensitivity"`
	Files        []string                   `json:"files"`
	Explain      string                     `json:"explain"`
}

const explainText = "DCF computed with fundamentals-based cash flow projection and Gordon terminal value."

// requestKey derives the cache key from the canonical request JSON.
func requestKey(req coredcf.Request) string {
	data, _ := json.Marshal(req)
	sum := sha256.Sum256(data)
	return "dcf:" + hex.EncodeToString(sum[:])
}

func (h *Handler) HandleDCF(w http.ResponseWriter, r *http.Request) {
	// CORS
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req coredcf.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	fmt.Printf("[DCF] Request: %s horizon=%d\n", req.Ticker, req.Horizon)

	key := requestKey(req)
	if h.cache != nil {
		if cached, ok := h.cache.Get(key); ok {
			fmt.Printf("[DCF] Cache hit for %s\n", req.Ticker)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cached))
			return
		}
	}

	res := coredcf.Valuate(req)

	// Best-effort artifacts. A failed export or archive never fails the
	// valuation response.
	files := []string{}
	if path, err := export.WriteWorkbook(h.exportDir, res); err != nil {
		fmt.Printf("[WARNING] Workbook export failed: %v\n", err)
	} else {
		files = append(files, path)
	}
	if h.archive != nil {
		if _, err := h.archive.Save(context.Background(), &req, res); err != nil {
			fmt.Printf("[WARNING] Failed to archive valuation: %v\n", err)
		}
	}

	body, err := json.Marshal(response{
		Assumptions:  res.Assumptions,
		PVByScenario: res.PVByScenario,
		Sensitivity:  res.Sensitivity,
		Files:        files,
		Explain:      explainText,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if h.cache != nil {
		// The cached body replays verbatim, files paths included; those
		// artifacts live under exportDir and may be cleaned before a hit.
		if err := h.cache.Set(key, string(body)); err != nil {
			fmt.Printf("[WARNING] Failed to cache response: %v\n", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
