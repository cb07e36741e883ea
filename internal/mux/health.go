package mux

import "net/http"

type healthResponse struct {
	Status   string   `json:"status"`
	Version  string   `json:"version"`
	Ranks    []string `json:"ranks"`
	MaxBatch int      `json:"maxBatch"`
}

// getHealth reports the version along with the rank ordering hands are read with
func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:   "OK",
		Version:  m.version,
		Ranks:    m.classifier.Ordering().Labels(),
		MaxBatch: m.config.maxBatch,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
