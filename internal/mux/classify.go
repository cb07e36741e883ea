package mux

import (
	"errors"
	"fmt"
	"net/http"

	"handtype-server/pkg/handtype"
)

// ErrEmptyBatch is returned when a batch request holds no hands
var ErrEmptyBatch = errors.New("hands cannot be empty")

type classifyRequest struct {
	Hand []string `json:"hand"`
}

type classifyBatchRequest struct {
	Hands [][]string `json:"hands"`
}

type classifyBatchResult struct {
	*handtype.Result
	Error string `json:"error,omitempty"`
}

type classifyBatchResponse struct {
	Results []classifyBatchResult `json:"results"`
}

type categoryResponse struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Strength int    `json:"strength"`
}

func (m *Mux) getCategories() http.HandlerFunc {
	categories := handtype.Categories()
	payload := make([]categoryResponse, len(categories))
	for i, c := range categories {
		payload[i] = categoryResponse{
			Symbol:   c.Symbol(),
			Name:     c.String(),
			Strength: int(c),
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		res, err := m.classifier.Evaluate(req.Hand)
		if err != nil {
			logger(r).WithError(err).WithField("hand", req.Hand).Debug("could not classify hand")
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		logger(r).WithField("category", res.Category.Symbol()).Debug("classified hand")
		writeJSON(w, http.StatusOK, res)
	}
}

func (m *Mux) postClassifyBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyBatchRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		if len(req.Hands) == 0 {
			writeJSONError(w, http.StatusBadRequest, ErrEmptyBatch)
			return
		}

		if len(req.Hands) > m.config.maxBatch {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("batch cannot contain more than %d hands", m.config.maxBatch))
			return
		}

		results := make([]classifyBatchResult, len(req.Hands))
		failed := 0
		for i, hand := range req.Hands {
			res, err := m.classifier.Evaluate(hand)
			if err != nil {
				failed++
				results[i] = classifyBatchResult{Error: err.Error()}
				continue
			}

			results[i] = classifyBatchResult{Result: res}
		}

		logger(r).WithField("hands", len(req.Hands)).WithField("failed", failed).Debug("classified batch")
		writeJSON(w, http.StatusOK, classifyBatchResponse{Results: results})
	}
}
