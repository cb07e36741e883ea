package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"handtype-server/internal/util"
	"handtype-server/pkg/handtype"
)

type ctxKey int

const (
	ctxLoggerKey ctxKey = iota
)

// requestIDHeader carries the id used to trace a request through the logs
const requestIDHeader = "X-Request-ID"

// DefaultMaxBatch is the batch limit used when none is configured
const DefaultMaxBatch = 100

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config     config
	version    string
	classifier *handtype.Classifier
}

type config struct {
	// maxBatch is the most hands a single batch request may classify
	maxBatch int
}

// NewMux returns a new HTTP mux
func NewMux(version string, classifier *handtype.Classifier, maxBatch int) *Mux {
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatch
	}

	this := &Mux{
		Router:     gmux.NewRouter(),
		version:    version,
		classifier: classifier,
		config: config{
			maxBatch: maxBatch,
		},
	}

	this.Router.Use(this.requestMiddleware)

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/categories").Handler(this.getCategories())
	r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
	r.Methods(http.MethodPost).Path("/classify/batch").Handler(this.postClassifyBatch())
	r.Methods(http.MethodGet).Path("/classify/ws").Handler(this.getClassifyWS())

	return this
}

// requestMiddleware tags every request with an id and a logger carrying it
func (m *Mux) requestMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = util.NewRequestID()
		}

		log := logrus.WithFields(logrus.Fields{
			"requestID":  requestID,
			"remoteAddr": remoteAddr(r),
			"path":       r.URL.Path,
		})

		w.Header().Set(requestIDHeader, requestID)
		newCtx := context.WithValue(r.Context(), ctxLoggerKey, log)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// logger returns the request scoped logger
func logger(r *http.Request) logrus.FieldLogger {
	if log, ok := r.Context().Value(ctxLoggerKey).(logrus.FieldLogger); ok {
		return log
	}

	return logrus.StandardLogger()
}
