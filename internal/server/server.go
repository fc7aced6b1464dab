// Package server exposes the planning pipeline over HTTP: YAML configuration
// in, JSON plan out, plus version and Prometheus metrics endpoints.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/mediamix-planner/internal/config"
	"github.com/iwvelando/mediamix-planner/internal/planner"
	"github.com/iwvelando/mediamix-planner/pkg/constants"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string

	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHandler constructs the HTTP handler that serves the planning API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
		registry:      prometheus.NewRegistry(),
	}

	h.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mediamix_requests_total",
		Help: "Total HTTP requests by path and status code",
	}, []string{"path", "status"})
	h.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mediamix_request_duration_seconds",
		Help:    "HTTP request latency by path",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})
	h.registry.MustRegister(h.requestsTotal, h.requestDuration)

	mux := http.NewServeMux()

	// Planning API endpoint (YAML config upload)
	mux.HandleFunc("/api/plan", h.instrument("/api/plan", h.handlePlan))

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.instrument("/api/version", h.handleVersion))

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))

	return mux
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *handler) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		h.requestsTotal.WithLabelValues(path, strconv.Itoa(recorder.status)).Inc()
		h.requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

type planResponse struct {
	Baseline     float64            `json:"baseline"`
	Coefficients map[string]float64 `json:"coefficients"`
	Allocation   map[string]float64 `json:"allocation"`
	Objective    string             `json:"objective"`
	Outcome      float64            `json:"outcome"`
	Profit       float64            `json:"profit"`
	Score        float64            `json:"score"`
	Tied         bool               `json:"tied"`
	Observations int                `json:"observations"`
	Warnings     []string           `json:"warnings,omitempty"`
	Duration     string             `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read upload: %v", err))
		return
	}

	var conf config.Configuration
	if err := yaml.Unmarshal(body, &conf); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse configuration: %v", err))
		return
	}
	conf.ApplyDefaults()

	warnings := conf.ValidateConfiguration()
	plan, err := planner.Run(h.logger, conf)
	if err != nil {
		h.logger.Warn("planning request failed",
			zap.String("op", "server.handlePlan"),
			zap.Error(err),
		)
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	response := planResponse{
		Baseline:     plan.Model.Baseline,
		Coefficients: plan.Model.Coefficients,
		Allocation:   plan.Allocation.Spend,
		Objective:    plan.Objective,
		Outcome:      plan.Allocation.Outcome,
		Profit:       plan.Allocation.Profit,
		Score:        plan.Allocation.Score,
		Tied:         plan.Allocation.Tied,
		Observations: plan.Observations,
		Warnings:     warnings,
		Duration:     time.Since(start).String(),
	}
	h.respondJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.respondError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *handler) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response",
			zap.String("op", "server.respondJSON"),
			zap.Error(err),
		)
	}
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, errorResponse{Error: message})
}
