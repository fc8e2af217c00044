// Package server exposes the affordability calculator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/worthit/internal/afford"
	"github.com/theirongolddev/worthit/internal/logging"
	"github.com/theirongolddev/worthit/internal/metrics"
	"github.com/theirongolddev/worthit/internal/store"
)

// DefaultAddr is used when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:8787"

// PreferenceStore persists the schedule the calculator runs with.
type PreferenceStore interface {
	LoadPreferences(defaults store.Preferences) (store.Preferences, error)
	SavePreferences(p store.Preferences) error
}

// Config controls the server runtime behavior.
type Config struct {
	Addr     string
	Defaults store.Preferences
	Logger   *logrus.Logger
	Registry *prometheus.Registry
}

// Status is served at /v1/status.
type Status struct {
	StartedAt         time.Time    `json:"started_at"`
	Addr              string       `json:"addr"`
	Calculations      int64        `json:"calculations"`
	NoResults         int64        `json:"no_results"`
	Invalid           int64        `json:"invalid"`
	LastCalculationAt *time.Time   `json:"last_calculation_at,omitempty"`
	Schedule          ScheduleBody `json:"schedule"`
	LastError         string       `json:"last_error,omitempty"`
}

// Service provides the HTTP API.
type Service struct {
	cfg      Config
	prefs    PreferenceStore
	log      *logrus.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	mu                sync.RWMutex
	startedAt         time.Time
	calculations      int64
	noResults         int64
	invalid           int64
	lastCalculationAt time.Time
	lastError         string
}

// New returns a service backed by prefs.
func New(cfg Config, prefs PreferenceStore) *Service {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Defaults == (store.Preferences{}) {
		cfg.Defaults = store.DefaultPreferences()
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	if cfg.Registry == nil {
		cfg.Registry = prometheus.NewRegistry()
	}

	return &Service{
		cfg:       cfg,
		prefs:     prefs,
		log:       cfg.Logger,
		registry:  cfg.Registry,
		metrics:   metrics.New(cfg.Registry),
		startedAt: time.Now(),
	}
}

// Handler returns the routed HTTP handler.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Post("/calculate", s.handleCalculate)
		r.Get("/schedule", s.handleGetSchedule)
		r.Put("/schedule", s.handlePutSchedule)
	})

	return r
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Service) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.log.WithField("addr", ln.Addr().String()).Info("worthit server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("worthit http server: %w", err)
	}
}

func (s *Service) preferences() (store.Preferences, error) {
	p, err := s.prefs.LoadPreferences(s.cfg.Defaults)
	if err != nil {
		s.recordError(err)
		return s.cfg.Defaults, err
	}
	return p, nil
}

func (s *Service) recordOutcome(outcome string, requiredDays float64) {
	s.metrics.Calculations.WithLabelValues(outcome).Inc()

	s.mu.Lock()
	defer s.mu.Unlock()
	switch outcome {
	case metrics.OutcomeInvalid:
		s.invalid++
		return
	case metrics.OutcomeNoResult:
		s.noResults++
	case metrics.OutcomeResult:
		s.metrics.RequiredDays.Observe(requiredDays)
	}
	s.calculations++
	s.lastCalculationAt = time.Now()
}

func (s *Service) recordError(err error) {
	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()
	s.log.WithError(err).Warn("preference store error")
}

func (s *Service) snapshotStatus() Status {
	p, _ := s.preferences()

	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Status{
		StartedAt:    s.startedAt,
		Addr:         s.cfg.Addr,
		Calculations: s.calculations,
		NoResults:    s.noResults,
		Invalid:      s.invalid,
		Schedule:     scheduleBody(p),
		LastError:    s.lastError,
	}
	if !s.lastCalculationAt.IsZero() {
		at := s.lastCalculationAt
		st.LastCalculationAt = &at
	}
	return st
}

func scheduleBody(p store.Preferences) ScheduleBody {
	return ScheduleBody{
		SalaryPeriod:    string(p.SalaryPeriod),
		WorkDaysPerWeek: p.WorkDaysPerWeek,
		WorkHoursPerDay: p.WorkHoursPerDay,
	}
}

func schedulePrefs(b ScheduleBody, fallback store.Preferences) (store.Preferences, error) {
	p := store.Preferences{
		SalaryPeriod:    fallback.SalaryPeriod,
		WorkDaysPerWeek: b.WorkDaysPerWeek,
		WorkHoursPerDay: b.WorkHoursPerDay,
	}
	if b.SalaryPeriod != "" {
		period, err := afford.ParseSalaryPeriod(b.SalaryPeriod)
		if err != nil {
			return p, err
		}
		p.SalaryPeriod = period
	}
	return p, nil
}
