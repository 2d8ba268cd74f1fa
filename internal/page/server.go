// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/internal/raster"
	"github.com/aclements/racechart/race"
	"github.com/aclements/racechart/scene"
	"github.com/felixge/httpsnoop"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server serves a chart of a fixed set of records in every output
// format.
type Server struct {
	records []race.Record
	cfg     chart.Config
	opts    Options
	log     zerolog.Logger

	router   *mux.Router
	registry *prometheus.Registry
	renders  *prometheus.CounterVec
}

// NewServer returns a server for records. cfg is the chart
// configuration used unless a request names a variant with the
// "variant" query parameter.
func NewServer(records []race.Record, cfg chart.Config, opts Options, log zerolog.Logger) *Server {
	s := &Server{
		records:  records,
		cfg:      cfg,
		opts:     opts,
		log:      log,
		router:   mux.NewRouter(),
		registry: prometheus.NewRegistry(),
	}
	s.renders = promauto.With(s.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "racechart",
		Name:      "renders_total",
		Help:      "Charts rendered, by output format.",
	}, []string{"format"})

	s.router.Use(s.logRequests)
	s.router.HandleFunc("/", s.serveHTML).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.svg", s.serveSVG).Methods(http.MethodGet)
	s.router.HandleFunc("/chart.png", s.servePNG).Methods(http.MethodGet)
	s.router.HandleFunc("/data.json", s.serveData).Methods(http.MethodGet)
	s.router.HandleFunc("/healthz", s.serveHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Registry returns the registry holding the server's metrics.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		m := httpsnoop.CaptureMetrics(next, w, r)
		ev := s.log.Info()
		if m.Code >= http.StatusInternalServerError {
			ev = s.log.Error()
		}
		ev.Str("request_id", id).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", m.Code).
			Int64("bytes", m.Written).
			Dur("elapsed", m.Duration).
			Msg("request")
	})
}

// build lays out a fresh chart for a request.
func (s *Server) build(r *http.Request) (*chart.Chart, error) {
	cfg := s.cfg
	if v := r.URL.Query().Get("variant"); v != "" {
		var err error
		if cfg, err = chart.VariantConfig(v); err != nil {
			return nil, err
		}
	}
	container := scene.Elem("div").SetAttr("id", "container")
	return chart.Build(container, s.records, cfg)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, chart.ErrBadConfig) {
		code = http.StatusBadRequest
	}
	s.log.Warn().Err(err).Str("path", r.URL.Path).Msg("render failed")
	http.Error(w, err.Error(), code)
}

// render builds a chart, writes it with write into a buffer, and
// sends it. Nothing is sent on failure, so errors still get a proper
// status.
func (s *Server) render(w http.ResponseWriter, r *http.Request, format, contentType string, write func(*bytes.Buffer, *chart.Chart) error) {
	c, err := s.build(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var buf bytes.Buffer
	if err := write(&buf, c); err != nil {
		s.fail(w, r, err)
		return
	}
	s.renders.WithLabelValues(format).Inc()
	w.Header().Set("Content-Type", contentType)
	_, _ = buf.WriteTo(w)
}

func (s *Server) serveHTML(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "html", "text/html; charset=utf-8", func(buf *bytes.Buffer, c *chart.Chart) error {
		return Render(buf, c, s.opts)
	})
}

func (s *Server) serveSVG(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "svg", "image/svg+xml", func(buf *bytes.Buffer, c *chart.Chart) error {
		return scene.WriteSVG(buf, c.Root())
	})
}

func (s *Server) servePNG(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "png", "image/png", func(buf *bytes.Buffer, c *chart.Chart) error {
		return raster.Encode(buf, c.Root())
	})
}

// dataRecord is the JSON form of a race.Record, in the field layout of
// the source dataset.
type dataRecord struct {
	Time        string `json:"Time"`
	Place       int    `json:"Place,omitempty"`
	Seconds     float64
	Name        string
	Year        int
	Nationality string
	Doping      string
	URL         string
}

func (s *Server) serveData(w http.ResponseWriter, r *http.Request) {
	out := make([]dataRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = dataRecord{
			Time:        chart.FormatMinSec(rec.Time),
			Place:       rec.Place,
			Seconds:     rec.Seconds,
			Name:        rec.Name,
			Year:        rec.Year,
			Nationality: rec.Nationality,
			Doping:      rec.Doping,
			URL:         rec.URL,
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.log.Warn().Err(err).Msg("writing data")
	}
}

func (s *Server) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
