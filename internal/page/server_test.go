// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package page

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/race"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, log *bytes.Buffer) *Server {
	t.Helper()
	return NewServer(race.Default(), chart.FullConfig(), Options{}, zerolog.New(log))
}

func get(s *Server, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	var log bytes.Buffer
	s := newTestServer(t, &log)

	for _, test := range []struct {
		path, contentType, body string
	}{
		{"/", "text/html; charset=utf-8", `id="tooltip"`},
		{"/chart.svg", "image/svg+xml", `id="legend"`},
		{"/chart.svg?variant=axes", "image/svg+xml", `id="y-axis"`},
		{"/data.json", "application/json", `"Nairo Quintana"`},
		{"/healthz", "text/plain; charset=utf-8", "ok"},
		{"/metrics", "", "racechart_renders_total"},
	} {
		rec := get(s, test.path)
		require.Equal(t, http.StatusOK, rec.Code, test.path)
		if test.contentType != "" {
			assert.Equal(t, test.contentType, rec.Header().Get("Content-Type"), test.path)
		}
		assert.Contains(t, rec.Body.String(), test.body, test.path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), test.path)
	}

	assert.Contains(t, log.String(), `"path":"/chart.svg"`)
	assert.Contains(t, log.String(), `"status":200`)
}

func TestPNG(t *testing.T) {
	s := newTestServer(t, new(bytes.Buffer))
	rec := get(s, "/chart.png?variant=legend")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 720, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestRenderCounter(t *testing.T) {
	s := newTestServer(t, new(bytes.Buffer))
	get(s, "/chart.svg")
	get(s, "/chart.svg")
	get(s, "/")

	assert.Equal(t, 2.0, testutil.ToFloat64(s.renders.WithLabelValues("svg")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.renders.WithLabelValues("html")))
	assert.Equal(t, 0.0, testutil.ToFloat64(s.renders.WithLabelValues("png")))
}

func TestBadVariant(t *testing.T) {
	s := newTestServer(t, new(bytes.Buffer))
	rec := get(s, "/chart.svg?variant=bars")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.renders.WithLabelValues("svg")))
}

func TestDataRoundTrip(t *testing.T) {
	s := newTestServer(t, new(bytes.Buffer))
	rec := get(s, "/data.json")
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := race.Load(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	assert.Equal(t, race.Default(), got)
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, new(bytes.Buffer))
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get("X-Request-ID"))
}
