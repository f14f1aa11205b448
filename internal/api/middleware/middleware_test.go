package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aigem2/aigem-backend/internal/api/middleware"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		echoed   bool
	}{
		{"echoes a supplied id", "req-123", true},
		{"generates when missing", "", false},
		{"replaces ids with spaces", "bad id", false},
		{"replaces oversized ids", strings.Repeat("a", 129), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			h := middleware.CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetCorrelationID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(middleware.CorrelationIDHeader, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(middleware.CorrelationIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header %q and context %q must match and be set", got, seen)
			}
			if tc.echoed && got != tc.incoming {
				t.Fatalf("expected %q echoed, got %q", tc.incoming, got)
			}
			if !tc.echoed && got == tc.incoming {
				t.Fatalf("expected a generated id, got %q", got)
			}
		})
	}
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusMethodNotAllowed, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tc := range tests {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			h := middleware.RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/test", nil))

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			e := entries[0]
			if e.Level != tc.level {
				t.Fatalf("expected level %s, got %s", tc.level, e.Level)
			}
			fields := e.ContextMap()
			if fields["status"] != int64(tc.status) || fields["method"] != http.MethodPost || fields["path"] != "/api/test" {
				t.Fatalf("unexpected fields %v", fields)
			}
		})
	}
}

type observation struct {
	route, method string
	status        int
}

type recordingObserver struct{ got []observation }

func (o *recordingObserver) ObserveRequest(route, method string, status int, _ time.Duration) {
	o.got = append(o.got, observation{route, method, status})
}

func TestMetrics_RoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(middleware.Metrics(obs))
	r.Get("/items/{id}", ok)

	for _, path := range []string{"/items/1", "/items/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	want := []observation{
		{"/items/{id}", http.MethodGet, http.StatusOK},
		{"/items/{id}", http.MethodGet, http.StatusOK},
		{"unmatched", http.MethodGet, http.StatusNotFound},
	}
	if len(obs.got) != len(want) {
		t.Fatalf("expected %d observations, got %d", len(want), len(obs.got))
	}
	for i := range want {
		if obs.got[i] != want[i] {
			t.Fatalf("observation %d: expected %+v, got %+v", i, want[i], obs.got[i])
		}
	}
}

type fixedAdmitter bool

func (a fixedAdmitter) Allow() bool { return bool(a) }

func TestRateLimit(t *testing.T) {
	reject := func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTooManyRequests) }

	t.Run("admitted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middleware.RateLimit(fixedAdmitter(true), reject, nil)(http.HandlerFunc(ok)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("refused", func(t *testing.T) {
		rejected := 0
		rec := httptest.NewRecorder()
		middleware.RateLimit(fixedAdmitter(false), reject, func() { rejected++ })(http.HandlerFunc(ok)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}
		if rec.Header().Get("Retry-After") != "1" {
			t.Fatal("expected Retry-After header")
		}
		if rejected != 1 {
			t.Fatalf("expected onReject once, got %d", rejected)
		}
	})
}
