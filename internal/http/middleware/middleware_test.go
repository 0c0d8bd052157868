package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/portfolio-backend/internal/observability"
	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

func TestTraceContextPropagatesRequestID(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(AttachTraceContext())
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "req-123" {
		t.Fatalf("request id in ctx: want=%q got=%q", "req-123", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "req-123" {
		t.Fatalf("response header: got=%q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Header().Get("X-Request-Id") == "" || rec.Header().Get("X-Trace-Id") == "" {
		t.Fatalf("expected generated ids, got headers %v", rec.Header())
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "bad id\r\nX-Evil: 1")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Request-Id"); got == "" || strings.Contains(got, " ") {
		t.Fatalf("untrusted request id should be replaced, got=%q", got)
	}
}

func TestCorrelationID(t *testing.T) {
	t.Parallel()
	tooLong := strings.Repeat("a", maxCorrelationIDLen+1)
	longest := strings.Repeat("b", maxCorrelationIDLen)
	cases := map[string]string{
		"":           "",
		"req-123":    "req-123",
		"a.b_c-D9":   "a.b_c-D9",
		"has space":  "",
		"semi;colon": "",
		tooLong:      "",
		longest:      longest,
	}
	for in, want := range cases {
		if got := correlationID(in); got != want {
			t.Fatalf("correlationID(%q): want=%q got=%q", in, want, got)
		}
	}
}

func TestRecoveryRendersJSON(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(logger.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: want=%d got=%d", http.StatusInternalServerError, rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	if body["message"] != "Internal Server Error" {
		t.Fatalf("message: got=%q", body["message"])
	}
}

func TestMetricsMiddlewareUsesRoutePattern(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	m := observability.New(true)
	r := gin.New()
	r.Use(Metrics(m), RequestLogger(logger.Nop()))
	r.GET("/uploads/:name", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/a.png", nil))

	out := httptest.NewRecorder()
	m.WriteHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	want := `portfolio_api_requests_total{method="GET",route="/uploads/:name",status="404"} 1.000000`
	if !strings.Contains(out.Body.String(), want) {
		t.Fatalf("missing %q in:\n%s", want, out.Body.String())
	}
}

func TestMetricsMiddlewareLabelsUnmatchedAndSkipsScrape(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	m := observability.New(true)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/metrics", gin.WrapF(m.WriteHTTP))
	r.NoRoute(func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/about/me", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	out := httptest.NewRecorder()
	m.WriteHTTP(out, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := out.Body.String()
	if want := `route="fallback",status="404"} 1.000000`; !strings.Contains(body, want) {
		t.Fatalf("missing %q in:\n%s", want, body)
	}
	if strings.Contains(body, `route="/metrics"`) {
		t.Fatalf("scrape endpoint should not be counted:\n%s", body)
	}
}
