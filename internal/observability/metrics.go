package observability

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/portfolio-backend/internal/platform/logger"
)

// Metrics holds the process counters exposed at /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	apiRequests *family
	apiLatency  *latency
	apiInflight *family
	apiReqTotal *family
	apiReqError *family

	visitsRecorded   *family
	contactDelivery  *family
	paymentRequests  *family
	imageUploads     *family
	dbPool           *family
	dbScrapeInterval time.Duration
}

// New returns nil when metrics are disabled.
func New(enabled bool) *Metrics {
	if !enabled {
		return nil
	}
	return &Metrics{
		apiRequests: newCounter("portfolio_api_requests_total", "Total API requests by method/route/status.", "method", "route", "status"),
		apiLatency: newLatency(
			"portfolio_api_request_duration_seconds",
			"API request latency in seconds by method/route/status.",
			[]string{"method", "route", "status"},
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		),
		apiInflight: newGauge("portfolio_api_inflight_requests", "In-flight API requests."),
		apiReqTotal: newCounter("portfolio_api_requests_total_all", "Total API requests (all)."),
		apiReqError: newCounter("portfolio_api_requests_error_total", "Total API requests answered with 5xx."),

		visitsRecorded:   newCounter("portfolio_visits_recorded_total", "Page visits recorded."),
		contactDelivery:  newCounter("portfolio_contact_delivery_total", "Contact notifications by delivery status.", "status"),
		paymentRequests:  newCounter("portfolio_payment_requests_total", "Payment provider calls by operation/outcome.", "operation", "outcome"),
		imageUploads:     newCounter("portfolio_image_uploads_total", "Profile image uploads by outcome.", "outcome"),
		dbPool:           newGauge("portfolio_db_pool", "database/sql pool stats.", "stat"),
		dbScrapeInterval: 15 * time.Second,
	}
}

func (m *Metrics) WriteHTTP(w http.ResponseWriter, r *http.Request) {
	if m == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_ = m.WritePrometheus(w)
}

func (m *Metrics) WritePrometheus(w io.Writer) error {
	if m == nil {
		return nil
	}
	writers := []interface{ WritePrometheus(io.Writer) error }{
		m.apiRequests,
		m.apiLatency,
		m.apiInflight,
		m.apiReqTotal,
		m.apiReqError,
		m.visitsRecorded,
		m.contactDelivery,
		m.paymentRequests,
		m.imageUploads,
		m.dbPool,
	}
	for _, mw := range writers {
		if err := mw.WritePrometheus(w); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	if method == "" {
		method = "UNKNOWN"
	}
	if route == "" {
		route = "unknown"
	}
	if status == "" {
		status = "0"
	}
	m.apiRequests.add(1, method, route, status)
	m.apiLatency.observe(dur.Seconds(), method, route, status)
	m.apiReqTotal.add(1)
	if len(status) == 3 && status[0] == '5' {
		m.apiReqError.add(1)
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.add(1)
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.add(-1)
}

func (m *Metrics) IncVisitRecorded() {
	if m == nil {
		return
	}
	m.visitsRecorded.add(1)
}

func (m *Metrics) IncContactDelivery(status string) {
	if m == nil {
		return
	}
	if status = strings.TrimSpace(status); status == "" {
		status = "unknown"
	}
	m.contactDelivery.add(1, status)
}

func (m *Metrics) IncPayment(operation, outcome string) {
	if m == nil {
		return
	}
	m.paymentRequests.add(1, operation, outcome)
}

func (m *Metrics) IncImageUpload(outcome string) {
	if m == nil {
		return
	}
	m.imageUploads.add(1, outcome)
}

// StartDBCollector samples the connection pool until ctx is done.
func (m *Metrics) StartDBCollector(ctx context.Context, log *logger.Logger, db *gorm.DB) {
	if m == nil || db == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(m.dbScrapeInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.sampleDB(log, db)
			}
		}
	}()
}

func (m *Metrics) sampleDB(log *logger.Logger, db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		if log != nil {
			log.Warn("metrics: db stats unavailable", "error", err)
		}
		return
	}
	stats := sqlDB.Stats()
	m.dbPool.set(float64(stats.OpenConnections), "open_connections")
	m.dbPool.set(float64(stats.InUse), "in_use")
	m.dbPool.set(float64(stats.Idle), "idle")
	m.dbPool.set(float64(stats.WaitCount), "wait_count")
	m.dbPool.set(stats.WaitDuration.Seconds(), "wait_duration_seconds")
	m.dbPool.set(float64(stats.MaxOpenConnections), "max_open_connections")
}
