package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	resumesCreatedTotal atomic.Uint64
	resumesUpdatedTotal atomic.Uint64
	resumesDeletedTotal atomic.Uint64
	assistCallsTotal    atomic.Uint64
	assistFailedTotal   atomic.Uint64

	assistDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncResumesCreated increments the created counter.
func IncResumesCreated() {
	resumesCreatedTotal.Add(1)
}

// IncResumesUpdated increments the updated counter.
func IncResumesUpdated() {
	resumesUpdatedTotal.Add(1)
}

// IncResumesDeleted increments the deleted counter.
func IncResumesDeleted() {
	resumesDeletedTotal.Add(1)
}

// IncAssistCalls increments the assist call counter.
func IncAssistCalls() {
	assistCallsTotal.Add(1)
}

// IncAssistFailed increments the assist failure counter.
func IncAssistFailed() {
	assistFailedTotal.Add(1)
}

// ObserveAssistDurationMs records an assist round-trip duration in milliseconds.
func ObserveAssistDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	assistDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "resumes_created_total", "Total resumes created", resumesCreatedTotal.Load())
	writeCounter(&buf, "resumes_updated_total", "Total resumes updated", resumesUpdatedTotal.Load())
	writeCounter(&buf, "resumes_deleted_total", "Total resumes deleted", resumesDeletedTotal.Load())
	writeCounter(&buf, "assist_calls_total", "Total text-assist calls", assistCallsTotal.Load())
	writeCounter(&buf, "assist_failed_total", "Total text-assist failures", assistFailedTotal.Load())
	writeHistogram(&buf, "assist_duration_ms", "Text-assist round trip in milliseconds", assistDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	buckets := make([]float64, len(h.buckets))
	copy(buckets, h.buckets)
	return histogramSnapshot{
		buckets: buckets,
		counts:  counts,
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	cumulative := uint64(0)
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(bound, 'f', -1, 64), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %g\n", name, snap.sum)
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
