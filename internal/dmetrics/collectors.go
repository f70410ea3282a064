// This file contains the Prometheus collector wiring for the decimalint
// engine: multiplication path counts, division correction magnitudes, and
// FFT twiddle-cache growth. Everything registers against a private
// registry rather than prometheus' package-level default, so importing
// this package never has side effects on a process-wide registry.
package dmetrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Path labels used by MultiplyPathTotal.
const (
	PathSchoolbook = "schoolbook"
	PathKaratsuba  = "karatsuba"
	PathFFT        = "fft"
)

// Registry bundles the decimalint collectors behind a dedicated
// prometheus.Registry. Callers that don't care about metrics can ignore
// it entirely; nothing in the engine requires one to exist.
type Registry struct {
	reg *prometheus.Registry
	mem *MemoryCollector

	MultiplyPathTotal   *prometheus.CounterVec
	DivisionCorrections prometheus.Histogram
	FFTCacheTwiddleSize prometheus.Gauge
	HeapAllocBytes      prometheus.Gauge
	HeapObjects         prometheus.Gauge
}

// NewRegistry builds a fresh, private collector set.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		mem: NewMemoryCollector(),
		MultiplyPathTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "decimalint_multiply_path_total",
			Help: "Count of multiplications dispatched per algorithm path.",
		}, []string{"path"}),
		DivisionCorrections: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "decimalint_division_corrections",
			Help:    "Number of bidirectional quotient corrections applied per estimated quotient digit.",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		}),
		FFTCacheTwiddleSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "decimalint_fft_cache_twiddle_size",
			Help: "Largest transform length for which twiddle roots are currently cached.",
		}),
		HeapAllocBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "decimalint_heap_alloc_bytes",
			Help: "Heap bytes in use, sampled at the last FFT-path multiply dispatch.",
		}),
		HeapObjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "decimalint_heap_objects",
			Help: "Live heap object count, sampled at the last FFT-path multiply dispatch.",
		}),
	}

	reg.MustRegister(
		r.MultiplyPathTotal, r.DivisionCorrections, r.FFTCacheTwiddleSize,
		r.HeapAllocBytes, r.HeapObjects,
	)
	return r
}

// SampleMemory reads current runtime memory statistics and pushes them
// into the heap gauges. Called from the FFT dispatch path only: that tier
// allocates the largest transient buffers, so it's the point where a
// caller watching these gauges most wants a fresh reading.
func (r *Registry) SampleMemory() MemorySnapshot {
	snap := r.mem.Snapshot()
	r.HeapAllocBytes.Set(float64(snap.HeapAlloc))
	r.HeapObjects.Set(float64(snap.HeapObjects))
	return snap
}

// Handler serves the registry's metrics in the Prometheus text exposition
// format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Default is the process-wide registry used when callers don't wire their
// own. internal/fftkernel and decimalint report into this one unless a
// component is constructed with an explicit *Registry.
var Default = NewRegistry()
