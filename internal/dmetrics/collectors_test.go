package dmetrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistryRegistersCollectors(t *testing.T) {
	r := NewRegistry()

	r.MultiplyPathTotal.WithLabelValues(PathKaratsuba).Inc()
	r.DivisionCorrections.Observe(2)
	r.FFTCacheTwiddleSize.Set(4096)
	r.SampleMemory()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	for _, want := range []string{
		"decimalint_multiply_path_total",
		"decimalint_division_corrections",
		"decimalint_fft_cache_twiddle_size",
		"decimalint_heap_alloc_bytes",
		"decimalint_heap_objects",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("expected metrics output to contain %q, got %q", want, body)
		}
	}
}

func TestSampleMemoryPopulatesHeapGauges(t *testing.T) {
	r := NewRegistry()
	snap := r.SampleMemory()

	if snap.HeapAlloc == 0 {
		t.Fatal("expected a non-zero heap reading")
	}
	if got := testutil.ToFloat64(r.HeapAllocBytes); got != float64(snap.HeapAlloc) {
		t.Errorf("HeapAllocBytes gauge = %v, want %v", got, snap.HeapAlloc)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	a.MultiplyPathTotal.WithLabelValues(PathFFT).Inc()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, req)

	if strings.Contains(rec.Body.String(), "decimalint_multiply_path_total{path=\"fft\"} 1") {
		t.Error("registry b should not see collector writes made against registry a")
	}
}
