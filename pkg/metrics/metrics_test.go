package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("doctor-booking", reg)

	m.ObserveClinicAPICall("book_appointment", "success", 20*time.Millisecond)
	m.ObserveClinicAPICall("book_appointment", "rejected", 10*time.Millisecond)
	m.ObserveSlotWindow("doc-1", 7, false, time.Millisecond)
	m.ObserveSlotWindow("doc-1", 3, true, time.Millisecond)
	m.ObserveCacheLookup("doctors", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.clinicAPIRequestsTotal.WithLabelValues("book_appointment", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotWindowTruncated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheRequestsTotal.WithLabelValues("doctors", "hit")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("/api/v1/navigation", "GET", "200", time.Millisecond)
		m.ObserveClinicAPICall("list_doctors", "success", time.Millisecond)
		m.ObserveSlotWindow("doc-1", 7, false, time.Millisecond)
		m.ObserveDBQuery("select", "ok", time.Millisecond)
		m.SetDBPoolStats(1, 1, 0, 0)
		m.ObserveCacheLookup("doctors", false)
	})
}

func TestMetrics_SlotWindowBucketsHasNoDoctorLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("doctor-booking", reg)

	m.ObserveSlotWindow("doc-1", 7, false, time.Millisecond)
	m.ObserveSlotWindow("doc-2", 3, true, time.Millisecond)
	m.ObserveSlotWindow("doc-3", 0, true, time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.slotWindowBuckets))

	var metric dto.Metric
	require.NoError(t, m.slotWindowBuckets.Write(&metric))
	assert.Equal(t, uint64(3), metric.GetHistogram().GetSampleCount())
	assert.Equal(t, 10.0, metric.GetHistogram().GetSampleSum())
	for _, label := range metric.GetLabel() {
		assert.NotEqual(t, "doctor_id", label.GetName())
	}
}
