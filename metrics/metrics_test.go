package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestSetBufferLenRecordsGauge(t *testing.T) {
	r := New("metrics-test-buffer")
	r.SetBufferLen(3)
	if got := testutil.ToFloat64(bufferLen.WithLabelValues("metrics-test-buffer")); got != 3 {
		t.Fatalf("bufferLen: want 3, got %v", got)
	}
	r.SetBufferLen(0)
	if got := testutil.ToFloat64(bufferLen.WithLabelValues("metrics-test-buffer")); got != 0 {
		t.Fatalf("bufferLen after reset: want 0, got %v", got)
	}
}

func TestSetSelectWaitersRecordsGauge(t *testing.T) {
	r := New("metrics-test-waiters")
	r.SetSelectWaiters(2)
	if got := testutil.ToFloat64(selectWaiters.WithLabelValues("metrics-test-waiters")); got != 2 {
		t.Fatalf("selectWaiters: want 2, got %v", got)
	}
}

func TestIncOpRecordsCounter(t *testing.T) {
	r := New("metrics-test-ops")
	r.IncOp("send", "SUCCESS")
	r.IncOp("send", "SUCCESS")
	if got := testutil.ToFloat64(opsTotal.WithLabelValues("metrics-test-ops", "send", "SUCCESS")); got != 2 {
		t.Fatalf("opsTotal: want 2, got %v", got)
	}
}

func TestNilRecorderMethodsAreNoops(t *testing.T) {
	var r *Recorder
	r.SetBufferLen(5)
	r.SetSelectWaiters(5)
	r.IncOp("op", "status")
}

func TestDistinctNamesDoNotAliasMetrics(t *testing.T) {
	a := New("metrics-test-distinct-a")
	b := New("metrics-test-distinct-b")
	a.SetBufferLen(1)
	b.SetBufferLen(9)
	if got := testutil.ToFloat64(bufferLen.WithLabelValues("metrics-test-distinct-a")); got != 1 {
		t.Fatalf("a: want 1, got %v", got)
	}
	if got := testutil.ToFloat64(bufferLen.WithLabelValues("metrics-test-distinct-b")); got != 9 {
		t.Fatalf("b: want 9, got %v", got)
	}
}
