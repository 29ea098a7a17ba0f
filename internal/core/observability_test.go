package core

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestExpvarMetricsRecorderAggregates(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	ctx := context.Background()

	rec.Observe(ctx, "apply_modifications", true, 20*time.Millisecond)
	rec.Observe(ctx, "apply_modifications", true, 30*time.Millisecond)
	rec.Observe(ctx, "apply_modifications", false, 5*time.Millisecond)
	rec.Observe(ctx, "", true, time.Second)

	snap := rec.Snapshot()
	if got := snap.DurationsMS["apply_modifications"]; got != 55 {
		t.Fatalf("expected 55ms total, got %v", got)
	}
	if snap.Results["apply_modifications"]["success"] != 2 {
		t.Fatalf("unexpected success count: %+v", snap.Results)
	}
	if snap.Results["apply_modifications"]["error"] != 1 {
		t.Fatalf("unexpected error count: %+v", snap.Results)
	}
	if len(snap.Results) != 1 {
		t.Fatalf("empty operation must be ignored: %+v", snap.Results)
	}
}

func TestExpvarMetricsRecorderConcurrent(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec.Observe(context.Background(), "get_star", true, time.Millisecond)
			}
		}()
	}
	wg.Wait()
	if got := rec.Snapshot().Results["get_star"]["success"]; got != 800 {
		t.Fatalf("expected 800 observations, got %d", got)
	}
}

func TestJSONTracerEmitsSpans(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewJSONTracer(&buf)

	_, span := tracer.Start(context.Background(), "create_star")
	span.End(nil)
	_, span = tracer.Start(context.Background(), "get_star")
	span.End(errors.New("star 7 not found"))

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Status != "success" || entries[1].Status != "error" {
		t.Fatalf("unexpected statuses: %+v", entries)
	}
	if entries[1].Error != "star 7 not found" {
		t.Fatalf("error not captured: %+v", entries[1])
	}

	dec := json.NewDecoder(&buf)
	var first JSONTraceEntry
	if err := dec.Decode(&first); err != nil {
		t.Fatalf("decoding emitted span failed: %v", err)
	}
	if first.Operation != "create_star" {
		t.Fatalf("unexpected emitted span %+v", first)
	}
}

func TestPrometheusMetricsRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusMetricsRecorder(reg)
	if err != nil {
		t.Fatalf("constructing recorder failed: %v", err)
	}

	rec.Observe(context.Background(), "apply_modifications", true, 10*time.Millisecond)
	rec.Observe(context.Background(), "apply_modifications", false, 20*time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
	}
	if !found["starcore_service_operation_duration_seconds"] {
		t.Fatalf("duration histogram not registered: %v", found)
	}
	if !found["starcore_service_operation_results_total"] {
		t.Fatalf("result counter not registered: %v", found)
	}

	// Double registration on the same registry must fail.
	if _, err := NewPrometheusMetricsRecorder(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestSequenceGeneratorMonotonic(t *testing.T) {
	gen := NewSequenceGenerator(100)
	if got := gen.NextID(); got != 101 {
		t.Fatalf("expected 101, got %d", got)
	}
	if got := gen.NextID(); got != 102 {
		t.Fatalf("expected 102, got %d", got)
	}

	var wg sync.WaitGroup
	seen := make([]int64, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seen[i] = gen.NextID()
		}(i)
	}
	wg.Wait()
	unique := make(map[int64]bool, len(seen))
	for _, id := range seen {
		if unique[id] {
			t.Fatalf("duplicate id %d issued", id)
		}
		unique[id] = true
	}
}
