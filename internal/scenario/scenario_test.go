package scenario

import (
	"reflect"
	"testing"

	"github.com/brand-d/tailorshop/internal/config"
	"github.com/brand-d/tailorshop/internal/metrics"
)

func TestRunBaseline(t *testing.T) {
	cfg := config.GetPreset("baseline")
	s := New(cfg, metrics.Defaults())

	result, err := s.Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Name != "baseline" {
		t.Errorf("expected name baseline, got %q", result.Name)
	}
	if len(result.History) != cfg.Periods+1 {
		t.Errorf("expected %d snapshots, got %d", cfg.Periods+1, len(result.History))
	}
	if result.History[0].Period != 0 {
		t.Errorf("history must start at period 0, got %d", result.History[0].Period)
	}
	if last := result.History[len(result.History)-1]; last.Period != cfg.Periods {
		t.Errorf("history must end at period %d, got %d", cfg.Periods, last.Period)
	}

	for _, name := range []string{"cumulative_profit", "lost_sales", "idle_ratio", "company_value"} {
		if _, ok := result.Metrics[name]; !ok {
			t.Errorf("missing metric %q", name)
		}
	}

	if !s.Engine().Closed() {
		t.Error("a finished run must leave the engine closed")
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() *Result {
		result, err := New(config.GetPreset("expansion"), metrics.Defaults()).Run()
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return result
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first.History, second.History) {
		t.Error("identical configs must replay identically")
	}
	if !reflect.DeepEqual(first.Metrics, second.Metrics) {
		t.Error("metrics must replay identically")
	}
}

func TestRunOverstaffedWarns(t *testing.T) {
	result, err := New(config.GetPreset("overstaffed"), metrics.Defaults()).Run()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if result.Warnings == 0 {
		t.Error("a starved oversized workforce should raise warnings")
	}
}

func TestRunRejectsBadPeriods(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Periods = 0
	if _, err := New(cfg, nil).Run(); err == nil {
		t.Error("expected error for zero periods")
	}

	cfg.Periods = -3
	if _, err := New(cfg, nil).Run(); err == nil {
		t.Error("expected error for negative periods")
	}
}
