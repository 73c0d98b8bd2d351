package shop

import (
	"strings"
	"testing"
)

func TestInitialState(t *testing.T) {
	p := DefaultParams()
	s := p.InitialState()

	if s.Period != 0 {
		t.Errorf("expected period 0, got %d", s.Period)
	}
	if s.Cash != p.InitialCash {
		t.Errorf("expected cash %g, got %g", p.InitialCash, s.Cash)
	}
	if s.Workers != p.InitialWorkers {
		t.Errorf("expected %d workers, got %d", p.InitialWorkers, s.Workers)
	}
	if s.CreditFactor != 1 {
		t.Errorf("expected credit factor 1, got %g", s.CreditFactor)
	}
	if s.Motivation < 0 || s.Motivation > MotivationMax {
		t.Errorf("motivation out of bounds: %g", s.Motivation)
	}
	if s.FinishedStock > p.StorageCapacity {
		t.Errorf("finished stock above storage capacity: %g", s.FinishedStock)
	}
}

func TestMaterialPriceAt(t *testing.T) {
	p := DefaultParams()
	p.MaterialPriceSeries = []float64{8, 5, 3}

	if got := p.MaterialPriceAt(0); got != p.InitialMaterialPrice {
		t.Errorf("period 0 should use initial price, got %g", got)
	}
	if got := p.MaterialPriceAt(1); got != 8 {
		t.Errorf("expected 8, got %g", got)
	}
	if got := p.MaterialPriceAt(4); got != 8 {
		t.Errorf("series should cycle, expected 8, got %g", got)
	}

	p.MaterialPriceSeries = nil
	if got := p.MaterialPriceAt(7); got != p.InitialMaterialPrice {
		t.Errorf("empty series should hold initial price, got %g", got)
	}
}

func TestClampDecisionsInRange(t *testing.T) {
	p := DefaultParams()
	prev := p.InitialState()

	d := Decisions{Price: 52, MaterialOrder: 400, Advertising: 2800, Wage: 1080, Maintenance: 1200}
	clamped, warns := p.ClampDecisions(&prev, d)

	if clamped != d {
		t.Errorf("in-range decisions should pass unchanged: %+v", clamped)
	}
	if len(warns) != 0 {
		t.Errorf("expected no warnings, got %v", warns)
	}
}

func TestClampDecisionsOutOfRange(t *testing.T) {
	p := DefaultParams()
	prev := p.InitialState()

	d := Decisions{
		Price:         1000,
		MaterialOrder: -50,
		Advertising:   1e6,
		Wage:          -1,
		HireWorkers:   -100,
		BuyMachines:   1000,
		Maintenance:   -10,
	}
	clamped, warns := p.ClampDecisions(&prev, d)

	if clamped.Price != p.PriceMax {
		t.Errorf("expected price %g, got %g", p.PriceMax, clamped.Price)
	}
	if clamped.MaterialOrder != 0 || clamped.Wage != 0 || clamped.Maintenance != 0 {
		t.Errorf("negative spends should clamp to zero: %+v", clamped)
	}
	if clamped.HireWorkers != -prev.Workers {
		t.Errorf("firing bounded by current workers, got %d", clamped.HireWorkers)
	}
	if clamped.BuyMachines != p.MachineDeltaMax {
		t.Errorf("expected machine purchases capped at %d, got %d", p.MachineDeltaMax, clamped.BuyMachines)
	}
	if len(warns) != 7 {
		t.Errorf("expected 7 clamp warnings, got %d: %v", len(warns), warns)
	}
	for _, w := range warns {
		if w.Code != WarnInputClamped {
			t.Errorf("unexpected warning code %s", w.Code)
		}
	}
}

func TestClampDecisionsCreditCeiling(t *testing.T) {
	p := DefaultParams()
	prev := p.InitialState()
	prev.CreditFactor = 0.5

	d := Decisions{MaterialOrder: p.MaterialOrderMax, BuyMachines: p.MachineDeltaMax}
	clamped, warns := p.ClampDecisions(&prev, d)

	if clamped.MaterialOrder != p.MaterialOrderMax*0.5 {
		t.Errorf("expected order ceiling halved, got %g", clamped.MaterialOrder)
	}
	if clamped.BuyMachines != p.MachineDeltaMax/2 {
		t.Errorf("expected machine ceiling halved, got %d", clamped.BuyMachines)
	}
	if !HasWarning(warns, WarnInputClamped) {
		t.Error("expected clamp warnings under credit penalty")
	}
}

func TestClampDecisionsStepping(t *testing.T) {
	p := DefaultParams()
	p.UseSteps = true
	prev := p.InitialState()

	d := Decisions{Price: 53, MaterialOrder: 470, Advertising: 2850, Wage: 1080, Maintenance: 1199}
	clamped, warns := p.ClampDecisions(&prev, d)

	if clamped.Price != 52 {
		t.Errorf("expected price stepped to 52, got %g", clamped.Price)
	}
	if clamped.MaterialOrder != 450 {
		t.Errorf("expected order stepped to 450, got %g", clamped.MaterialOrder)
	}
	if clamped.Advertising != 2800 {
		t.Errorf("expected advertising stepped to 2800, got %g", clamped.Advertising)
	}
	if clamped.Maintenance != 1100 {
		t.Errorf("expected maintenance stepped to 1100, got %g", clamped.Maintenance)
	}
	if len(warns) != 0 {
		t.Errorf("step quantization alone should not warn, got %v", warns)
	}
}

func TestWarningString(t *testing.T) {
	w := Warningf(WarnLostSales, "%d units unmet", 12)
	if !strings.Contains(w.String(), "lost_sales") || !strings.Contains(w.String(), "12 units") {
		t.Errorf("unexpected warning string: %s", w.String())
	}
}
