package engine

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/brand-d/tailorshop/internal/models"
	"github.com/brand-d/tailorshop/internal/shop"
)

func holdCourse() shop.Decisions {
	return shop.Decisions{
		Price:         52,
		MaterialOrder: 400,
		Advertising:   2800,
		Wage:          1080,
		Maintenance:   1200,
	}
}

// a script that pushes against every boundary of the model
func stressScript() []shop.Decisions {
	return []shop.Decisions{
		{Price: 1000, MaterialOrder: 1e6, Advertising: 1e6, Wage: 1e6, HireWorkers: 50, BuyMachines: 50, Maintenance: 1e6},
		{Price: 0, Wage: 0, HireWorkers: -100, BuyMachines: -100},
		{Price: 10, MaterialOrder: 5000, Advertising: 10000, Wage: 5000, HireWorkers: 20, BuyMachines: 20, Maintenance: 5000},
		{Price: 100, Wage: 200, HireWorkers: -20, BuyMachines: -20},
		holdCourse(),
	}
}

func TestAdvanceDeterminism(t *testing.T) {
	run := func() []shop.State {
		e := New(shop.DefaultParams())
		for i := 0; i < 10; i++ {
			script := stressScript()
			if _, err := e.Advance(script[i%len(script)]); err != nil {
				t.Fatalf("advance failed: %v", err)
			}
		}
		return e.History()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Error("identical scripts must produce bit-identical histories")
	}
}

func TestAdvanceInvariants(t *testing.T) {
	e := New(shop.DefaultParams())
	p := e.Params()
	script := stressScript()

	for i := 0; i < 20; i++ {
		prev := e.Current()
		s, err := e.Advance(script[i%len(script)])
		if err != nil {
			t.Fatalf("period %d: %v", i+1, err)
		}

		if s.MaterialStock < 0 || s.FinishedStock < 0 {
			t.Errorf("period %d: negative stock %g/%g", s.Period, s.MaterialStock, s.FinishedStock)
		}
		if s.Workers < 0 || s.Machines < 0 {
			t.Errorf("period %d: negative counts %d/%d", s.Period, s.Workers, s.Machines)
		}
		if s.FinishedStock > p.StorageCapacity {
			t.Errorf("period %d: stock %g above capacity", s.Period, s.FinishedStock)
		}
		if s.Motivation < 0 || s.Motivation > shop.MotivationMax {
			t.Errorf("period %d: motivation %g out of bounds", s.Period, s.Motivation)
		}
		if s.Wear < 0 || s.Wear > shop.WearMax {
			t.Errorf("period %d: wear %g out of bounds", s.Period, s.Wear)
		}
		if s.Awareness < 0 || s.Awareness > shop.AwarenessMax {
			t.Errorf("period %d: awareness %g out of bounds", s.Period, s.Awareness)
		}

		// sales are capped by the stock available within the period
		if s.UnitsSold > prev.FinishedStock+s.UnitsProduced+1e-9 {
			t.Errorf("period %d: sold %g exceeds available stock", s.Period, s.UnitsSold)
		}
		// production is capped by effective capacity
		if cap := models.Capacity(&p, &s); s.UnitsProduced > cap+1e-9 {
			t.Errorf("period %d: produced %g exceeds capacity %g", s.Period, s.UnitsProduced, cap)
		}
		// cash moves by exactly revenue minus cost
		if s.Profit != s.Revenue-s.Cost {
			t.Errorf("period %d: profit %g != revenue-cost %g", s.Period, s.Profit, s.Revenue-s.Cost)
		}
		if s.Cash != prev.Cash+s.Profit {
			t.Errorf("period %d: cash %g != prev+profit %g", s.Period, s.Cash, prev.Cash+s.Profit)
		}
	}
}

func TestAdvancePeriodCounter(t *testing.T) {
	e := New(shop.DefaultParams())
	for i := 1; i <= 5; i++ {
		s, err := e.Advance(holdCourse())
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		if s.Period != i {
			t.Errorf("expected period %d, got %d", i, s.Period)
		}
	}
	if len(e.History()) != 6 {
		t.Errorf("expected 6 snapshots, got %d", len(e.History()))
	}
}

func TestHistoryIdempotent(t *testing.T) {
	e := New(shop.DefaultParams())
	e.Advance(holdCourse())
	e.Advance(holdCourse())

	first := e.History()
	second := e.History()
	if !reflect.DeepEqual(first, second) {
		t.Error("history must be stable between advances")
	}

	// mutating a returned slice must not touch the engine's history
	first[0].Cash = -1
	if e.History()[0].Cash == -1 {
		t.Error("history must return a copy")
	}
}

func TestZeroDecisionsScenario(t *testing.T) {
	// strip the overhead flows so the only cost left is the wage bill
	p := shop.DefaultParams()
	p.OverheadRent = 0
	p.FinishedStorage = 0
	p.MaterialStorage = 0
	p.PositiveInterest = 0
	p.NegativeInterest = 0

	e := New(p)
	prev := e.Current()

	s, err := e.Advance(shop.Decisions{Wage: p.InitialWage})
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}

	if s.UnitsSold != 0 {
		t.Errorf("expected no sales at price 0, got %g", s.UnitsSold)
	}
	if s.Revenue != 0 {
		t.Errorf("expected no revenue, got %g", s.Revenue)
	}
	wages := float64(s.Workers) * p.InitialWage
	if s.Cash != prev.Cash-wages {
		t.Errorf("expected cash %g, got %g", prev.Cash-wages, s.Cash)
	}
}

func TestOverHiringScenario(t *testing.T) {
	e := New(shop.DefaultParams())
	p := e.Params()

	d := holdCourse()
	d.HireWorkers = 12
	d.MaterialOrder = 50

	for i := 0; i < 5; i++ {
		s, err := e.Advance(d)
		if err != nil {
			t.Fatalf("advance failed: %v", err)
		}
		d.HireWorkers = 0

		if !shop.HasWarning(s.Warnings, shop.WarnMaterialScarce) {
			t.Errorf("period %d: expected material scarcity warning", s.Period)
		}
		if s.FinishedStock >= p.StorageCapacity {
			t.Errorf("period %d: starved shop should not fill storage", s.Period)
		}
	}
}

func TestAdvanceAfterClose(t *testing.T) {
	e := New(shop.DefaultParams())
	e.Advance(holdCourse())
	e.Close()

	before := len(e.History())
	_, err := e.Advance(holdCourse())
	if !errors.Is(err, shop.ErrRunClosed) {
		t.Errorf("expected ErrRunClosed, got %v", err)
	}
	if len(e.History()) != before {
		t.Error("closed run must not grow history")
	}
	if !e.Closed() {
		t.Error("engine should report closed")
	}
}

func TestAdvanceInvalidInput(t *testing.T) {
	e := New(shop.DefaultParams())

	d := holdCourse()
	d.Price = math.NaN()

	before := len(e.History())
	_, err := e.Advance(d)
	if !errors.Is(err, shop.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(e.History()) != before {
		t.Error("failed advance must leave history unchanged")
	}

	// the run stays Ready
	if _, err := e.Advance(holdCourse()); err != nil {
		t.Errorf("engine should accept valid input after a rejection: %v", err)
	}
}

func TestClampWarningsSurface(t *testing.T) {
	e := New(shop.DefaultParams())

	d := holdCourse()
	d.Price = 1e6
	s, err := e.Advance(d)
	if err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if !shop.HasWarning(s.Warnings, shop.WarnInputClamped) {
		t.Errorf("expected clamp warning, got %v", s.Warnings)
	}
	if s.Price != e.Params().PriceMax {
		t.Errorf("expected price clamped to %g, got %g", e.Params().PriceMax, s.Price)
	}
}
