package nudge

import (
	"strings"
	"testing"

	"khata/internal/model"
)

func baseInput() Input {
	return Input{
		SpendByCategory: map[model.Category]float64{model.CategoryOutings: 100},
		Budgets:         map[model.Category]float64{model.CategoryOutings: 1200},
		DaysLeft:        30,
	}
}

func TestDefaultMessageWhenNothingFires(t *testing.T) {
	got := Evaluate(baseInput())
	if len(got) != 1 {
		t.Fatalf("message count = %d, want 1", len(got))
	}
	if !strings.Contains(got[0], "All good") {
		t.Fatalf("default message = %q", got[0])
	}
}

func TestOutingsOverspendFires(t *testing.T) {
	in := baseInput()
	in.SpendByCategory[model.CategoryOutings] = 1500

	got := Evaluate(in)
	if len(got) != 1 || !strings.Contains(got[0], "over budget") {
		t.Fatalf("messages = %v, want single overspend warning", got)
	}
}

func TestRunwayWarningFires(t *testing.T) {
	in := baseInput()
	in.DaysLeft = 3

	got := Evaluate(in)
	if len(got) != 1 || !strings.Contains(got[0], "runs out in 3 days") {
		t.Fatalf("messages = %v, want runway warning", got)
	}
}

func TestUnboundedRunwayDoesNotWarn(t *testing.T) {
	in := baseInput()
	in.DaysLeft = 0
	in.Unbounded = true

	got := Evaluate(in)
	if len(got) != 1 || !strings.Contains(got[0], "All good") {
		t.Fatalf("messages = %v, want default only", got)
	}
}

func TestLowEmergencyJarFires(t *testing.T) {
	in := baseInput()
	in.Jars = []model.Jar{{Key: model.JarEmergency, Name: "Emergency", Target: 5000, Saved: 500}}

	got := Evaluate(in)
	if len(got) != 1 || !strings.Contains(got[0], "Emergency jar") {
		t.Fatalf("messages = %v, want emergency warning", got)
	}
}

func TestHealthyEmergencyJarDoesNotFire(t *testing.T) {
	in := baseInput()
	in.Jars = []model.Jar{{Key: model.JarEmergency, Name: "Emergency", Target: 5000, Saved: 2500}}

	got := Evaluate(in)
	if len(got) != 1 || !strings.Contains(got[0], "All good") {
		t.Fatalf("messages = %v, want default only", got)
	}
}

func TestAllRulesFireInOrder(t *testing.T) {
	in := Input{
		SpendByCategory: map[model.Category]float64{model.CategoryOutings: 2000},
		Budgets:         map[model.Category]float64{model.CategoryOutings: 1200},
		DaysLeft:        2,
		Jars:            []model.Jar{{Key: model.JarEmergency, Saved: 100}},
	}

	got := Evaluate(in)
	if len(got) != 3 {
		t.Fatalf("message count = %d, want 3", len(got))
	}
	if !strings.Contains(got[0], "over budget") ||
		!strings.Contains(got[1], "runs out") ||
		!strings.Contains(got[2], "Emergency jar") {
		t.Fatalf("messages out of order: %v", got)
	}
}
