package domain

import "testing"

func TestQuantizeQuality(t *testing.T) {
	cases := []struct {
		in   float64
		want CareQuality
	}{
		{1.0, QualityPerfect},
		{0.95, QualityPerfect},
		{0.949, QualityExcellent},
		{0.85, QualityExcellent},
		{0.84, QualityGood},
		{0.70, QualityGood},
		{0.69, QualityAverage},
		{0.50, QualityAverage},
		{0.49, QualityPoor},
		{0.25, QualityPoor},
		{0.24, QualityFailed},
		{0.0, QualityFailed},
	}
	for _, c := range cases {
		if got := QuantizeQuality(c.in); got != c.want {
			t.Errorf("QuantizeQuality(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestOutcomeForQuality(t *testing.T) {
	cases := []struct {
		in   CareQuality
		want CareOutcome
	}{
		{QualityPerfect, OutcomePerfect},
		{QualityExcellent, OutcomeSuccessful},
		{QualityGood, OutcomeSuccessful},
		{QualityAverage, OutcomeAdequate},
		{QualityPoor, OutcomeSuboptimal},
		{QualityFailed, OutcomeFailed},
	}
	for _, c := range cases {
		if got := OutcomeForQuality(c.in); got != c.want {
			t.Errorf("OutcomeForQuality(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseTask(t *testing.T) {
	if got := ParseTask("water"); got != TaskWatering {
		t.Errorf("ParseTask should be case-insensitive, got %s", got)
	}
	if got := ParseTask("TELEPORT"); got != TaskUnknown {
		t.Errorf("unknown task should parse to TaskUnknown, got %s", got)
	}
	// Round trip
	for _, task := range AllTasks() {
		if ParseTask(task.String()) != task {
			t.Errorf("round trip failed for %s", task)
		}
	}
}

func TestToolCompatibility(t *testing.T) {
	shears := &Tool{ID: "shears", Task: TaskPruning, Quality: 0.8}
	if !shears.CompatibleWith(TaskPruning) {
		t.Error("shears must be compatible with pruning")
	}
	if shears.CompatibleWith(TaskWatering) {
		t.Error("shears must not be compatible with watering")
	}
	// Bare hands work for everything
	var none *Tool
	if !none.CompatibleWith(TaskTransplanting) {
		t.Error("nil tool must be compatible with any task")
	}
}

func TestNormalizeReason(t *testing.T) {
	if got := NormalizeReason("  wrong_stage \n"); got != ReasonWrongStage {
		t.Errorf("NormalizeReason = %q, want %s", got, ReasonWrongStage)
	}
	// Canonical constants pass through unchanged
	if got := NormalizeReason(ReasonLowRelevance); got != ReasonLowRelevance {
		t.Errorf("canonical reason must be a fixed point, got %q", got)
	}
}
