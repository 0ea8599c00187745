package clinical

import (
	"strings"
	"testing"
)

// TestClassify_BoundaryValues walks the exact band edges of the reference
// configuration.
func TestClassify_BoundaryValues(t *testing.T) {
	th := DefaultThresholds()

	cases := []struct {
		name       string
		predicted  float64
		wantStatus Status
		wantIn     string
	}{
		{"below bradycardia cutoff", 59, StatusWarning, "bradycardia"},
		{"at bradycardia cutoff", 60, StatusNormal, "normal range"},
		{"top of normal band", 80, StatusNormal, "normal range"},
		{"just above normal band", 81, StatusBorderline, "monitor"},
		{"at tachycardia cutoff", 100, StatusBorderline, "monitor"},
		{"above tachycardia cutoff", 101, StatusWarning, "tachycardia"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(th, tc.predicted)
			if got.Status != tc.wantStatus {
				t.Errorf("Classify(%g) status = %s, want %s", tc.predicted, got.Status, tc.wantStatus)
			}
			if !strings.Contains(got.Assessment, tc.wantIn) {
				t.Errorf("Classify(%g) assessment %q does not mention %q", tc.predicted, got.Assessment, tc.wantIn)
			}
			if got.Color != got.Status.Color() {
				t.Errorf("Classify(%g) color = %s, want status color %s", tc.predicted, got.Color, got.Status.Color())
			}
		})
	}
}

// TestClassify_Deterministic verifies the classification is pure: repeated
// calls with the same inputs always agree.
func TestClassify_Deterministic(t *testing.T) {
	th := DefaultThresholds()

	for _, v := range []float64{45.5, 60, 72.3, 81, 99.9, 140} {
		first := Classify(th, v)
		for i := 0; i < 3; i++ {
			if got := Classify(th, v); got != first {
				t.Fatalf("Classify(%g) changed between calls: %+v vs %+v", v, first, got)
			}
		}
	}
}

// TestClassify_RuleOrderPriority checks warnings win over band membership
// when thresholds overlap, since rules are evaluated in priority order.
func TestClassify_RuleOrderPriority(t *testing.T) {
	th := DefaultThresholds()
	th.BradycardiaBPM = 65 // Overlaps the normal band [60, 80]

	got := Classify(th, 62)
	if got.Status != StatusWarning {
		t.Errorf("overlapping bands: status = %s, want %s (bradycardia rule first)", got.Status, StatusWarning)
	}
}

func TestStatusColor_Fixed(t *testing.T) {
	cases := map[Status]string{
		StatusWarning:    "#e74c3c",
		StatusNormal:     "#2ecc71",
		StatusBorderline: "#f39c12",
	}
	for status, want := range cases {
		if got := status.Color(); got != want {
			t.Errorf("%s color = %s, want %s", status, got, want)
		}
	}
}

func TestThresholds_Validate(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Fatalf("default thresholds should validate: %v", err)
	}

	bad := DefaultThresholds()
	bad.MaxValidBPM = bad.MinValidBPM - 1
	if err := bad.Validate(); err == nil {
		t.Error("inverted plausible range should not validate")
	}

	bad = DefaultThresholds()
	bad.TachycardiaBPM = bad.BradycardiaBPM
	if err := bad.Validate(); err == nil {
		t.Error("equal cut-offs should not validate")
	}
}
