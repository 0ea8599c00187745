package clinical

import "fmt"

// Status represents the clinical category of a predicted heart rate
type Status string

const (
	StatusWarning    Status = "warning"
	StatusNormal     Status = "normal"
	StatusBorderline Status = "borderline"
)

// Color returns the fixed display color token for a status.
func (s Status) Color() string {
	switch s {
	case StatusWarning:
		return "#e74c3c"
	case StatusNormal:
		return "#2ecc71"
	case StatusBorderline:
		return "#f39c12"
	default:
		return "#95a5a6"
	}
}

// Classification is the judgment on a single predicted value
type Classification struct {
	Status     Status `json:"status"`
	Assessment string `json:"assessment"` // Human-readable explanation
	Color      string `json:"color"`
}

// rule is a single classification band. Rules are evaluated in order and the
// first match wins, so band priority is encoded by position, not by range
// partitioning.
type rule struct {
	matches    func(t Thresholds, v float64) bool
	status     Status
	assessment func(t Thresholds, v float64) string
}

var rules = []rule{
	{
		matches: func(t Thresholds, v float64) bool { return v < t.BradycardiaBPM },
		status:  StatusWarning,
		assessment: func(t Thresholds, v float64) string {
			return fmt.Sprintf("potential bradycardia (%.1f BPM below %.0f)", v, t.BradycardiaBPM)
		},
	},
	{
		matches: func(t Thresholds, v float64) bool { return v > t.TachycardiaBPM },
		status:  StatusWarning,
		assessment: func(t Thresholds, v float64) string {
			return fmt.Sprintf("potential tachycardia (%.1f BPM above %.0f)", v, t.TachycardiaBPM)
		},
	},
	{
		matches: func(t Thresholds, v float64) bool { return v >= t.NormalLowBPM && v <= t.NormalHighBPM },
		status:  StatusNormal,
		assessment: func(t Thresholds, v float64) string {
			return fmt.Sprintf("within normal range (%.0f-%.0f BPM)", t.NormalLowBPM, t.NormalHighBPM)
		},
	},
}

// Classify maps a predicted heart rate to exactly one clinical category.
// It is pure and stateless: the same value and thresholds always yield the
// same classification.
func Classify(t Thresholds, predicted float64) Classification {
	for _, r := range rules {
		if r.matches(t, predicted) {
			return Classification{
				Status:     r.status,
				Assessment: r.assessment(t, predicted),
				Color:      r.status.Color(),
			}
		}
	}

	// Values above the normal band but at or below the tachycardia cut-off
	return Classification{
		Status:     StatusBorderline,
		Assessment: "elevated but not critical, monitor trends",
		Color:      StatusBorderline.Color(),
	}
}
