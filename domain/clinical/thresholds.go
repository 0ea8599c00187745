// Package clinical holds the clinical configuration and classification rules
// shared by every analysis component.
package clinical

import "fmt"

// Thresholds is the immutable set of clinical bounds used across the
// analysis pipeline: the physiologically plausible filtering range, the
// model accuracy acceptance limits, and the heart-rate classification
// cut-offs. Components receive it explicitly; there is no package-level
// mutable state.
type Thresholds struct {
	MinValidBPM float64 `json:"min_valid_bpm"` // Readings below are discarded as artifacts
	MaxValidBPM float64 `json:"max_valid_bpm"` // Readings above are discarded as artifacts

	MaxAcceptableMAE  float64 `json:"max_acceptable_mae"`  // Clinical MAE acceptance limit (BPM)
	MaxAcceptableRMSE float64 `json:"max_acceptable_rmse"` // Clinical RMSE acceptance limit (BPM)
	R2Target          float64 `json:"r2_target"`           // R² considered a good fit

	BradycardiaBPM float64 `json:"bradycardia_bpm"` // Below → bradycardia warning
	TachycardiaBPM float64 `json:"tachycardia_bpm"` // Above → tachycardia warning
	NormalLowBPM   float64 `json:"normal_low_bpm"`  // Inclusive lower bound of the normal band
	NormalHighBPM  float64 `json:"normal_high_bpm"` // Inclusive upper bound of the normal band

	ForecastHorizon int     `json:"forecast_horizon"` // Future periods to extrapolate
	CIBase          float64 `json:"ci_base"`          // Confidence half-width at horizon 0 (BPM)
	CIStep          float64 `json:"ci_step"`          // Half-width growth per extra period (BPM)
}

// DefaultThresholds returns the reference clinical configuration.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinValidBPM:       40,
		MaxValidBPM:       200,
		MaxAcceptableMAE:  5,
		MaxAcceptableRMSE: 8,
		R2Target:          0.60,
		BradycardiaBPM:    60,
		TachycardiaBPM:    100,
		NormalLowBPM:      60,
		NormalHighBPM:     80,
		ForecastHorizon:   6,
		CIBase:            2.8,
		CIStep:            0.1,
	}
}

// Validate checks the thresholds for internal consistency.
func (t Thresholds) Validate() error {
	if t.MinValidBPM <= 0 || t.MaxValidBPM <= t.MinValidBPM {
		return fmt.Errorf("invalid plausible range [%.0f, %.0f]", t.MinValidBPM, t.MaxValidBPM)
	}
	if t.NormalHighBPM < t.NormalLowBPM {
		return fmt.Errorf("normal band inverted [%.0f, %.0f]", t.NormalLowBPM, t.NormalHighBPM)
	}
	if t.TachycardiaBPM <= t.BradycardiaBPM {
		return fmt.Errorf("tachycardia cut-off %.0f must exceed bradycardia cut-off %.0f",
			t.TachycardiaBPM, t.BradycardiaBPM)
	}
	if t.MaxAcceptableMAE <= 0 || t.MaxAcceptableRMSE <= 0 {
		return fmt.Errorf("accuracy limits must be positive (MAE %.2f, RMSE %.2f)",
			t.MaxAcceptableMAE, t.MaxAcceptableRMSE)
	}
	if t.ForecastHorizon < 0 {
		return fmt.Errorf("forecast horizon cannot be negative: %d", t.ForecastHorizon)
	}
	if t.CIStep < 0 {
		return fmt.Errorf("confidence step cannot be negative: %.3f", t.CIStep)
	}
	return nil
}
