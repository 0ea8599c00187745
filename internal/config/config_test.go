package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"READINGS_FILE", "READINGS_SHEET", "CV_FOLDS", "ANALYSIS_PARALLEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults failed: %v", err)
	}

	if cfg.Input.Sheet != "Readings" {
		t.Errorf("default sheet = %q, want Readings", cfg.Input.Sheet)
	}
	if cfg.Analysis.Folds != 5 {
		t.Errorf("default folds = %d, want 5", cfg.Analysis.Folds)
	}
	if !cfg.Analysis.Parallel {
		t.Error("parallel should default to true")
	}
	if err := cfg.Thresholds.Validate(); err != nil {
		t.Errorf("default thresholds invalid: %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("READINGS_FILE", "/data/hr.xlsx")
	t.Setenv("READINGS_SHEET", "Monthly")
	t.Setenv("CV_FOLDS", "3")
	t.Setenv("ANALYSIS_PARALLEL", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input.ExcelFile != "/data/hr.xlsx" {
		t.Errorf("excel file = %q", cfg.Input.ExcelFile)
	}
	if cfg.Input.Sheet != "Monthly" {
		t.Errorf("sheet = %q", cfg.Input.Sheet)
	}
	if cfg.Analysis.Folds != 3 {
		t.Errorf("folds = %d, want 3", cfg.Analysis.Folds)
	}
	if cfg.Analysis.Parallel {
		t.Error("parallel should be false")
	}
}

func TestLoad_RejectsTooFewFolds(t *testing.T) {
	clearEnv(t)
	t.Setenv("CV_FOLDS", "1")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for CV_FOLDS=1")
	}
}

func TestLoad_IgnoresUnparseableValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CV_FOLDS", "many")
	t.Setenv("ANALYSIS_PARALLEL", "maybe")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Analysis.Folds != 5 {
		t.Errorf("unparseable CV_FOLDS should fall back to 5, got %d", cfg.Analysis.Folds)
	}
	if !cfg.Analysis.Parallel {
		t.Error("unparseable ANALYSIS_PARALLEL should fall back to true")
	}
}
