package config

import "testing"

func TestParseWeights(t *testing.T) {
	t.Run("valid weights", func(t *testing.T) {
		weights, err := ParseWeights("6, 4, 1, 2, 1, 1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := [WeightCount]float64{6, 4, 1, 2, 1, 1}
		if weights != expected {
			t.Errorf("ParseWeights = %v, expected %v", weights, expected)
		}
	})

	t.Run("wrong count", func(t *testing.T) {
		if _, err := ParseWeights("1,2,3"); err == nil {
			t.Error("expected error for three weights")
		}
	})

	t.Run("unparseable weight", func(t *testing.T) {
		if _, err := ParseWeights("1,2,three,4,5,6"); err == nil {
			t.Error("expected error for non-numeric weight")
		}
	})
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.HiveNodeURL != "https://api.hive.blog" {
		t.Errorf("HiveNodeURL = %q", cfg.HiveNodeURL)
	}
	if cfg.Analysis.MinimumScore != 80 {
		t.Errorf("MinimumScore = %v", cfg.Analysis.MinimumScore)
	}
	if cfg.Analysis.Weights != [WeightCount]float64{1, 1, 1, 1, 1, 1} {
		t.Errorf("Weights = %v", cfg.Analysis.Weights)
	}
	if cfg.LangDetector != "lingua" {
		t.Errorf("LangDetector = %q", cfg.LangDetector)
	}
}

func TestLoadConfigWeightsFromEnv(t *testing.T) {
	t.Setenv("ANALYSIS_WEIGHTS", "6,4,1,2,1,1")

	cfg := LoadConfig()
	if cfg.Analysis.Weights != [WeightCount]float64{6, 4, 1, 2, 1, 1} {
		t.Errorf("Weights = %v", cfg.Analysis.Weights)
	}
}
