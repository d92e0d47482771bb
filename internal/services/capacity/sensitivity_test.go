package capacity

import (
	"testing"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

func TestAnalyzeSensitivity(t *testing.T) {
	engine := mustEngine(t, models.DefaultAssumptions())
	baseline := engine.GenerateReport().Summary

	results := engine.AnalyzeSensitivity()
	if len(results) != 6 {
		t.Fatalf("expected 6 scenarios, got %d", len(results))
	}

	byName := make(map[string]models.SensitivityResult, len(results))
	for _, r := range results {
		byName[r.Scenario.Name] = r
	}

	t.Run("LowerUtilizationNeedsMoreStaff", func(t *testing.T) {
		r, ok := byName["Lower Utilization"]
		if !ok {
			t.Fatal("scenario missing")
		}
		if r.AnalystDelta <= 0 {
			t.Errorf("less productive time should need more analysts, delta = %d", r.AnalystDelta)
		}
		if r.SteadyStateAnalysts != baseline.SteadyStateAnalysts+r.AnalystDelta {
			t.Error("delta inconsistent with absolute headcount")
		}
	})

	t.Run("HigherUtilizationNeedsFewerStaff", func(t *testing.T) {
		r := byName["Higher Utilization"]
		if r.AnalystDelta >= 0 {
			t.Errorf("more productive time should need fewer analysts, delta = %d", r.AnalystDelta)
		}
	})

	t.Run("LowerApprovalGrowsDenialWork", func(t *testing.T) {
		r := byName["Lower Approval Rate"]
		if r.AnalystDelta < 0 {
			t.Errorf("more denials cannot shrink headcount, delta = %d", r.AnalystDelta)
		}
		if r.MarginDelta > 0 {
			t.Errorf("more denial work cannot improve margin, delta = %v", r.MarginDelta)
		}
	})

	t.Run("SmallerClaimsMeanMoreClaims", func(t *testing.T) {
		// Same dollar volume at a lower per-claim value implies more claims
		// to process for the same revenue base.
		r := byName["Smaller Claims"]
		if r.AnalystDelta <= 0 {
			t.Errorf("smaller claims should need more analysts, delta = %d", r.AnalystDelta)
		}
	})

	t.Run("HigherLaborCostCompressesMargin", func(t *testing.T) {
		r := byName["Higher Labor Cost"]
		if r.MarginDelta >= 0 {
			t.Errorf("a 20%% labor increase must compress margin, delta = %v", r.MarginDelta)
		}
		if r.AnalystDelta != 0 {
			t.Errorf("labor cost does not change headcount, delta = %d", r.AnalystDelta)
		}
	})
}

func TestAnalyzeSensitivityLeavesBaselineUntouched(t *testing.T) {
	a := models.DefaultAssumptions()
	engine := mustEngine(t, a)

	engine.AnalyzeSensitivity()

	if a.UtilizationFactor != 0.85 {
		t.Errorf("baseline utilization mutated to %v", a.UtilizationFactor)
	}
	if a.AnalystMonthlyCost != 750 {
		t.Errorf("baseline analyst cost mutated to %v", a.AnalystMonthlyCost)
	}
}

func TestAnalyzeSensitivityDropsInvalidScenarios(t *testing.T) {
	// At 0.95 utilization the +0.10 perturbation exceeds 1 and must be
	// dropped rather than reported.
	a := models.DefaultAssumptions()
	a.UtilizationFactor = 0.95

	results := mustEngine(t, a).AnalyzeSensitivity()
	if len(results) != 5 {
		t.Fatalf("expected the out-of-range scenario to be dropped, got %d results", len(results))
	}
	for _, r := range results {
		if r.Scenario.Name == "Higher Utilization" {
			t.Error("invalid scenario should not appear in results")
		}
	}
}
