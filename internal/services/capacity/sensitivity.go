package capacity

import (
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// perturbation applies one parameter change to a cloned assumption set.
type perturbation struct {
	scenario models.SensitivityScenario
	apply    func(*models.AssumptionSet)
}

// AnalyzeSensitivity regenerates the report under a fixed set of
// single-parameter variations and reports steady-state deltas against the
// baseline. Every variation is its own deterministic run over a cloned
// assumption set; the baseline is never touched. Scenarios whose perturbed
// assumptions fail validation are dropped from the result.
func (e *Engine) AnalyzeSensitivity() []models.SensitivityResult {
	base := e.GenerateReport().Summary

	perturbations := []perturbation{
		{
			scenario: models.SensitivityScenario{Name: "Lower Utilization", ParamName: "utilization_factor", Change: "-0.10"},
			apply:    func(a *models.AssumptionSet) { a.UtilizationFactor -= 0.10 },
		},
		{
			scenario: models.SensitivityScenario{Name: "Higher Utilization", ParamName: "utilization_factor", Change: "+0.10"},
			apply:    func(a *models.AssumptionSet) { a.UtilizationFactor += 0.10 },
		},
		{
			scenario: models.SensitivityScenario{Name: "Lower Approval Rate", ParamName: "target_approval_rate", Change: "-0.05"},
			apply:    func(a *models.AssumptionSet) { a.TargetApprovalRate -= 0.05 },
		},
		{
			scenario: models.SensitivityScenario{Name: "Smaller Claims", ParamName: "avg_claim_value", Change: "-25%"},
			apply:    func(a *models.AssumptionSet) { a.AvgClaimValue *= 0.75 },
		},
		{
			scenario: models.SensitivityScenario{Name: "Higher Claim Volume", ParamName: "total_claims_value", Change: "+25%"},
			apply:    func(a *models.AssumptionSet) { a.TotalClaimsValue *= 1.25 },
		},
		{
			scenario: models.SensitivityScenario{Name: "Higher Labor Cost", ParamName: "analyst_monthly_cost", Change: "+20%"},
			apply: func(a *models.AssumptionSet) {
				a.AnalystMonthlyCost *= 1.20
				a.ManagerMonthlyCost *= 1.20
			},
		},
	}

	results := make([]models.SensitivityResult, 0, len(perturbations))
	for _, p := range perturbations {
		modified := e.assumptions.Clone()
		p.apply(modified)

		engine, err := NewEngine(modified)
		if err != nil {
			continue
		}
		summary := engine.GenerateReport().Summary

		results = append(results, models.SensitivityResult{
			Scenario:            p.scenario,
			SteadyStateAnalysts: summary.SteadyStateAnalysts,
			AnalystDelta:        summary.SteadyStateAnalysts - base.SteadyStateAnalysts,
			SteadyStateMargin:   summary.SteadyStateMargin,
			MarginDelta:         summary.SteadyStateMargin - base.SteadyStateMargin,
			SubmissionSLAMet:    summary.SubmissionSLAMet,
			DenialSLAMet:        summary.DenialSLAMet,
		})
	}

	return results
}
