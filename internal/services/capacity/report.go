package capacity

import (
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// GenerateReport runs the full pipeline for every month in the projection
// horizon and assembles the result. Each call produces a fresh Report that
// snapshots the assumptions it was derived from; calling it repeatedly
// yields identical output.
func (e *Engine) GenerateReport() *models.Report {
	volumes := e.projectVolumes()
	months := make([]models.MonthlyProjection, 0, len(volumes))

	for _, vol := range volumes {
		load := e.estimateWorkload(vol)
		staff := e.solveStaffing(load)
		fin := e.synthesize(vol, staff)

		months = append(months, models.MonthlyProjection{
			MonthIndex:             vol.MonthIndex,
			ActiveAccounts:         vol.ActiveAccounts,
			MonthlyClaimVolume:     vol.MonthlyClaimVolume,
			DailyClaimVolume:       vol.DailyClaimVolume,
			NewSubmissionMinutes:   load.NewSubmission,
			DenialMinutes:          load.Denial,
			SubmissionAnalysts:     staff.SubmissionAnalysts,
			DenialAnalysts:         staff.DenialAnalysts,
			RequiredAnalysts:       staff.Analysts,
			RequiredManagers:       staff.Managers,
			ClaimsPerAnalystPerDay: staff.ClaimsPerAnalystPerDay,
			SubmissionSLAMet:       staff.SubmissionSLAMet,
			DenialSLAMet:           staff.DenialSLAMet,
			MonthlyCost:            fin.Cost,
			MonthlyRevenue:         fin.Revenue,
			MarginAchieved:         fin.Margin,
			MarginGap:              fin.MarginGap,
		})
	}

	return &models.Report{
		Assumptions: *e.assumptions,
		Months:      months,
		Summary:     summarize(e.assumptions, months),
	}
}

// GenerateReport is the package-level entry point: validate, build, run.
func GenerateReport(assumptions *models.AssumptionSet) (*models.Report, error) {
	engine, err := NewEngine(assumptions)
	if err != nil {
		return nil, err
	}
	return engine.GenerateReport(), nil
}

// summarize computes the aggregate view: steady state is the final month,
// SLA flags are the worst case across all months.
func summarize(a *models.AssumptionSet, months []models.MonthlyProjection) models.ReportSummary {
	summary := models.ReportSummary{
		RampMonths:       a.RampMonths(),
		TotalMonths:      len(months),
		SubmissionSLAMet: true,
		DenialSLAMet:     true,
	}

	for _, m := range months {
		if m.RequiredAnalysts > summary.PeakAnalysts {
			summary.PeakAnalysts = m.RequiredAnalysts
		}
		if !m.SubmissionSLAMet {
			summary.SubmissionSLAMet = false
		}
		if !m.DenialSLAMet {
			summary.DenialSLAMet = false
		}
	}

	if len(months) > 0 {
		final := months[len(months)-1]
		summary.SteadyStateAnalysts = final.RequiredAnalysts
		summary.SteadyStateManagers = final.RequiredManagers
		summary.SteadyStateCost = final.MonthlyCost
		summary.SteadyStateRevenue = final.MonthlyRevenue
		summary.SteadyStateMargin = final.MarginAchieved
		summary.SteadyStateMarginGap = final.MarginGap
	}

	return summary
}
