// Package format renders a capacity report as text, JSON, or CSV for the
// CLI. The engine itself exposes no formatting; everything here is a plain
// view over the Report fields.
package format

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// Text returns a human-readable table of the monthly projections plus the
// summary block.
func Text(report *models.Report) string {
	var b strings.Builder

	b.WriteString("RCM Capacity Plan\n")
	b.WriteString("=================\n\n")

	fmt.Fprintf(&b, "%-5s %-8s %12s %10s %9s %9s %12s %12s %8s %5s\n",
		"Month", "Accounts", "Claims/mo", "Claims/d", "Analysts", "Managers",
		"Cost", "Revenue", "Margin", "SLA")

	for _, m := range report.Months {
		fmt.Fprintf(&b, "%-5d %-8d %12.0f %10.1f %9d %9d %12.2f %12.2f %7.1f%% %5s\n",
			m.MonthIndex,
			m.ActiveAccounts,
			m.MonthlyClaimVolume,
			m.DailyClaimVolume,
			m.RequiredAnalysts,
			m.RequiredManagers,
			m.MonthlyCost,
			m.MonthlyRevenue,
			m.MarginAchieved*100,
			slaLabel(m.SubmissionSLAMet && m.DenialSLAMet),
		)
	}

	s := report.Summary
	b.WriteString("\nSummary\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Ramp months:           %d (+%d steady-state)\n", s.RampMonths, s.TotalMonths-s.RampMonths)
	fmt.Fprintf(&b, "Steady-state analysts: %d (peak %d)\n", s.SteadyStateAnalysts, s.PeakAnalysts)
	fmt.Fprintf(&b, "Steady-state managers: %d\n", s.SteadyStateManagers)
	fmt.Fprintf(&b, "Steady-state cost:     $%.2f/month\n", s.SteadyStateCost)
	fmt.Fprintf(&b, "Steady-state revenue:  $%.2f/month\n", s.SteadyStateRevenue)
	fmt.Fprintf(&b, "Steady-state margin:   %.1f%% (target %.1f%%, gap %.1f%%)\n",
		s.SteadyStateMargin*100, report.Assumptions.TargetGrossMargin*100, s.SteadyStateMarginGap*100)
	fmt.Fprintf(&b, "Submission SLA (%dd):   %s\n", report.Assumptions.SubmissionSLADays, slaLabel(s.SubmissionSLAMet))
	fmt.Fprintf(&b, "Denial SLA (%dd):       %s\n", report.Assumptions.DenialSLADays, slaLabel(s.DenialSLAMet))

	return b.String()
}

// JSON returns the report as indented JSON.
func JSON(report *models.Report) string {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data) + "\n"
}

// CSV returns one row per projected month.
func CSV(report *models.Report) string {
	var b strings.Builder
	w := csv.NewWriter(&b)

	w.Write([]string{
		"month", "active_accounts", "monthly_claims", "daily_claims",
		"submission_analysts", "denial_analysts", "analysts", "managers",
		"monthly_cost", "monthly_revenue", "margin",
		"submission_sla_met", "denial_sla_met",
	})

	for _, m := range report.Months {
		w.Write([]string{
			strconv.Itoa(m.MonthIndex),
			strconv.Itoa(m.ActiveAccounts),
			strconv.FormatFloat(m.MonthlyClaimVolume, 'f', 2, 64),
			strconv.FormatFloat(m.DailyClaimVolume, 'f', 2, 64),
			strconv.Itoa(m.SubmissionAnalysts),
			strconv.Itoa(m.DenialAnalysts),
			strconv.Itoa(m.RequiredAnalysts),
			strconv.Itoa(m.RequiredManagers),
			strconv.FormatFloat(m.MonthlyCost, 'f', 2, 64),
			strconv.FormatFloat(m.MonthlyRevenue, 'f', 2, 64),
			strconv.FormatFloat(m.MarginAchieved, 'f', 4, 64),
			strconv.FormatBool(m.SubmissionSLAMet),
			strconv.FormatBool(m.DenialSLAMet),
		})
	}

	w.Flush()
	return b.String()
}

// SensitivityText renders the sensitivity table for the CLI.
func SensitivityText(results []models.SensitivityResult) string {
	if len(results) == 0 {
		return "No sensitivity results.\n"
	}

	var b strings.Builder
	b.WriteString("Sensitivity (steady state vs. baseline)\n")
	b.WriteString("---------------------------------------\n")
	fmt.Fprintf(&b, "%-22s %-10s %9s %8s %9s %8s %5s\n",
		"Scenario", "Change", "Analysts", "Delta", "Margin", "Delta", "SLA")

	for _, r := range results {
		fmt.Fprintf(&b, "%-22s %-10s %9d %+8d %8.1f%% %+7.1f%% %5s\n",
			r.Scenario.Name,
			r.Scenario.Change,
			r.SteadyStateAnalysts,
			r.AnalystDelta,
			r.SteadyStateMargin*100,
			r.MarginDelta*100,
			slaLabel(r.SubmissionSLAMet && r.DenialSLAMet),
		)
	}
	return b.String()
}

func slaLabel(met bool) string {
	if met {
		return "Yes"
	}
	return "No"
}
