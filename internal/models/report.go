package models

// MonthlyProjection is one row of the capacity plan. Rows are derived
// deterministically from the AssumptionSet and never mutated after
// creation; each report owns a fresh slice of them in month order.
type MonthlyProjection struct {
	MonthIndex     int `json:"month_index"`
	ActiveAccounts int `json:"active_accounts"`

	// Volumes
	MonthlyClaimVolume float64 `json:"monthly_claim_volume"`
	DailyClaimVolume   float64 `json:"daily_claim_volume"`

	// Daily workload minutes by stream
	NewSubmissionMinutes float64 `json:"new_submission_minutes"`
	DenialMinutes        float64 `json:"denial_minutes"`

	// Staffing
	SubmissionAnalysts     int     `json:"submission_analysts"`
	DenialAnalysts         int     `json:"denial_analysts"`
	RequiredAnalysts       int     `json:"required_analysts"`
	RequiredManagers       int     `json:"required_managers"`
	ClaimsPerAnalystPerDay float64 `json:"claims_per_analyst_per_day"`

	// SLA feasibility (informational; never an error)
	SubmissionSLAMet bool `json:"submission_sla_met"`
	DenialSLAMet     bool `json:"denial_sla_met"`

	// Financials
	MonthlyCost    float64 `json:"monthly_cost"`
	MonthlyRevenue float64 `json:"monthly_revenue"`
	MarginAchieved float64 `json:"margin_achieved"`
	MarginGap      float64 `json:"margin_gap"`
}

// TotalHeadcount returns analysts plus managers for the month.
func (m *MonthlyProjection) TotalHeadcount() int {
	return m.RequiredAnalysts + m.RequiredManagers
}

// ReportSummary aggregates the projection rows. Steady state is the final
// projected month, after the onboarding ramp has completed.
type ReportSummary struct {
	RampMonths   int `json:"ramp_months"`
	TotalMonths  int `json:"total_months"`
	PeakAnalysts int `json:"peak_analysts"`

	SteadyStateAnalysts  int     `json:"steady_state_analysts"`
	SteadyStateManagers  int     `json:"steady_state_managers"`
	SteadyStateCost      float64 `json:"steady_state_cost"`
	SteadyStateRevenue   float64 `json:"steady_state_revenue"`
	SteadyStateMargin    float64 `json:"steady_state_margin"`
	SteadyStateMarginGap float64 `json:"steady_state_margin_gap"`

	// Worst case across all months: false if any month breaches.
	SubmissionSLAMet bool `json:"submission_sla_met"`
	DenialSLAMet     bool `json:"denial_sla_met"`
}

// Report is the complete output of one capacity-model run. It carries a
// snapshot of the assumptions it was derived from for traceability, and is
// never shared or mutated across calls.
type Report struct {
	Assumptions AssumptionSet       `json:"assumptions"`
	Months      []MonthlyProjection `json:"months"`
	Summary     ReportSummary       `json:"summary"`
}

// SteadyState returns the final projected month, or nil for an empty report.
func (r *Report) SteadyState() *MonthlyProjection {
	if len(r.Months) == 0 {
		return nil
	}
	return &r.Months[len(r.Months)-1]
}

// SensitivityScenario describes a single-parameter perturbation applied on
// top of a baseline AssumptionSet.
type SensitivityScenario struct {
	Name      string `json:"name"`
	ParamName string `json:"param_name"`
	Change    string `json:"change"` // e.g. "+5%", "-0.05"
}

// SensitivityResult is the steady-state delta produced by one scenario.
type SensitivityResult struct {
	Scenario            SensitivityScenario `json:"scenario"`
	SteadyStateAnalysts int                 `json:"steady_state_analysts"`
	AnalystDelta        int                 `json:"analyst_delta"`
	SteadyStateMargin   float64             `json:"steady_state_margin"`
	MarginDelta         float64             `json:"margin_delta"`
	SubmissionSLAMet    bool                `json:"submission_sla_met"`
	DenialSLAMet        bool                `json:"denial_sla_met"`
}
