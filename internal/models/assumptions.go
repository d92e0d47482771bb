package models

// OnboardingEntry adds a batch of accounts at a given month of the ramp.
// Month indexes start at 1.
type OnboardingEntry struct {
	MonthIndex    int `json:"month_index" yaml:"month_index"`
	AccountsAdded int `json:"accounts_added" yaml:"accounts_added"`
}

// ProcessStep is one step of the per-claim workflow. The time charged per
// claim for the step is the midpoint of the min/max range.
type ProcessStep struct {
	Name       string  `json:"name" yaml:"name"`
	MinMinutes float64 `json:"min_minutes" yaml:"min_minutes"`
	MaxMinutes float64 `json:"max_minutes" yaml:"max_minutes"`
}

// MidpointMinutes returns the per-claim time charged for this step.
func (p ProcessStep) MidpointMinutes() float64 {
	return (p.MinMinutes + p.MaxMinutes) / 2
}

// AssumptionSet contains every business constant the capacity model derives
// from. It is constructed once per run and treated as read-only; the engine
// never mutates it.
type AssumptionSet struct {
	// Portfolio
	TotalAccounts      int               `json:"total_accounts" yaml:"total_accounts"`
	OnboardingSchedule []OnboardingEntry `json:"onboarding_schedule" yaml:"onboarding_schedule"`

	// Claims (annual dollar volume across the full portfolio)
	TotalClaimsValue float64 `json:"total_claims_value" yaml:"total_claims_value"`
	AvgClaimValue    float64 `json:"avg_claim_value" yaml:"avg_claim_value"`

	// Process
	ProcessSteps       []ProcessStep `json:"process_steps" yaml:"process_steps"`
	TargetApprovalRate float64       `json:"target_approval_rate" yaml:"target_approval_rate"`

	// Turnaround SLAs (working days)
	SubmissionSLADays int `json:"submission_sla_days" yaml:"submission_sla_days"`
	DenialSLADays     int `json:"denial_sla_days" yaml:"denial_sla_days"`

	// Economics (fractions in (0,1])
	RevenuePercentage float64 `json:"revenue_percentage" yaml:"revenue_percentage"`
	TargetGrossMargin float64 `json:"target_gross_margin" yaml:"target_gross_margin"`

	// Labor (fully loaded monthly USD)
	AnalystMonthlyCost    float64 `json:"analyst_monthly_cost" yaml:"analyst_monthly_cost"`
	ManagerMonthlyCost    float64 `json:"manager_monthly_cost" yaml:"manager_monthly_cost"`
	ManagerToAnalystRatio int     `json:"manager_to_analyst_ratio" yaml:"manager_to_analyst_ratio"`

	// Working time
	UtilizationFactor float64 `json:"utilization_factor" yaml:"utilization_factor"`
	HoursPerDay       float64 `json:"hours_per_day" yaml:"hours_per_day"`
	DaysPerMonth      float64 `json:"days_per_month" yaml:"days_per_month"`
}

// DefaultAssumptions returns the case-study baseline: 100 practices with
// $200M annual claims at $200 per claim, a 5-step workflow at 2-5 minutes
// per step, a 10/30/60 onboarding ramp, and India-based fully loaded
// salaries at a 1:12 manager ratio.
func DefaultAssumptions() *AssumptionSet {
	return &AssumptionSet{
		TotalAccounts: 100,
		OnboardingSchedule: []OnboardingEntry{
			{MonthIndex: 1, AccountsAdded: 10},
			{MonthIndex: 2, AccountsAdded: 30},
			{MonthIndex: 3, AccountsAdded: 60},
		},
		TotalClaimsValue: 200_000_000,
		AvgClaimValue:    200,
		ProcessSteps: []ProcessStep{
			{Name: "Extract Encounters", MinMinutes: 2, MaxMinutes: 5},
			{Name: "Submit Claims", MinMinutes: 2, MaxMinutes: 5},
			{Name: "Reconcile", MinMinutes: 2, MaxMinutes: 5},
			{Name: "Denial Analysis", MinMinutes: 2, MaxMinutes: 5},
			{Name: "Resubmission", MinMinutes: 2, MaxMinutes: 5},
		},
		TargetApprovalRate:    0.90,
		SubmissionSLADays:     5,
		DenialSLADays:         3,
		RevenuePercentage:     0.05,
		TargetGrossMargin:     0.60,
		AnalystMonthlyCost:    750,
		ManagerMonthlyCost:    1125,
		ManagerToAnalystRatio: 12,
		UtilizationFactor:     0.85,
		HoursPerDay:           8,
		DaysPerMonth:          22,
	}
}

// TotalClaims returns the implied annual claim count across the portfolio.
func (a *AssumptionSet) TotalClaims() float64 {
	if a.AvgClaimValue <= 0 {
		return 0
	}
	return a.TotalClaimsValue / a.AvgClaimValue
}

// MinutesPerClaim returns the midpoint processing time for one claim across
// all workflow steps.
func (a *AssumptionSet) MinutesPerClaim() float64 {
	total := 0.0
	for _, step := range a.ProcessSteps {
		total += step.MidpointMinutes()
	}
	return total
}

// AvailableMinutesPerAnalystPerDay returns the productive minutes one
// analyst contributes per working day after the utilization haircut.
func (a *AssumptionSet) AvailableMinutesPerAnalystPerDay() float64 {
	return a.HoursPerDay * 60 * a.UtilizationFactor
}

// RampMonths returns the last scheduled onboarding month, or 0 when the
// schedule is empty.
func (a *AssumptionSet) RampMonths() int {
	last := 0
	for _, entry := range a.OnboardingSchedule {
		if entry.MonthIndex > last {
			last = entry.MonthIndex
		}
	}
	return last
}

// Clone returns a deep copy suitable for sensitivity perturbation without
// touching the original.
func (a *AssumptionSet) Clone() *AssumptionSet {
	dup := *a
	dup.OnboardingSchedule = append([]OnboardingEntry{}, a.OnboardingSchedule...)
	dup.ProcessSteps = append([]ProcessStep{}, a.ProcessSteps...)
	return &dup
}
