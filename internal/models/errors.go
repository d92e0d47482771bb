package models

import "fmt"

// ConfigurationError reports an invariant violation in an AssumptionSet.
// It is raised eagerly when a report is requested; no computation proceeds
// on invalid input, and no other failure mode exists downstream.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid assumptions: %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate checks every AssumptionSet invariant. It returns a
// *ConfigurationError describing the first violation found, or nil.
func (a *AssumptionSet) Validate() error {
	if a.TotalAccounts <= 0 {
		return configErrorf("total_accounts", "must be positive, got %d", a.TotalAccounts)
	}
	if a.TotalClaimsValue < 0 {
		return configErrorf("total_claims_value", "must be non-negative, got %.2f", a.TotalClaimsValue)
	}
	if a.AvgClaimValue <= 0 {
		return configErrorf("avg_claim_value", "must be positive, got %.2f", a.AvgClaimValue)
	}

	if len(a.OnboardingSchedule) == 0 {
		return configErrorf("onboarding_schedule", "must contain at least one entry")
	}
	cumulative := 0
	lastMonth := 0
	for i, entry := range a.OnboardingSchedule {
		if entry.MonthIndex <= lastMonth {
			return configErrorf("onboarding_schedule", "entry %d: month indexes must be increasing and start at 1", i)
		}
		if entry.AccountsAdded < 0 {
			return configErrorf("onboarding_schedule", "entry %d: accounts added must be non-negative, got %d", i, entry.AccountsAdded)
		}
		cumulative += entry.AccountsAdded
		if cumulative > a.TotalAccounts {
			return configErrorf("onboarding_schedule", "schedule onboards %d accounts but only %d exist", cumulative, a.TotalAccounts)
		}
		lastMonth = entry.MonthIndex
	}

	if len(a.ProcessSteps) == 0 {
		return configErrorf("process_steps", "must contain at least one step")
	}
	for i, step := range a.ProcessSteps {
		if step.MinMinutes < 0 || step.MaxMinutes < 0 {
			return configErrorf("process_steps", "step %d (%s): times must be non-negative", i, step.Name)
		}
		if step.MaxMinutes < step.MinMinutes {
			return configErrorf("process_steps", "step %d (%s): max time below min time", i, step.Name)
		}
	}

	for _, frac := range []struct {
		field string
		value float64
	}{
		{"target_approval_rate", a.TargetApprovalRate},
		{"revenue_percentage", a.RevenuePercentage},
		{"target_gross_margin", a.TargetGrossMargin},
		{"utilization_factor", a.UtilizationFactor},
	} {
		if frac.value <= 0 || frac.value > 1 {
			return configErrorf(frac.field, "must be in (0,1], got %v", frac.value)
		}
	}

	if a.SubmissionSLADays <= 0 {
		return configErrorf("submission_sla_days", "must be positive, got %d", a.SubmissionSLADays)
	}
	if a.DenialSLADays <= 0 {
		return configErrorf("denial_sla_days", "must be positive, got %d", a.DenialSLADays)
	}

	if a.AnalystMonthlyCost < 0 {
		return configErrorf("analyst_monthly_cost", "must be non-negative, got %.2f", a.AnalystMonthlyCost)
	}
	if a.ManagerMonthlyCost < 0 {
		return configErrorf("manager_monthly_cost", "must be non-negative, got %.2f", a.ManagerMonthlyCost)
	}
	if a.ManagerToAnalystRatio <= 0 {
		return configErrorf("manager_to_analyst_ratio", "must be positive, got %d", a.ManagerToAnalystRatio)
	}

	if a.HoursPerDay <= 0 {
		return configErrorf("hours_per_day", "must be positive, got %v", a.HoursPerDay)
	}
	if a.DaysPerMonth <= 0 {
		return configErrorf("days_per_month", "must be positive, got %v", a.DaysPerMonth)
	}
	if a.AvailableMinutesPerAnalystPerDay() <= 0 {
		return configErrorf("utilization_factor", "no productive minutes per analyst per day")
	}

	return nil
}
