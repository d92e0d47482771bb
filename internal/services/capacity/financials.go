package capacity

// financials is the monthly cost/revenue/margin picture for a solved month.
type financials struct {
	Cost      float64
	Revenue   float64
	Margin    float64
	MarginGap float64
}

// synthesize combines headcount costs with projected approved revenue.
// Margin is defined as 0 when revenue is 0: month-zero claim volume is a
// valid state during onboarding, not an error.
func (e *Engine) synthesize(vol monthVolume, staff staffing) financials {
	a := e.assumptions

	cost := float64(staff.Analysts)*a.AnalystMonthlyCost +
		float64(staff.Managers)*a.ManagerMonthlyCost

	revenue := vol.DailyClaimVolume * a.DaysPerMonth * a.AvgClaimValue *
		a.TargetApprovalRate * a.RevenuePercentage

	margin := 0.0
	if revenue > 0 {
		margin = (revenue - cost) / revenue
	}

	return financials{
		Cost:      cost,
		Revenue:   revenue,
		Margin:    margin,
		MarginGap: a.TargetGrossMargin - margin,
	}
}
