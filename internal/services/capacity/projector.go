package capacity

// monthVolume is the output of the volume projector for one month.
type monthVolume struct {
	MonthIndex         int
	ActiveAccounts     int
	DailyClaimVolume   float64
	MonthlyClaimVolume float64
}

// projectVolumes expands the onboarding schedule into per-month active
// account counts and claim volumes. The horizon is the last scheduled ramp
// month plus a steady-state tail; months past the schedule retain the final
// cumulative account count.
func (e *Engine) projectVolumes() []monthVolume {
	a := e.assumptions

	added := make(map[int]int, len(a.OnboardingSchedule))
	for _, entry := range a.OnboardingSchedule {
		added[entry.MonthIndex] += entry.AccountsAdded
	}

	horizon := a.RampMonths() + steadyStateTailMonths
	volumes := make([]monthVolume, 0, horizon)

	active := 0
	for month := 1; month <= horizon; month++ {
		active += added[month]

		daily := float64(active) * e.perAccountDailyClaims
		volumes = append(volumes, monthVolume{
			MonthIndex:         month,
			ActiveAccounts:     active,
			DailyClaimVolume:   daily,
			MonthlyClaimVolume: daily * a.DaysPerMonth,
		})
	}

	return volumes
}
