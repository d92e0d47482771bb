package capacity

import "math"

// staffing is the solved headcount for one month. The submission and denial
// pools are dedicated allocations: analysts are not shared across streams.
type staffing struct {
	SubmissionAnalysts int
	DenialAnalysts     int
	Analysts           int
	Managers           int

	SubmissionSLAMet bool
	DenialSLAMet     bool

	ClaimsPerAnalystPerDay float64
}

// solveStaffing converts required daily minutes into analyst and manager
// headcount. Each stream is sized independently against the productive
// minutes one analyst contributes per day; the SLA window bounds tolerated
// backlog, not steady-state headcount, so it surfaces only as a feasibility
// flag.
func (e *Engine) solveStaffing(load workloadMinutes) staffing {
	a := e.assumptions

	submission := analystsFor(load.NewSubmission, e.availableMinutes)
	denial := analystsFor(load.Denial, e.availableMinutes)
	analysts := submission + denial

	managers := 0
	if analysts > 0 {
		managers = int(math.Ceil(float64(analysts) / float64(a.ManagerToAnalystRatio)))
	}

	throughput := 0.0
	if e.minutesPerClaim > 0 {
		throughput = e.availableMinutes / e.minutesPerClaim
	}

	return staffing{
		SubmissionAnalysts:     submission,
		DenialAnalysts:         denial,
		Analysts:               analysts,
		Managers:               managers,
		SubmissionSLAMet:       slaFeasible(load.NewSubmission, submission, e.availableMinutes, a.SubmissionSLADays),
		DenialSLAMet:           slaFeasible(load.Denial, denial, e.availableMinutes, a.DenialSLADays),
		ClaimsPerAnalystPerDay: throughput,
	}
}

// analystsFor returns the smallest whole headcount that clears the given
// daily minutes within one working day of pooled productive time.
func analystsFor(dailyMinutes, availableMinutes float64) int {
	if dailyMinutes <= 0 {
		return 0
	}
	return int(math.Ceil(dailyMinutes / availableMinutes))
}

// slaFeasible reports whether a pool of the given size clears one day's
// outstanding minutes within the SLA window. A zero-volume stream is
// trivially feasible.
func slaFeasible(dailyMinutes float64, analysts int, availableMinutes float64, slaDays int) bool {
	if dailyMinutes <= 0 {
		return true
	}
	if analysts == 0 {
		return false
	}
	clearanceDays := dailyMinutes / (float64(analysts) * availableMinutes)
	return clearanceDays <= float64(slaDays)
}
