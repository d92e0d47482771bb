package capacity

// workloadMinutes holds the required daily processing minutes for the two
// workload classes. New-submission work covers every claim; denial work
// covers the fraction the target approval rate expects to be denied.
type workloadMinutes struct {
	NewSubmission float64
	Denial        float64
}

// estimateWorkload converts a month's claim volume into daily required
// minutes per stream. Both figures are steady daily rates.
func (e *Engine) estimateWorkload(vol monthVolume) workloadMinutes {
	denialRate := 1 - e.assumptions.TargetApprovalRate
	return workloadMinutes{
		NewSubmission: vol.DailyClaimVolume * e.minutesPerClaim,
		Denial:        vol.DailyClaimVolume * denialRate * e.minutesPerClaim,
	}
}
