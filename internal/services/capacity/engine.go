// Package capacity derives staffing, cost, and SLA-compliance projections
// for an RCM back-office operation from a fixed set of business assumptions.
// The derivation is a strictly linear pipeline: volume projection, workload
// estimation, staffing solve, financial synthesis, report assembly. Every
// stage is a pure function of its upstream stage plus the shared
// AssumptionSet, so repeated runs over the same assumptions are
// field-for-field identical.
package capacity

import (
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// monthsPerYear spreads the annual claim volume across an operating year.
const monthsPerYear = 12

// steadyStateTailMonths extends the projection past the onboarding ramp so
// the report shows at least one post-ramp equilibrium month.
const steadyStateTailMonths = 1

// Engine runs the capacity model for a single validated AssumptionSet.
type Engine struct {
	assumptions *models.AssumptionSet

	// Derived constants, computed once at construction.
	minutesPerClaim       float64
	availableMinutes      float64 // productive minutes per analyst per day
	perAccountDailyClaims float64
}

// NewEngine validates the assumptions and precomputes the derived constants.
// Invalid assumptions return a *models.ConfigurationError; once construction
// succeeds, no later stage can fail.
func NewEngine(assumptions *models.AssumptionSet) (*Engine, error) {
	if err := assumptions.Validate(); err != nil {
		return nil, err
	}

	// Annual claims per account, spread over 12 operating months of
	// DaysPerMonth working days each.
	claimsPerAccount := assumptions.TotalClaims() / float64(assumptions.TotalAccounts)
	perAccountDaily := claimsPerAccount / monthsPerYear / assumptions.DaysPerMonth

	return &Engine{
		assumptions:           assumptions,
		minutesPerClaim:       assumptions.MinutesPerClaim(),
		availableMinutes:      assumptions.AvailableMinutesPerAnalystPerDay(),
		perAccountDailyClaims: perAccountDaily,
	}, nil
}

// Assumptions returns the assumption set this engine was built from.
func (e *Engine) Assumptions() *models.AssumptionSet {
	return e.assumptions
}
