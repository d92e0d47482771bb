// Package metrics provides Prometheus observability for the capacity
// planner: business gauges from the latest report plus operational
// counters and timings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// Business metrics, set from the most recent report.

var SteadyStateAnalysts = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "steady_state_analysts",
	Help:      "Analyst headcount required at steady state in the latest report",
})

var SteadyStateManagers = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "steady_state_managers",
	Help:      "Manager headcount required at steady state in the latest report",
})

var SteadyStateMargin = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "steady_state_margin",
	Help:      "Gross margin achieved at steady state in the latest report",
})

var SteadyStateRevenue = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "steady_state_revenue_usd",
	Help:      "Monthly revenue at steady state in the latest report",
})

var SLABreachMonths = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "sla_breach_months",
	Help:      "Months in the latest report that breach the stream's SLA",
}, []string{"stream"})

// Operational metrics.

var ReportsGeneratedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rcmplan",
	Name:      "reports_generated_total",
	Help:      "Total capacity reports generated",
})

var ConfigurationErrorsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rcmplan",
	Name:      "configuration_errors_total",
	Help:      "Total assumption sets rejected at validation",
})

var ReportDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "rcmplan",
	Name:      "report_duration_seconds",
	Help:      "Time taken to generate a capacity report",
	Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
})

var ScenariosStored = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "rcmplan",
	Name:      "scenarios_stored",
	Help:      "Named scenarios currently persisted",
})

// ObserveReport updates the business gauges from a freshly generated report.
func ObserveReport(report *models.Report) {
	ReportsGeneratedTotal.Inc()
	SteadyStateAnalysts.Set(float64(report.Summary.SteadyStateAnalysts))
	SteadyStateManagers.Set(float64(report.Summary.SteadyStateManagers))
	SteadyStateMargin.Set(report.Summary.SteadyStateMargin)
	SteadyStateRevenue.Set(report.Summary.SteadyStateRevenue)

	submissionBreaches, denialBreaches := 0, 0
	for _, m := range report.Months {
		if !m.SubmissionSLAMet {
			submissionBreaches++
		}
		if !m.DenialSLAMet {
			denialBreaches++
		}
	}
	SLABreachMonths.WithLabelValues("submission").Set(float64(submissionBreaches))
	SLABreachMonths.WithLabelValues("denial").Set(float64(denialBreaches))
}
