// Package dashboard serves the capacity report to the dashboard consumer
// as JSON: the full report, per-chart series, and the sensitivity table.
// All presentation (tables, charts, formatting) happens client-side.
package dashboard

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ilan-berdy/Commure-Case-Study/internal/metrics"
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/capacity"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/scenario"
	"github.com/ilan-berdy/Commure-Case-Study/internal/version"
	"github.com/ilan-berdy/Commure-Case-Study/internal/web"
)

var scenarios *scenario.Service

// Initialize sets up the dashboard package with required dependencies.
func Initialize(s *scenario.Service) {
	scenarios = s
}

// assumptionsForRequest resolves the assumption set a request refers to:
// a stored scenario when ?scenario=id is present, the case-study defaults
// otherwise.
func assumptionsForRequest(r *http.Request) (*models.AssumptionSet, error) {
	id := r.URL.Query().Get("scenario")
	if id == "" {
		return models.DefaultAssumptions(), nil
	}

	sc, err := scenarios.Get(id)
	if err != nil {
		return nil, err
	}
	return &sc.Assumptions, nil
}

// writeLookupError maps a scenario lookup failure to a response.
func writeLookupError(w http.ResponseWriter, err error) {
	if err == scenario.ErrNotFound {
		web.WriteError(w, http.StatusNotFound, "scenario not found")
		return
	}
	web.WriteError(w, http.StatusInternalServerError, err.Error())
}

// buildReport runs the engine with timing and metric observation.
func buildReport(assumptions *models.AssumptionSet) (*models.Report, error) {
	start := time.Now()
	report, err := capacity.GenerateReport(assumptions)
	if err != nil {
		metrics.ConfigurationErrorsTotal.Inc()
		return nil, err
	}
	metrics.ReportDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.ObserveReport(report)
	return report, nil
}

// HandleReport returns the full capacity report.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	assumptions, err := assumptionsForRequest(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	report, err := buildReport(assumptions)
	if err != nil {
		web.WriteConfigError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, report)
}

// HandleReportForAssumptions generates a report for an assumption set in
// the request body without persisting anything. Omitted fields fall back
// to defaults, so the dashboard form only posts what it changes.
func HandleReportForAssumptions(w http.ResponseWriter, r *http.Request) {
	assumptions := models.DefaultAssumptions()
	if err := web.DecodeJSON(r, assumptions); err != nil {
		web.WriteError(w, http.StatusBadRequest, "invalid assumptions payload: "+err.Error())
		return
	}

	report, err := buildReport(assumptions)
	if err != nil {
		web.WriteConfigError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, report)
}

// chartData is the shape the dashboard's chart library consumes.
type chartData struct {
	Labels []string             `json:"labels"`
	Series map[string][]float64 `json:"series"`
}

// HandleChartData returns one chart's series extracted from the report.
func HandleChartData(w http.ResponseWriter, r *http.Request) {
	assumptions, err := assumptionsForRequest(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	report, err := buildReport(assumptions)
	if err != nil {
		web.WriteConfigError(w, err)
		return
	}

	data := chartData{Series: make(map[string][]float64)}
	for _, m := range report.Months {
		data.Labels = append(data.Labels, fmt.Sprintf("Month %d", m.MonthIndex))
	}

	chartType := chi.URLParam(r, "chartType")
	switch chartType {
	case "staffing":
		for _, m := range report.Months {
			data.Series["analysts"] = append(data.Series["analysts"], float64(m.RequiredAnalysts))
			data.Series["managers"] = append(data.Series["managers"], float64(m.RequiredManagers))
		}
	case "claims":
		for _, m := range report.Months {
			data.Series["monthly_claims"] = append(data.Series["monthly_claims"], m.MonthlyClaimVolume)
			data.Series["daily_claims"] = append(data.Series["daily_claims"], m.DailyClaimVolume)
		}
	case "financials":
		for _, m := range report.Months {
			data.Series["revenue"] = append(data.Series["revenue"], m.MonthlyRevenue)
			data.Series["cost"] = append(data.Series["cost"], m.MonthlyCost)
		}
	case "margin":
		target := report.Assumptions.TargetGrossMargin * 100
		for _, m := range report.Months {
			data.Series["margin"] = append(data.Series["margin"], m.MarginAchieved*100)
			data.Series["target"] = append(data.Series["target"], target)
		}
	default:
		web.WriteError(w, http.StatusNotFound, "unknown chart type: "+chartType)
		return
	}

	web.WriteJSON(w, http.StatusOK, data)
}

// HandleSensitivity returns the sensitivity table for the resolved
// assumption set.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	assumptions, err := assumptionsForRequest(r)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	engine, err := capacity.NewEngine(assumptions)
	if err != nil {
		web.WriteConfigError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, engine.AnalyzeSensitivity())
}

// HandleHealth reports liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleVersion reports build information.
func HandleVersion(w http.ResponseWriter, r *http.Request) {
	web.WriteJSON(w, http.StatusOK, version.Get())
}
