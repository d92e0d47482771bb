package dashboard

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/scenario"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/storage"
	"github.com/ilan-berdy/Commure-Case-Study/internal/testutil"
)

func setupServer(t *testing.T) (*testutil.TestServer, *scenario.Service) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	svc := scenario.New(store)
	Initialize(svc)

	r := chi.NewRouter()
	r.Get("/api/report", HandleReport)
	r.Post("/api/report", HandleReportForAssumptions)
	r.Get("/api/report/charts/{chartType}", HandleChartData)
	r.Get("/api/report/sensitivity", HandleSensitivity)
	r.Get("/api/health", HandleHealth)
	r.Get("/api/version", HandleVersion)

	return testutil.NewTestServer(t, r), svc
}

func decodeReport(t *testing.T, resp *http.Response) models.Report {
	t.Helper()
	var report models.Report
	require.NoError(t, json.Unmarshal([]byte(testutil.ReadBody(t, resp)), &report))
	return report
}

func TestHandleReport(t *testing.T) {
	ts, _ := setupServer(t)

	resp := ts.GET("/api/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	assert.Equal(t, 180, report.Summary.SteadyStateAnalysts)
	assert.Equal(t, 15, report.Summary.SteadyStateManagers)
	assert.Len(t, report.Months, 4)
}

func TestHandleReportForScenario(t *testing.T) {
	ts, svc := setupServer(t)

	a := models.DefaultAssumptions()
	a.UtilizationFactor = 0.75
	sc := models.NewScenario("lower utilization", "", a)
	require.NoError(t, svc.Save(sc))

	resp := ts.GET("/api/report?scenario=" + sc.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	report := decodeReport(t, resp)
	assert.Greater(t, report.Summary.SteadyStateAnalysts, 180)
}

func TestHandleReportUnknownScenario(t *testing.T) {
	ts, _ := setupServer(t)

	resp := ts.GET("/api/report?scenario=nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestHandleReportForAssumptions(t *testing.T) {
	ts, _ := setupServer(t)

	t.Run("PartialOverride", func(t *testing.T) {
		resp := ts.POST("/api/report", testutil.JSONBody(`{"utilization_factor": 0.75}`))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		report := decodeReport(t, resp)
		assert.Equal(t, 0.75, report.Assumptions.UtilizationFactor)
		assert.Greater(t, report.Summary.SteadyStateAnalysts, 180)
	})

	t.Run("InvalidAssumptions", func(t *testing.T) {
		resp := ts.POST("/api/report", testutil.JSONBody(`{"total_accounts": 0}`))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		body := testutil.ReadBody(t, resp)
		assert.Contains(t, body, `"field":"total_accounts"`)
	})

	t.Run("UnknownField", func(t *testing.T) {
		resp := ts.POST("/api/report", testutil.JSONBody(`{"no_such_knob": 1}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestHandleChartData(t *testing.T) {
	ts, _ := setupServer(t)

	tests := []struct {
		chartType string
		series    []string
	}{
		{"staffing", []string{"analysts", "managers"}},
		{"claims", []string{"monthly_claims", "daily_claims"}},
		{"financials", []string{"revenue", "cost"}},
		{"margin", []string{"margin", "target"}},
	}

	for _, tt := range tests {
		t.Run(tt.chartType, func(t *testing.T) {
			resp := ts.GET("/api/report/charts/" + tt.chartType)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var data struct {
				Labels []string             `json:"labels"`
				Series map[string][]float64 `json:"series"`
			}
			require.NoError(t, json.Unmarshal([]byte(testutil.ReadBody(t, resp)), &data))
			assert.Len(t, data.Labels, 4)
			for _, name := range tt.series {
				assert.Len(t, data.Series[name], 4, "series %s", name)
			}
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		resp := ts.GET("/api/report/charts/pie")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestHandleSensitivity(t *testing.T) {
	ts, _ := setupServer(t)

	resp := ts.GET("/api/report/sensitivity")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []models.SensitivityResult
	require.NoError(t, json.Unmarshal([]byte(testutil.ReadBody(t, resp)), &results))
	assert.Len(t, results, 6)
}

func TestHandleHealth(t *testing.T) {
	ts, _ := setupServer(t)

	resp := ts.GET("/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.ReadBody(t, resp), `"status":"ok"`)
}

func TestHandleVersion(t *testing.T) {
	ts, _ := setupServer(t)

	resp := ts.GET("/api/version")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, testutil.ReadBody(t, resp), "version")
}
