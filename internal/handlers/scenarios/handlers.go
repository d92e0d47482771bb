// Package scenarios exposes CRUD endpoints for persisted planning
// scenarios.
package scenarios

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ilan-berdy/Commure-Case-Study/internal/metrics"
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/scenario"
	"github.com/ilan-berdy/Commure-Case-Study/internal/web"
)

var svc *scenario.Service

// Initialize sets up the scenarios package with required dependencies.
func Initialize(s *scenario.Service) {
	svc = s
}

// scenarioRequest is the create/update payload. Assumptions may be partial;
// omitted fields fall back to the case-study defaults.
type scenarioRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Assumptions *models.AssumptionSet `json:"assumptions"`
}

func observeCount() {
	if list, err := svc.List(); err == nil {
		metrics.ScenariosStored.Set(float64(len(list)))
	}
}

// HandleList returns all stored scenarios.
func HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := svc.List()
	if err != nil {
		web.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	metrics.ScenariosStored.Set(float64(len(list)))
	web.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate stores a new scenario and returns it with its fresh ID.
func HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req scenarioRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, http.StatusBadRequest, "invalid scenario payload: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		web.WriteError(w, http.StatusBadRequest, "scenario name is required")
		return
	}

	assumptions := models.DefaultAssumptions()
	if req.Assumptions != nil {
		assumptions = req.Assumptions
	}

	sc := models.NewScenario(req.Name, req.Description, assumptions)
	if err := svc.Save(sc); err != nil {
		web.WriteConfigError(w, err)
		return
	}

	observeCount()
	web.WriteJSON(w, http.StatusCreated, sc)
}

// HandleGet returns one scenario by ID.
func HandleGet(w http.ResponseWriter, r *http.Request) {
	sc, err := svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		if err == scenario.ErrNotFound {
			web.WriteError(w, http.StatusNotFound, "scenario not found")
			return
		}
		web.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}
	web.WriteJSON(w, http.StatusOK, sc)
}

// HandleUpdate replaces a stored scenario's name, description, and
// assumptions, keeping its ID and creation time.
func HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sc, err := svc.Get(chi.URLParam(r, "id"))
	if err != nil {
		if err == scenario.ErrNotFound {
			web.WriteError(w, http.StatusNotFound, "scenario not found")
			return
		}
		web.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var req scenarioRequest
	if err := web.DecodeJSON(r, &req); err != nil {
		web.WriteError(w, http.StatusBadRequest, "invalid scenario payload: "+err.Error())
		return
	}

	if req.Name != "" {
		sc.Name = req.Name
	}
	sc.Description = req.Description
	if req.Assumptions != nil {
		sc.Assumptions = *req.Assumptions
	}

	if err := svc.Save(sc); err != nil {
		web.WriteConfigError(w, err)
		return
	}
	web.WriteJSON(w, http.StatusOK, sc)
}

// HandleDelete removes a stored scenario.
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := svc.Delete(chi.URLParam(r, "id")); err != nil {
		if err == scenario.ErrNotFound {
			web.WriteError(w, http.StatusNotFound, "scenario not found")
			return
		}
		web.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	observeCount()
	web.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
