// Command server runs the capacity-planning API consumed by the dashboard.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/term"

	"github.com/ilan-berdy/Commure-Case-Study/internal/config"
	"github.com/ilan-berdy/Commure-Case-Study/internal/handlers/dashboard"
	"github.com/ilan-berdy/Commure-Case-Study/internal/handlers/scenarios"
	"github.com/ilan-berdy/Commure-Case-Study/internal/metrics"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/scenario"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/storage"
	"github.com/ilan-berdy/Commure-Case-Study/internal/version"
)

func main() {
	cfg := config.Load()
	log.Printf("Starting RCM capacity planner (%s)", version.Get())
	log.Printf("Scenario directory: %s", cfg.ScenariosDirectory)

	store, err := storage.New(cfg.ScenariosDirectory)
	if err != nil {
		log.Fatalf("Failed to open scenario store: %v", err)
	}

	if store.IsEncrypted() {
		if err := unlockStore(store, cfg.StorePassword); err != nil {
			log.Fatalf("Failed to unlock scenario store: %v", err)
		}
		log.Printf("Scenario store unlocked")
	}

	svc := scenario.New(store)
	dashboard.Initialize(svc)
	scenarios.Initialize(svc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/report", http.StatusTemporaryRedirect)
	})

	// Report endpoints
	r.Get("/api/report", dashboard.HandleReport)
	r.Post("/api/report", dashboard.HandleReportForAssumptions)
	r.Get("/api/report/charts/{chartType}", dashboard.HandleChartData)
	r.Get("/api/report/sensitivity", dashboard.HandleSensitivity)

	// Scenario endpoints
	r.Get("/api/scenarios", scenarios.HandleList)
	r.Post("/api/scenarios", scenarios.HandleCreate)
	r.Get("/api/scenarios/{id}", scenarios.HandleGet)
	r.Put("/api/scenarios/{id}", scenarios.HandleUpdate)
	r.Delete("/api/scenarios/{id}", scenarios.HandleDelete)

	// Operational endpoints
	r.Get("/api/health", dashboard.HandleHealth)
	r.Get("/api/version", dashboard.HandleVersion)
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	log.Printf("Server starting on %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, r))
}

// unlockStore unlocks an encrypted scenario store: with the configured
// password when present, otherwise with an interactive prompt.
func unlockStore(store *storage.Store, password string) error {
	if password != "" {
		return store.Unlock(password)
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return fmt.Errorf("store is encrypted; set RCM_STORE_PASSWORD or run interactively")
	}

	fmt.Fprint(os.Stderr, "Scenario store password: ")
	entered, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	return store.Unlock(string(entered))
}
