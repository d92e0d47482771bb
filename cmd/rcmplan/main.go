// Command rcmplan generates a capacity plan from an assumptions file and
// prints it as text, JSON, or CSV.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ilan-berdy/Commure-Case-Study/internal/format"
	"github.com/ilan-berdy/Commure-Case-Study/internal/metrics"
	"github.com/ilan-berdy/Commure-Case-Study/internal/models"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/capacity"
	"github.com/ilan-berdy/Commure-Case-Study/internal/services/scenario"
)

func main() {
	configPath := flag.String("config", "", "Assumptions file, JSON or YAML (default: case-study baseline)")
	outputFormat := flag.String("format", "text", "Output format: text|json|csv")
	outputPath := flag.String("output", "", "Write output to file instead of stdout")
	sensitivity := flag.Bool("sensitivity", false, "Append the sensitivity table (text format only)")
	metricsAddr := flag.String("metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
	flag.Parse()

	validFormats := map[string]bool{"text": true, "json": true, "csv": true}
	if !validFormats[*outputFormat] {
		fmt.Fprintf(os.Stderr, "Error: format must be one of: text, json, csv (got: %s)\n", *outputFormat)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		go func() {
			http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
			fmt.Printf("Metrics server listening on %s/metrics\n", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, nil); err != nil {
				fmt.Fprintf(os.Stderr, "Metrics server error: %v\n", err)
			}
		}()
	}

	assumptions := models.DefaultAssumptions()
	if *configPath != "" {
		loaded, err := scenario.LoadAssumptionsFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		assumptions = loaded
	}

	engine, err := capacity.NewEngine(assumptions)
	if err != nil {
		metrics.ConfigurationErrorsTotal.Inc()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()
	report := engine.GenerateReport()
	metrics.ReportDurationSeconds.Observe(time.Since(start).Seconds())
	metrics.ObserveReport(report)

	var out string
	switch *outputFormat {
	case "json":
		out = format.JSON(report)
	case "csv":
		out = format.CSV(report)
	default:
		out = format.Text(report)
		if *sensitivity {
			out += "\n" + format.SensitivityText(engine.AnalyzeSensitivity())
		}
	}

	if *outputPath != "" {
		if err := os.WriteFile(*outputPath, []byte(out), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *outputPath, err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)

	if *metricsAddr != "" {
		// Leave a window for a final scrape; batch runs that need
		// durable metrics should use the server instead.
		time.Sleep(100 * time.Millisecond)
	}
}
