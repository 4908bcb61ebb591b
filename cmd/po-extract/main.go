package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/pflag"

	"github.com/atozflooring/po-extract/internal/config"
	"github.com/atozflooring/po-extract/internal/extract"
	"github.com/atozflooring/po-extract/internal/payload"
	"github.com/atozflooring/po-extract/internal/textextract"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// setupLogging builds the slog handler from the configured level and format.
func setupLogging(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	pdfPath := pflag.String("pdf", "", "Path to the purchase order PDF to extract")
	builderHint := pflag.String("builder", "", "Builder name when known (overrides content detection)")
	jsonOutput := pflag.Bool("json", false, "Print the extracted record as JSON")
	showPayload := pflag.Bool("payload", false, "Also print the RFMS order payload (requires --customer-id)")
	customerID := pflag.String("customer-id", "", "RFMS sold-to customer id for payload generation")

	cfg, err := config.LoadFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogging(cfg)

	if version != "dev" {
		cfg.Version = version
	}

	if *pdfPath == "" {
		fmt.Fprintln(os.Stderr, "missing required flag: --pdf")
		pflag.Usage()
		os.Exit(2)
	}

	if cfg.IsDebug() {
		logger.Debug("starting extraction", "config", cfg.String(), "pdf", *pdfPath)
	}

	svc := extract.NewService(cfg, textextract.NewService(logger), logger)

	rec, err := svc.ExtractFile(*pdfPath, *builderHint)
	if err != nil {
		logger.Error("extraction failed", "pdf", *pdfPath, "error", err)
		os.Exit(1)
	}

	if rec.MismatchWarning != "" {
		logger.Warn("template mismatch", "warning", rec.MismatchWarning)
	}

	if *jsonOutput {
		printJSON(rec)
	} else {
		printRecord(rec)
	}

	if *showPayload {
		if *customerID == "" {
			fmt.Fprintln(os.Stderr, "--payload requires --customer-id")
			os.Exit(2)
		}
		order, err := payload.NewBuilder(cfg).BuildOrder(rec, payload.Party{ID: *customerID}, nil)
		if err != nil {
			logger.Error("payload build failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(order.JSON())
	}
}

func printJSON(rec *extract.Record) {
	encoded, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode record: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

func printRecord(rec *extract.Record) {
	fmt.Printf("Template:        %s (backend %s)\n", rec.TemplateKey, rec.Backend)
	fmt.Printf("PO Number:       %s\n", rec.PONumber)
	fmt.Printf("Job Number:      %s\n", rec.JobNumber)
	if rec.ActualJobNumber != "" {
		fmt.Printf("Document Job No: %s\n", rec.ActualJobNumber)
	}
	fmt.Printf("Customer:        %s\n", rec.CustomerName)
	fmt.Printf("Address:         %s %s %s %s %s\n", rec.Address1, rec.Address2, rec.City, rec.State, rec.PostCode)
	fmt.Printf("Phone:           %s\n", rec.Phone)
	fmt.Printf("Email:           %s\n", rec.Email)
	fmt.Printf("Supervisor:      %s %s\n", rec.SupervisorName, rec.SupervisorPhone)
	fmt.Printf("Value:           $%s\n", rec.DollarValue.String())
	if rec.DescriptionOfWorks != "" {
		fmt.Printf("Description:\n%s\n", rec.DescriptionOfWorks)
	}
	for _, c := range rec.AlternateContacts {
		fmt.Printf("Contact:         [%s] %s %s %s\n", c.Type, c.Name, c.Phone, c.Email)
	}
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("PO Extract\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
