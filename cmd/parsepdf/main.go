// Command parsepdf parses a single local notification PDF and prints the
// extracted record as JSON. Useful for debugging the pipeline without the
// HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/common"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/llm/gemini"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/pdftext"
)

func main() {
	regexOnly := flag.Bool("regex-only", false, "skip the generative tier")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-regex-only] <file.pdf>\n", os.Args[0])
		os.Exit(2)
	}
	path := flag.Arg(0)

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := common.LoadConfig()

	var model extract.FieldExtractor
	if !*regexOnly && cfg.Gemini.APIKey != "" {
		model = gemini.NewClient(gemini.Config{
			APIKey:         cfg.Gemini.APIKey,
			BaseURL:        cfg.Gemini.BaseURL,
			Model:          cfg.Gemini.Model,
			Timeout:        cfg.Gemini.Timeout,
			MaxPromptChars: cfg.Gemini.MaxPromptChars,
		}, logger)
	}

	orch := extract.NewOrchestrator(logger, extract.Config{}, pdftext.NewPDFExtractor(logger), model, nil)

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
		os.Exit(1)
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "stat %s: %v\n", path, err)
		os.Exit(1)
	}

	result, err := orch.Parse(context.Background(), f, st.Size())
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", path, err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(struct {
		Record   extract.JobRecord `json:"record"`
		Tier     string            `json:"tier"`
		Attempts int               `json:"attempts"`
	}{result.Record, string(result.Tier), result.Attempts}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
