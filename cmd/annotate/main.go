package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"edarec/internal"
	"edarec/internal/annotator"
	"edarec/internal/config"
	"edarec/internal/loader"
	"edarec/reporting"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	resultFile := flag.String("result_file", cfg.Paths.ResultFile,
		"path of an exported analysis-run JSON file")
	flag.Parse()

	if *resultFile == "" {
		log.Fatal("no result file given; pass -result_file or set RESULT_FILE")
	}

	records, err := loader.Load(*resultFile)
	if err != nil {
		log.Fatal("Failed to load analysis results:", err)
	}

	logger := internal.NewDefaultLogger()
	an := annotator.New(cfg.Annotator.Parallelism, logger)

	run, err := an.Annotate(context.Background(), records)
	if err != nil {
		log.Fatal("Annotation run failed:", err)
	}

	section := reporting.RecommendationSection(run.Recommendations)
	if section.Empty() {
		logger.Info("no recommendations for %d records", run.RecordCount)
		os.Exit(0)
	}

	fmt.Print(section.Markdown)
}
