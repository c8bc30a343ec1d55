package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"reprocheck/compare"
	"reprocheck/config"
	"reprocheck/pipeline"
	"reprocheck/validate"
)

// Runs one local check of two files and prints the report.
//
//	go run ./cmd/check -expected expected_results.csv -actual reproduced_results.csv
func main() {
	_ = godotenv.Load()

	expectedPath := flag.String("expected", "", "path to the expected (reference) file")
	actualPath := flag.String("actual", "", "path to the reproduced file")
	tolerance := flag.Float64("tolerance", config.DefaultNumericTolerance, "absolute numeric tolerance")
	flag.Parse()

	if *expectedPath == "" || *actualPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := compare.EmbeddingsConfig{Model: os.Getenv("EMBEDDING_MODEL")}
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		cfg.Provider = "cohere"
		cfg.APIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Provider = "openai"
		cfg.APIKey = key
	} else {
		log.Fatal("No embeddings provider configured. Set COHERE_API_KEY or OPENAI_API_KEY.")
	}

	provider, err := compare.NewEmbeddingsProvider(cfg)
	if err != nil {
		log.Fatalf("Failed to configure embeddings: %v", err)
	}

	scorer := compare.NewSemanticScorer(provider)
	checker := pipeline.NewChecker(
		validate.New(validate.Rules{}),
		compare.NewFileComparator(scorer, *tolerance),
	)

	outcome, err := checker.Run(context.Background(), *expectedPath, *actualPath)
	if err != nil {
		log.Fatalf("Check failed: %v", err)
	}

	fmt.Println(outcome.Report)
	if outcome.Status != pipeline.StatusSuccess {
		os.Exit(1)
	}
}
