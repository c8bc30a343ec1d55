package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"reprocheck/api"
	"reprocheck/common"
	"reprocheck/compare"
	"reprocheck/config"
	"reprocheck/docstore"
	"reprocheck/pipeline"
	"reprocheck/validate"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	provider, err := buildEmbeddingsProvider()
	if err != nil {
		log.Fatalf("Failed to configure embeddings: %v", err)
	}
	log.Printf("Using embeddings model: %s", provider.ModelName())

	scorer := compare.NewSemanticScorer(provider)
	text := compare.NewTextComparator(scorer)
	files := compare.NewFileComparator(scorer, envFloat("NUMERIC_TOLERANCE", config.DefaultNumericTolerance))
	validator := validate.New(validate.Rules{
		MaxFileSizeMB: envInt64("MAX_FILE_SIZE_MB", config.MaxFileSizeMB),
	})

	var archivers []pipeline.Archiver
	if a := initializeS3Archiver(); a != nil {
		archivers = append(archivers, a)
	}

	store := initializeStore(provider)
	if store != nil {
		defer store.Close()
		archivers = append(archivers, &pipeline.StoreArchiver{Store: store})
	}

	checker := pipeline.NewChecker(validator, files, archivers...)

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter(&api.Controllers{Text: text, Checker: checker, Store: store})
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /api/health")
	log.Println("  POST /api/compare")
	log.Println("  POST /api/check")
	log.Println("  GET  /api/reports/search")
	log.Println("  GET  /api/reports/count")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// buildEmbeddingsProvider resolves the embedding backend from the
// environment. Cohere is preferred when configured; OpenAI is the fallback.
// An optional Redis cache wraps whichever backend is chosen.
func buildEmbeddingsProvider() (compare.EmbeddingsProvider, error) {
	cfg := compare.EmbeddingsConfig{Model: os.Getenv("EMBEDDING_MODEL")}
	if key := os.Getenv("COHERE_API_KEY"); key != "" {
		cfg.Provider = "cohere"
		cfg.APIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Provider = "openai"
		cfg.APIKey = key
		cfg.Endpoint = os.Getenv("OPENAI_EMBEDDINGS_URL")
	} else {
		log.Fatal("No embeddings provider configured. Set COHERE_API_KEY or OPENAI_API_KEY.")
	}

	provider, err := compare.NewEmbeddingsProvider(cfg)
	if err != nil {
		return nil, err
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return provider, nil
	}

	cached, err := compare.NewCachedEmbeddings(provider, compare.CacheConfig{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASS"),
		TTL:      time.Duration(envInt64("EMBED_CACHE_TTL_SECONDS", 0)) * time.Second,
	})
	if err != nil {
		log.Printf("Warning: embedding cache disabled: %v", err)
		return provider, nil
	}
	log.Printf("Embedding cache enabled at %s", addr)
	return cached, nil
}

// initializeS3Archiver returns an S3 archiver if configured via env.
// Required: S3_BUCKET. Optional: S3_REGION, S3_PROFILE, S3_PREFIX,
// S3_USE_PATH_STYLE=true.
func initializeS3Archiver() *pipeline.S3Archiver {
	bucket := strings.TrimSpace(os.Getenv("S3_BUCKET"))
	if bucket == "" {
		return nil
	}

	client, err := common.NewS3(context.Background(), common.S3Config{
		Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		UsePathStyle: strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	})
	if err != nil {
		log.Printf("Warning: failed to init S3 client: %v (archiving disabled)", err)
		return nil
	}

	prefix := strings.TrimSpace(os.Getenv("S3_PREFIX"))
	if prefix != "" {
		prefix = strings.Trim(prefix, "/") + "/"
	}
	log.Printf("S3 archiving enabled: bucket %q prefix %q", bucket, prefix)
	return &pipeline.S3Archiver{Client: client, Bucket: bucket, Prefix: prefix}
}

// initializeStore connects to the Chroma document store if configured via
// CHROMA_HOST (optional CHROMA_PORT, CHROMA_COLLECTION).
func initializeStore(provider compare.EmbeddingsProvider) docstore.Store {
	host := strings.TrimSpace(os.Getenv("CHROMA_HOST"))
	if host == "" {
		return nil
	}

	port := int(envInt64("CHROMA_PORT", 8000))
	store, err := docstore.NewChroma(context.Background(), docstore.ChromaConfig{
		Host:           host,
		Port:           port,
		CollectionName: os.Getenv("CHROMA_COLLECTION"),
	}, provider)
	if err != nil {
		log.Printf("Warning: document store unavailable: %v", err)
		return nil
	}
	log.Printf("Document store connected: %s:%d", host, port)
	return store
}

func envInt64(name string, fallback int64) int64 {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
