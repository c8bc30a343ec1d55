package compare

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheConfig configures the optional Redis embedding cache.
type CacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	// Prefix namespaces cache keys; defaults to "embeddings".
	Prefix string
	// TTL after which cached vectors expire; zero keeps them forever.
	TTL time.Duration
}

// CachedEmbeddings wraps an EmbeddingsProvider with a Redis lookaside cache.
// Keys are the sha256 of model name and text, so switching models never
// serves stale vectors. Cache failures degrade to the inner provider.
type CachedEmbeddings struct {
	inner  EmbeddingsProvider
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCachedEmbeddings connects to Redis and wraps the given provider.
func NewCachedEmbeddings(inner EmbeddingsProvider, cfg CacheConfig) (*CachedEmbeddings, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "embeddings"
	}
	return &CachedEmbeddings{inner: inner, client: client, prefix: prefix, ttl: cfg.TTL}, nil
}

func (c *CachedEmbeddings) ModelName() string { return c.inner.ModelName() }

// Close releases the Redis connection.
func (c *CachedEmbeddings) Close() error { return c.client.Close() }

func (c *CachedEmbeddings) key(text string) string {
	sum := sha256.Sum256([]byte(c.inner.ModelName() + "\x00" + text))
	return c.prefix + ":" + hex.EncodeToString(sum[:])
}

// EmbedTexts serves cached vectors where possible and embeds only the misses.
func (c *CachedEmbeddings) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	keys := make([]string, len(texts))
	for i, t := range texts {
		keys[i] = c.key(t)
	}

	out := make([][]float32, len(texts))
	var missIdx []int

	cached, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		// Cache unavailable mid-flight: fall through to the provider.
		missIdx = make([]int, len(texts))
		for i := range texts {
			missIdx[i] = i
		}
	} else {
		for i, raw := range cached {
			s, ok := raw.(string)
			if !ok {
				missIdx = append(missIdx, i)
				continue
			}
			var vec []float32
			if err := json.Unmarshal([]byte(s), &vec); err != nil {
				missIdx = append(missIdx, i)
				continue
			}
			out[i] = vec
		}
	}

	if len(missIdx) == 0 {
		return out, nil
	}

	missing := make([]string, len(missIdx))
	for i, idx := range missIdx {
		missing[i] = texts[idx]
	}

	vecs, err := c.inner.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}

	pipe := c.client.Pipeline()
	for i, idx := range missIdx {
		out[idx] = vecs[i]
		if b, err := json.Marshal(vecs[i]); err == nil {
			pipe.Set(ctx, keys[idx], b, c.ttl)
		}
	}
	// Writing back is best effort; the vectors are already in hand.
	_, _ = pipe.Exec(ctx)
	return out, nil
}
