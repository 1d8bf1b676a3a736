package store

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/valkey-io/valkey-go"
)

const (
	processedSetKey   = "analysis:processed_items"
	processedTTLSecs  = 86400
	valkeyRetryPause  = 250 * time.Millisecond
	valkeyMaxAttempts = 3
)

// ValkeyProcessedCache implements ProcessedCache on a Valkey set with a
// daily TTL. Cache failures are soft: a miss means the item gets
// re-analyzed, which is correct, just wasteful.
type ValkeyProcessedCache struct {
	client valkey.Client
}

// NewValkeyProcessedCache connects using VALKEY_INIT_ADDRESS,
// VALKEY_PASSWORD and VALKEY_TLS and pings before returning.
func NewValkeyProcessedCache() (*ValkeyProcessedCache, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyCache] failed to create client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyCache] failed to ping: %w", err)
	}

	slog.Info("[ValkeyCache] Connected")
	return &ValkeyProcessedCache{client: client}, nil
}

func (c *ValkeyProcessedCache) Close() {
	c.client.Close()
}

func (c *ValkeyProcessedCache) MarkProcessed(ctx context.Context, id string) error {
	completed := []valkey.Completed{
		c.client.B().Sadd().Key(processedSetKey).Member(id).Build(),
		c.client.B().Expire().Key(processedSetKey).Seconds(processedTTLSecs).Build(),
	}

	for attempt := 0; attempt < valkeyMaxAttempts; attempt++ {
		results := c.client.DoMulti(ctx, completed...)
		var lastErr error
		for _, res := range results {
			if err := res.Error(); err != nil {
				lastErr = err
			}
		}
		if lastErr == nil {
			return nil
		}
		slog.Warn("[ValkeyCache] MarkProcessed failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()))
		time.Sleep(valkeyRetryPause)
	}
	return fmt.Errorf("[ValkeyCache] failed to mark %q processed", id)
}

func (c *ValkeyProcessedCache) IsProcessed(ctx context.Context, id string) bool {
	var res valkey.ValkeyResult
	for attempt := 0; attempt < valkeyMaxAttempts; attempt++ {
		res = c.client.Do(ctx, c.client.B().Sismember().Key(processedSetKey).Member(id).Build())
		if res.Error() == nil {
			break
		}
		slog.Warn("[ValkeyCache] IsProcessed failed",
			slog.Int("attempt", attempt+1),
			slog.String("error", res.Error().Error()))
		time.Sleep(valkeyRetryPause)
	}

	ok, err := res.AsBool()
	if err != nil {
		return false
	}
	return ok
}
