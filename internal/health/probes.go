package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Probes implements Checker against the service's real dependencies.
type Probes struct {
	Redis       *redis.Client
	TemplateDir string
}

// PingRedis checks the template cache connection.
func (p Probes) PingRedis(ctx context.Context, timeout time.Duration) error {
	if p.Redis == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.Redis.Ping(ctx).Err()
}

// CheckTemplates verifies the template directory is present and readable.
func (p Probes) CheckTemplates(_ context.Context) error {
	info, err := os.Stat(p.TemplateDir)
	if err != nil {
		return fmt.Errorf("template dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("template dir %q is not a directory", p.TemplateDir)
	}
	return nil
}
