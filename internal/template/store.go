package template

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound reports that no template with the requested name exists.
var ErrNotFound = errors.New("template: not found")

var nameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Store serves quote templates from a directory, with an optional Redis
// cache in front so repeated renders skip the disk read. A nil client
// degrades to direct reads.
type Store struct {
	dir    string
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a template store rooted at dir.
func NewStore(dir string, client *redis.Client, ttl time.Duration) *Store {
	return &Store{dir: dir, client: client, ttl: ttl}
}

// Load returns the template body for name. Names are bare identifiers; the
// store maps them to <dir>/<name>.html and rejects anything that could
// escape the template directory.
func (s *Store) Load(ctx context.Context, name string) (string, error) {
	if !nameRe.MatchString(name) {
		return "", fmt.Errorf("template: invalid name %q: %w", name, ErrNotFound)
	}

	key := "tpl:" + name
	if s.client != nil {
		if body, err := s.client.Get(ctx, key).Result(); err == nil {
			return body, nil
		} else if err != redis.Nil {
			return "", fmt.Errorf("template: cache get: %w", err)
		}
	}

	body, err := os.ReadFile(filepath.Join(s.dir, name+".html"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("template %q: %w", name, ErrNotFound)
		}
		return "", fmt.Errorf("template %q: %w", name, err)
	}

	if s.client != nil && s.ttl > 0 {
		// Best effort; a failed cache write must not fail the render.
		_ = s.client.Set(ctx, key, body, s.ttl).Err()
	}
	return string(body), nil
}

// Invalidate drops the cached copy of name so the next Load rereads disk.
func (s *Store) Invalidate(ctx context.Context, name string) error {
	if s.client == nil || !nameRe.MatchString(name) {
		return nil
	}
	return s.client.Del(ctx, "tpl:"+name).Err()
}

// List names the templates available on disk.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("template: list: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".html"))
	}
	return names, nil
}
