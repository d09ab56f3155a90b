package resources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"travelgo/internal/domain/i18n"
	"travelgo/internal/domain/tours"
)

var ErrEmptyResource = errors.New("resources: empty resource")

// Fetcher returns the raw bytes of a static JSON resource.
type Fetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileFetcher reads a resource from disk. YAML files are converted to JSON.
type FileFetcher struct {
	Path string
}

func (f FileFetcher) Fetch(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("resources: read %s: %w", f.Path, err)
	}
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		return yamlToJSON(data)
	default:
		return data, nil
	}
}

// HTTPFetcher downloads a resource, bypassing intermediate caches.
type HTTPFetcher struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
}

func (f HTTPFetcher) Fetch(ctx context.Context) ([]byte, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("resources: build request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resources: get %s: %w", f.URL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("resources: get %s: unexpected status %d", f.URL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// ToursLoader decodes a {"tours": [...]} document. A missing or non-array "tours"
// yields an empty collection.
func ToursLoader(f Fetcher) Loader[[]tours.Tour] {
	return func(ctx context.Context) ([]tours.Tour, error) {
		data, err := fetchNonEmpty(ctx, f)
		if err != nil {
			return nil, err
		}
		var doc struct {
			Tours json.RawMessage `json:"tours"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("resources: decode tours: %w", err)
		}
		list := []tours.Tour{}
		if trimmed := bytes.TrimSpace(doc.Tours); len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &list); err != nil {
				return nil, fmt.Errorf("resources: decode tours: %w", err)
			}
		}
		return list, nil
	}
}

// CopyLoader decodes the localized copy document.
func CopyLoader(f Fetcher) Loader[*i18n.Copy] {
	return func(ctx context.Context) (*i18n.Copy, error) {
		data, err := fetchNonEmpty(ctx, f)
		if err != nil {
			return nil, err
		}
		var doc i18n.Copy
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("resources: decode copy: %w", err)
		}
		return &doc, nil
	}
}

func fetchNonEmpty(ctx context.Context, f Fetcher) ([]byte, error) {
	data, err := f.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyResource
	}
	return data, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("resources: decode yaml: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("resources: convert yaml: %w", err)
	}
	return out, nil
}
