package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=source.go -destination=../../internal/mocks/mock_source.go -package=mocks

// DefaultName is used for dictionary files that do not declare a name.
const DefaultName = "radius"

// Source loads a dictionary from somewhere.
type Source interface {
	Load(ctx context.Context) (*Dictionary, error)
	Close() error
}

// FileSource loads dictionaries from local files (YAML or JSON)
type FileSource struct {
	// Path specifies a single file path to load
	Path string

	// Paths specifies multiple file paths to load and merge
	Paths []string

	// Dir specifies a directory to scan for dictionary files
	Dir string

	// Format specifies the file format ("yaml", "json", or "auto")
	Format string
}

// MultiSource combines multiple dictionary sources
type MultiSource struct {
	Sources []Source
}

// HTTPSource fetches a dictionary file over HTTP(S).
type HTTPSource struct {
	URL string

	// Format specifies the body format ("yaml", "json", or "auto")
	Format string

	// Timeout bounds the whole request; zero means 10 seconds.
	Timeout time.Duration

	client *resty.Client
}

// Load loads the dictionary from file(s)
func (fs *FileSource) Load(ctx context.Context) (*Dictionary, error) {
	var filePaths []string

	if fs.Path != "" {
		filePaths = append(filePaths, fs.Path)
	}

	if len(fs.Paths) > 0 {
		filePaths = append(filePaths, fs.Paths...)
	}

	if fs.Dir != "" {
		dirFiles, err := fs.scanDirectory(fs.Dir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", fs.Dir, err)
		}
		filePaths = append(filePaths, dirFiles...)
	}

	if len(filePaths) == 0 {
		return nil, fmt.Errorf("no files specified to load")
	}

	var merged *Dictionary
	for _, path := range filePaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dict, err := fs.loadSingleFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load file %s: %w", path, err)
		}

		if merged == nil {
			merged = dict
			continue
		}
		if err := merged.Merge(dict); err != nil {
			return nil, fmt.Errorf("failed to merge dictionary from %s: %w", path, err)
		}
	}

	return merged, nil
}

// Close closes the file source (no-op for file sources)
func (fs *FileSource) Close() error {
	return nil
}

func (fs *FileSource) scanDirectory(dir string) ([]string, error) {
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".yaml" || ext == ".yml" || ext == ".json" {
			files = append(files, path)
		}

		return nil
	})

	sort.Strings(files)
	return files, err
}

func (fs *FileSource) loadSingleFile(path string) (*Dictionary, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	format := fs.Format
	if format == "" || format == "auto" {
		format = detectFormat(filepath.Ext(path), data)
	}

	return Decode(data, format)
}

// Load loads dictionaries from all sources and merges them
func (ms *MultiSource) Load(ctx context.Context) (*Dictionary, error) {
	if len(ms.Sources) == 0 {
		return nil, fmt.Errorf("no sources specified")
	}

	var merged *Dictionary
	for i, source := range ms.Sources {
		dict, err := source.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load from source %d: %w", i, err)
		}

		if merged == nil {
			merged = dict
			continue
		}
		if err := merged.Merge(dict); err != nil {
			return nil, fmt.Errorf("failed to merge dictionary from source %d: %w", i, err)
		}
	}

	return merged, nil
}

// Close closes all sources
func (ms *MultiSource) Close() error {
	var errs []string
	for i, source := range ms.Sources {
		if err := source.Close(); err != nil {
			errs = append(errs, fmt.Sprintf("source %d: %v", i, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing sources: %s", strings.Join(errs, "; "))
	}

	return nil
}

// Load fetches and decodes the dictionary file at URL.
func (hs *HTTPSource) Load(ctx context.Context) (*Dictionary, error) {
	if hs.URL == "" {
		return nil, fmt.Errorf("no URL specified")
	}

	if hs.client == nil {
		timeout := hs.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		hs.client = resty.New().SetTimeout(timeout)
	}

	resp, err := hs.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/yaml, application/json").
		Get(hs.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", hs.URL, err)
	}

	if !resp.IsSuccess() {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %d", hs.URL, resp.StatusCode())
	}

	format := hs.Format
	if format == "" || format == "auto" {
		if strings.Contains(resp.Header().Get("Content-Type"), "json") {
			format = "json"
		} else {
			format = detectFormat(filepath.Ext(resp.Request.URL), resp.Body())
		}
	}

	return Decode(resp.Body(), format)
}

// Close releases idle connections held by the HTTP client.
func (hs *HTTPSource) Close() error {
	if hs.client != nil {
		hs.client.GetClient().CloseIdleConnections()
	}
	return nil
}

// Decode parses a dictionary file in the given format ("yaml" or "json").
func Decode(data []byte, format string) (*Dictionary, error) {
	var file File
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	name := file.Name
	if name == "" {
		name = DefaultName
	}

	dict := New(name)
	if file.Internal {
		dict = NewInternal(name)
	}

	if err := dict.Load(&file); err != nil {
		return nil, err
	}

	return dict, nil
}

func detectFormat(ext string, data []byte) string {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		trimmed := strings.TrimSpace(string(data))
		if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			return "json"
		}
		return "yaml"
	}
}
