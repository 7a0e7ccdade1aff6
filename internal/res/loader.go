package res

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a local input cannot be found in any search path
var ErrNotFound = errors.New("input not found")

// Kind represents the format of an input document
type Kind int

const (
	// KindUnknown is an input whose format could not be determined
	KindUnknown Kind = iota
	// KindHTML is an HTML document
	KindHTML
	// KindOther is any other input
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindHTML:
		return "html"
	case KindOther:
		return "other"
	default:
		return "unknown"
	}
}

// Resource represents a loaded input document
type Resource struct {
	URL      string
	Kind     Kind
	Data     []byte
	MimeType string
}

// Reader returns a reader for the resource data
func (r *Resource) Reader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// String returns the resource data as a string
func (r *Resource) String() string {
	return string(r.Data)
}

// Loader loads input documents from files and URLs
type Loader struct {
	// Base URL or file path for resolving relative references
	BaseURL string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string

	client *http.Client
}

// NewLoader creates a new loader
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL: baseURL,
		cache:   make(map[string]*Resource),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SetClient replaces the HTTP client used for remote inputs
func (l *Loader) SetClient(client *http.Client) {
	if client != nil {
		l.client = client
	}
}

// AddSearchPath adds a directory to search for local inputs
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads an input from a file path, a file:// URL or an http(s) URL.
// Results are cached by the reference passed in.
func (l *Loader) Load(ref string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[ref]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	resolved, err := l.resolve(ref)
	if err != nil {
		return nil, err
	}

	var res *Resource
	if isRemote(resolved) {
		res, err = l.loadRemote(resolved)
	} else {
		res, err = l.loadLocal(resolved)
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[ref] = res
	l.cacheLock.Unlock()

	return res, nil
}

// LoadHTML loads an input and checks that it is an HTML document
func (l *Loader) LoadHTML(ref string) (*Resource, error) {
	res, err := l.Load(ref)
	if err != nil {
		return nil, err
	}
	if res.Kind != KindHTML {
		return nil, fmt.Errorf("input is not HTML: %s (%s)", ref, res.MimeType)
	}
	return res, nil
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// resolve resolves ref relative to the base URL
func (l *Loader) resolve(ref string) (string, error) {
	if isRemote(ref) {
		return ref, nil
	}

	if strings.HasPrefix(ref, "file://") {
		u, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("invalid file URL %q: %w", ref, err)
		}
		return filepath.FromSlash(u.Path), nil
	}

	if filepath.IsAbs(ref) || l.BaseURL == "" {
		return ref, nil
	}

	if !isRemote(l.BaseURL) {
		return filepath.Join(filepath.Dir(l.BaseURL), ref), nil
	}

	base, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}

func (l *Loader) loadRemote(ref string) (*Resource, error) {
	resp, err := l.client.Get(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", ref, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	res := &Resource{
		URL:      ref,
		Data:     data,
		MimeType: resp.Header.Get("Content-Type"),
	}
	res.Kind = kindOf(res.MimeType, ref)
	return res, nil
}

func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	return localResource(path, data), nil
}

func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)

	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return localResource(path, data), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

func localResource(path string, data []byte) *Resource {
	mime := mimeType(path)
	return &Resource{
		URL:      path,
		Data:     data,
		MimeType: mime,
		Kind:     kindOf(mime, path),
	}
}

func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return "text/html"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}

func kindOf(mime, path string) Kind {
	if strings.HasPrefix(mime, "text/html") || strings.HasPrefix(mime, "application/xhtml") {
		return KindHTML
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return KindHTML
	case "":
		return KindUnknown
	}
	return KindOther
}
