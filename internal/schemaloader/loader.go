package schemaloader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/SteampunkIslande/adaptive-tree-widget/pkg/schema"
)

// Options configures a Loader.
type Options struct {
	// FileSystem backs SourceKindFS lookups. Nil disables fs sources.
	FileSystem fs.FS
	// HTTPClient backs SourceKindURL lookups. When nil and AllowHTTP is
	// set, a default client with RequestTimeout is used.
	HTTPClient *http.Client
	// AllowHTTP opts into URL sources. Disabled by default so embedding
	// callers stay offline unless they ask otherwise.
	AllowHTTP bool
	// RequestTimeout bounds URL fetches. Zero means no explicit timeout.
	RequestTimeout time.Duration
}

// Loader fetches schema documents from files, fs.FS entries, or URLs behind
// one interface.
type Loader struct {
	fs      fs.FS
	http    *http.Client
	timeout time.Duration
}

// New constructs a Loader from pre-resolved options.
func New(options Options) *Loader {
	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		httpClient = &clone
	case options.AllowHTTP:
		httpClient = &http.Client{Timeout: options.RequestTimeout}
	}

	return &Loader{
		fs:      options.FileSystem,
		http:    httpClient,
		timeout: options.RequestTimeout,
	}
}

// Load fetches a document from the provided source and wraps it in a
// schema.Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schemaloader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if l.http == nil {
			return schema.Document{}, errors.New("schemaloader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("schemaloader: unsupported source kind")
	}
	if err != nil {
		return schema.Document{}, err
	}

	return schema.NewDocument(src, data)
}
