package datasets

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"costar/internal/config"
	"costar/internal/fileutil"
	"costar/internal/logging"
)

const lockFileName = ".fetch.lock"

// Provider ensures the four dataset files exist locally, downloading and
// decompressing each on first use.
type Provider struct {
	dataDir  string
	baseURL  string
	client   *http.Client
	logger   *slog.Logger
	manifest *Manifest
	progress bool
}

// NewProvider builds a Provider from configuration. The manifest may be nil;
// fetch metadata is then simply not recorded.
func NewProvider(cfg *config.Config, logger *slog.Logger, manifest *Manifest) *Provider {
	return &Provider{
		dataDir:  cfg.Paths.DataDir,
		baseURL:  cfg.Datasets.BaseURL,
		client:   &http.Client{Timeout: time.Duration(cfg.Datasets.DownloadTimeout) * time.Second},
		logger:   logging.NewComponentLogger(logger, "datasets"),
		manifest: manifest,
		progress: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// Ensure returns the path to the decompressed copy of d, fetching it first if
// necessary. A second call with the file already present performs no network
// activity.
func (p *Provider) Ensure(ctx context.Context, d Dataset) (string, error) {
	if !d.Valid() {
		return "", Wrap(ErrStorage, "datasets", "ensure", fmt.Sprintf("unknown dataset %q", string(d)), nil)
	}

	local := filepath.Join(p.dataDir, d.LocalFile())
	if fileutil.FileExists(local) {
		p.logger.Debug("using cached dataset", logging.String(logging.FieldDataset, string(d)))
		return local, nil
	}

	if err := os.MkdirAll(p.dataDir, 0o755); err != nil {
		return "", Wrap(ErrStorage, "datasets", "ensure", "create data directory", err)
	}

	// Serialize downloads across processes so two runs cannot clobber each
	// other's partial files.
	lock := flock.New(filepath.Join(p.dataDir, lockFileName))
	if err := lock.Lock(); err != nil {
		return "", Wrap(ErrStorage, "datasets", "lock", "acquire data directory lock", err)
	}
	defer func() { _ = lock.Unlock() }()

	// Another process may have completed the fetch while we waited.
	if fileutil.FileExists(local) {
		return local, nil
	}

	if err := p.fetch(ctx, d, local); err != nil {
		return "", err
	}
	return local, nil
}

// EnsureAll ensures every required dataset and returns their local paths.
func (p *Provider) EnsureAll(ctx context.Context) (map[Dataset]string, error) {
	paths := make(map[Dataset]string, len(All()))
	for _, d := range All() {
		path, err := p.Ensure(ctx, d)
		if err != nil {
			return nil, err
		}
		paths[d] = path
	}
	return paths, nil
}

func (p *Provider) fetch(ctx context.Context, d Dataset, local string) error {
	url := p.baseURL + d.RemoteFile()
	p.logger.Info("fetching dataset",
		logging.String(logging.FieldDataset, string(d)),
		logging.String("url", url),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Wrap(ErrFetch, "datasets", "fetch", "build request for "+url, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return Wrap(ErrFetch, "datasets", "fetch", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Wrap(ErrFetch, "datasets", "fetch", fmt.Sprintf("%s: unexpected status %d", url, resp.StatusCode), nil)
	}

	var body io.Reader = resp.Body
	if p.progress && resp.ContentLength > 0 {
		bar := progressbar.DefaultBytes(resp.ContentLength, "fetch "+string(d))
		body = io.TeeReader(resp.Body, bar)
		defer func() {
			_ = bar.Close()
			fmt.Fprintln(os.Stderr)
		}()
	}

	gz, err := gzip.NewReader(body)
	if err != nil {
		return Wrap(ErrFetch, "datasets", "decompress", d.RemoteFile(), err)
	}
	defer gz.Close()

	partial := local + ".partial." + uuid.NewString()
	out, err := os.OpenFile(partial, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return Wrap(ErrStorage, "datasets", "fetch", "create "+partial, err)
	}

	written, err := io.Copy(out, gz)
	if err != nil {
		out.Close()
		os.Remove(partial)
		return Wrap(ErrFetch, "datasets", "decompress", d.RemoteFile(), err)
	}
	if err := out.Close(); err != nil {
		os.Remove(partial)
		return Wrap(ErrStorage, "datasets", "fetch", "close "+partial, err)
	}
	if err := os.Rename(partial, local); err != nil {
		os.Remove(partial)
		return Wrap(ErrStorage, "datasets", "fetch", "replace "+local, err)
	}

	p.recordFetch(ctx, d, url, resp.ContentLength, written)

	p.logger.Info("dataset ready",
		logging.String(logging.FieldDataset, string(d)),
		logging.Int64("bytes", written),
	)
	return nil
}

func (p *Provider) recordFetch(ctx context.Context, d Dataset, url string, compressed, decompressed int64) {
	if p.manifest == nil {
		return
	}
	entry := Entry{
		Dataset:           d,
		SourceURL:         url,
		FetchedAt:         time.Now().UTC(),
		CompressedBytes:   max(compressed, 0),
		DecompressedBytes: decompressed,
	}
	if err := p.manifest.Record(ctx, entry); err != nil {
		p.logger.Warn("manifest update failed",
			logging.String(logging.FieldDataset, string(d)),
			logging.Error(err),
			logging.String(logging.FieldEventType, "manifest_record_failed"),
			logging.String(logging.FieldErrorHint, "status output may be stale; the dataset itself is intact"),
		)
	}
}

// Status describes one dataset's cache state for the status command.
type Status struct {
	Dataset           Dataset
	Path              string
	Present           bool
	SizeBytes         int64
	FetchedAt         time.Time
	SourceURL         string
	DecompressedBytes int64
}

// Statuses reports the cache state of every dataset, merging manifest
// metadata when available.
func (p *Provider) Statuses(ctx context.Context) []Status {
	statuses := make([]Status, 0, len(All()))
	for _, d := range All() {
		st := Status{Dataset: d, Path: filepath.Join(p.dataDir, d.LocalFile())}
		if info, err := os.Stat(st.Path); err == nil && info.Mode().IsRegular() {
			st.Present = true
			st.SizeBytes = info.Size()
		}
		if p.manifest != nil {
			if entry, ok, err := p.manifest.Lookup(ctx, d); err == nil && ok {
				st.FetchedAt = entry.FetchedAt
				st.SourceURL = entry.SourceURL
				st.DecompressedBytes = entry.DecompressedBytes
			}
		}
		statuses = append(statuses, st)
	}
	return statuses
}

// Clear removes cached dataset files and their manifest rows.
func (p *Provider) Clear(ctx context.Context) error {
	for _, d := range All() {
		local := filepath.Join(p.dataDir, d.LocalFile())
		if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
			return Wrap(ErrStorage, "datasets", "clear", "remove "+local, err)
		}
		if p.manifest != nil {
			if err := p.manifest.Delete(ctx, d); err != nil {
				return err
			}
		}
	}
	return nil
}
