// Package datasets manages the local cache of IMDB non-commercial dataset
// files.
//
// The Provider downloads each gzipped TSV on first use, decompresses it into
// the configured data directory, and reuses the decompressed copy on every
// later run without touching the network. A SQLite manifest records fetch
// metadata for the status command; the decompressed files themselves remain
// the source of truth, so a missing or corrupt manifest never blocks a run.
//
// The package also owns the error taxonomy (fetch, storage, parse, not
// found) that the rest of the pipeline wraps its failures in.
package datasets
