package datasets

import (
	"errors"
	"fmt"
	"strings"
)

// Failure categories for the whole pipeline. None are recovered internally;
// each aborts the run with a descriptive message and a non-zero exit.
var (
	// ErrFetch marks network failures and non-success upstream responses.
	ErrFetch = errors.New("fetch error")
	// ErrStorage marks an unwritable data directory or corrupt local cache.
	ErrStorage = errors.New("storage error")
	// ErrParse marks a malformed row or header in a dataset file.
	ErrParse = errors.New("parse error")
	// ErrNotFound marks a requested actor name absent from the name dataset.
	ErrNotFound = errors.New("not found")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrStorage
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "pipeline failure"
	}
	return strings.Join(parts, ": ")
}
