// backend-go/internal/service/import_policy.go
package service

import (
	"fmt"
	"strings"

	"github.com/andresuchdata/cafe-ops/backend-go/internal/domain"
)

// ImportPolicy decides how a bulk-upload batch handles invalid rows. Every
// batch applies exactly one policy; a partially-applied, uncommunicated
// state is never produced.
type ImportPolicy string

const (
	// PolicySkipInvalid drops invalid rows and reports their count.
	PolicySkipInvalid ImportPolicy = "skip_invalid"
	// PolicyRejectBatch fails the whole batch on the first invalid row,
	// applying nothing.
	PolicyRejectBatch ImportPolicy = "reject_batch"
)

// ParseImportPolicy returns the policy for a label, defaulting to
// skip-invalid for an empty label.
func ParseImportPolicy(label string) (ImportPolicy, bool) {
	switch ImportPolicy(strings.ToLower(strings.TrimSpace(label))) {
	case "", PolicySkipInvalid:
		return PolicySkipInvalid, true
	case PolicyRejectBatch:
		return PolicyRejectBatch, true
	default:
		return "", false
	}
}

func rejectBatch(errs []*domain.ValidationError) error {
	return fmt.Errorf("batch rejected: %d invalid row(s), first: %w", len(errs), errs[0])
}

func importReport(imported int, errs []*domain.ValidationError) *domain.ImportReport {
	report := &domain.ImportReport{
		Imported: imported,
		Skipped:  len(errs),
	}
	for _, verr := range errs {
		report.Errors = append(report.Errors, verr.Error())
	}

	return report
}
