package workflows

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/audit"
	"github.com/kyrias/mine/internal/repository"
)

// CheckOptions configures the fsck workflow.
type CheckOptions struct {
	Common
}

// CheckResult contains the outcome of a consistency check.
type CheckResult struct {
	Report *repository.Report
}

// Check compares the index with the repository directory. It never repairs.
func Check(ctx context.Context, opts CheckOptions) (*CheckResult, error) {
	s, err := openStore(ctx, opts.Common)
	if err != nil {
		return nil, err
	}

	report, err := s.repo.Check()
	if err != nil {
		return nil, fmt.Errorf("checking repository: %w", err)
	}
	s.log.Infof("Checked %d entries: %d orphans, %d dangling", report.Checked, len(report.Orphans), len(report.Dangling))

	ae := audit.NewEntry(audit.OpCheck, s.storeUUID)
	ae.Orphans = len(report.Orphans)
	ae.Dangling = len(report.Dangling)
	s.record(ae)

	return &CheckResult{Report: report}, nil
}
