package ports

import (
	"context"

	"github.com/bft-labs/coordmod/internal/domain"
)

// Journal persists tool-frame shift records.
type Journal interface {
	// Record stores one correction.
	Record(ctx context.Context, rec domain.CorrectionRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.CorrectionRecord, error)
}
