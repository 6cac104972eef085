package rack

import (
	"context"

	"karting/internal/domain"
)

// EntryStore is the projection's persistence surface, backed by the rack
// table.
type EntryStore interface {
	Upsert(ctx context.Context, e domain.RackEntry) error
	DeleteByBookingID(ctx context.Context, bookingID int64) error
	FindByStatusMonthYear(ctx context.Context, status, month, year string) ([]domain.RackEntry, error)
}
