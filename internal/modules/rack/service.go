package rack

import (
	"context"
	"fmt"
	"regexp"

	"karting/internal/domain"
)

var (
	monthPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	yearPattern  = regexp.MustCompile(`^\d{4}$`)
)

// Service maintains the weekly-schedule projection. The booking engine
// pushes entries through Upsert and DeleteByBookingID; the frontend reads
// them back month by month.
type Service struct {
	entries EntryStore
}

func NewService(entries EntryStore) *Service {
	return &Service{entries: entries}
}

func (s *Service) Upsert(ctx context.Context, e domain.RackEntry) error {
	return s.entries.Upsert(ctx, e)
}

func (s *Service) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	return s.entries.DeleteByBookingID(ctx, bookingID)
}

// EntriesForMonth lists the confirmed entries of one calendar month, ordered
// by date and start time.
func (s *Service) EntriesForMonth(ctx context.Context, year, month string) ([]domain.RackEntry, error) {
	if !yearPattern.MatchString(year) {
		return nil, fmt.Errorf("%w: year must be four digits", ErrValidation)
	}
	if !monthPattern.MatchString(month) {
		return nil, fmt.Errorf("%w: month must be 01..12", ErrValidation)
	}
	return s.entries.FindByStatusMonthYear(ctx, string(domain.BookingConfirmed), month, year)
}
