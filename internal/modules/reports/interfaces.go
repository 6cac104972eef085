package reports

import (
	"context"

	"karting/internal/domain"
)

// BookingFinder is the report feed, satisfied by the booking service.
type BookingFinder interface {
	FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error)
	FindByStatusMonthBand(ctx context.Context, status domain.BookingStatus, month string, people int) ([]domain.Booking, error)
}
