package booking

import (
	"context"

	"karting/internal/domain"
)

// RateSource resolves the base price and session duration for a tier.
// Implemented in-process by the rates module; kept as an interface so a
// remote rate service can be swapped in without touching the engine.
type RateSource interface {
	BasePrice(ctx context.Context, tier int) (int, error)
	Duration(ctx context.Context, tier int) (int, error)
}

// DiscountSource is the three discount calculators. Each returns the
// discounted price; a price equal to the base means the rule did not apply.
type DiscountSource interface {
	ForGroupSize(ctx context.Context, people, basePrice int) (int, error)
	ForMonthlyVisits(ctx context.Context, visits, basePrice int) (int, error)
	ForBirthday(ctx context.Context, birthday, dayMonth string, basePrice int) (int, error)
}

// ClientRegistry is the engine's view of the client registry. Lookup
// returns (nil, nil) for an unregistered walk-in; that is not an error.
type ClientRegistry interface {
	Lookup(ctx context.Context, rut string) (*domain.Client, error)
	RecordVisit(ctx context.Context, rut string) error
}

// BookingRepository persists bookings. GetByID reports absence with
// gorm.ErrRecordNotFound.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error)
	FindByStatusMonthPeople(ctx context.Context, status domain.BookingStatus, month string, lo, hi int) ([]domain.Booking, error)
	FindByDate(ctx context.Context, date string) ([]domain.Booking, error)
	FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error)
	FindByLeadAttendee(ctx context.Context, rut string) ([]domain.Booking, error)
}

// ScheduleSink receives the weekly-rack projection on confirm and cancel.
type ScheduleSink interface {
	Upsert(ctx context.Context, e domain.RackEntry) error
	DeleteByBookingID(ctx context.Context, bookingID int64) error
}
