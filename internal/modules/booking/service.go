package booking

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"karting/internal/domain"

	"gorm.io/gorm"
)

var rutPattern = regexp.MustCompile(`^\d{1,8}-[0-9kK]$`)

type Service struct {
	bookings  BookingRepository
	rates     RateSource
	discounts DiscountSource
	registry  ClientRegistry
	rack      ScheduleSink
}

func NewService(
	bookings BookingRepository,
	rates RateSource,
	discounts DiscountSource,
	registry ClientRegistry,
	rack ScheduleSink,
) *Service {
	return &Service{
		bookings:  bookings,
		rates:     rates,
		discounts: discounts,
		registry:  registry,
		rack:      rack,
	}
}

// SaveBooking validates a draft, prices every attendee and persists the
// booking as "unconfirmed".
func (s *Service) SaveBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	b, err := draftFromRequest(req)
	if err != nil {
		return nil, err
	}

	basePrice, err := s.rates.BasePrice(ctx, b.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: base price: %v", ErrPricingUnavailable, err)
	}
	duration, err := s.rates.Duration(ctx, b.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: duration: %v", ErrPricingUnavailable, err)
	}

	b.BasePrice = basePrice
	start, _ := time.Parse("15:04", b.StartTime) // validated in draftFromRequest
	b.EndTime = start.Add(time.Duration(duration) * time.Minute).Format("15:04")

	if err := s.priceAttendees(ctx, b); err != nil {
		return nil, err
	}
	computeTotals(b)

	b.Status = domain.BookingUnconfirmed
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return b, nil
}

func draftFromRequest(req CreateBookingRequest) (*domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return nil, fmt.Errorf("%w: start time must be HH:MM", ErrValidation)
	}
	if req.Tier != 10 && req.Tier != 15 && req.Tier != 20 {
		return nil, fmt.Errorf("%w: tier must be 10, 15 or 20", ErrValidation)
	}
	if req.NumOfPeople < 1 || req.NumOfPeople > 15 {
		return nil, fmt.Errorf("%w: number of people must be between 1 and 15", ErrValidation)
	}
	if len(req.Attendees) != req.NumOfPeople {
		return nil, fmt.Errorf("%w: attendee list must have exactly %d entries", ErrValidation, req.NumOfPeople)
	}
	for _, a := range req.Attendees {
		if !rutPattern.MatchString(a.RUT) {
			return nil, fmt.Errorf("%w: rut %q must look like 12345678-9", ErrValidation, a.RUT)
		}
	}

	taxPct := domain.DefaultTaxPct
	if req.TaxPct != nil {
		taxPct = *req.TaxPct
	}

	attendees := make([]domain.Attendee, 0, len(req.Attendees))
	for i, a := range req.Attendees {
		attendees = append(attendees, domain.Attendee{
			RUT:      a.RUT,
			Name:     a.Name,
			Email:    a.Email,
			Position: i,
		})
	}

	return &domain.Booking{
		Date:        req.Date,
		StartTime:   req.StartTime,
		Tier:        req.Tier,
		NumOfPeople: req.NumOfPeople,
		TaxPct:      taxPct,
		Attendees:   attendees,
	}, nil
}

// ConfirmBooking moves an unconfirmed booking to "confirmed" and projects it
// onto the weekly rack. Terminal bookings are rejected so the rack push is
// never re-triggered.
func (s *Service) ConfirmBooking(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status.Final() {
		return ErrAlreadyFinal
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingConfirmed); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	lead := ""
	if a := b.LeadAttendee(); a != nil {
		lead = a.Name
	}
	entry := domain.RackEntry{
		BookingID:  b.ID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		Status:     string(domain.BookingConfirmed),
		ClientName: lead,
	}
	if err := s.rack.Upsert(ctx, entry); err != nil {
		// The status change is already persisted; only the projection lags.
		return fmt.Errorf("%w: %v", ErrScheduleSync, err)
	}
	return nil
}

// CancelBooking moves an unconfirmed booking to "cancelled" and removes its
// rack projection. The booking record itself is retained.
func (s *Service) CancelBooking(ctx context.Context, id int64) error {
	b, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Status.Final() {
		return ErrAlreadyFinal
	}

	if err := s.bookings.UpdateStatus(ctx, id, domain.BookingCancelled); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := s.rack.DeleteByBookingID(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrScheduleSync, err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// FindByStatusMonthTier is the report feed filtered by tier; month is
// "01".."12".
func (s *Service) FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error) {
	return s.bookings.FindByStatusMonthTier(ctx, status, month, tier)
}

// FindByStatusMonthBand is the report feed filtered by the attendee-count
// band containing people (1-2, 3-5, 6-10, 11-15).
func (s *Service) FindByStatusMonthBand(ctx context.Context, status domain.BookingStatus, month string, people int) ([]domain.Booking, error) {
	lo, hi, err := bandRange(people)
	if err != nil {
		return nil, err
	}
	return s.bookings.FindByStatusMonthPeople(ctx, status, month, lo, hi)
}

func bandRange(people int) (int, int, error) {
	switch {
	case people == 1 || people == 2:
		return 1, 2, nil
	case people >= 3 && people <= 5:
		return 3, 5, nil
	case people >= 6 && people <= 10:
		return 6, 10, nil
	case people >= 11 && people <= 15:
		return 11, 15, nil
	default:
		return 0, 0, fmt.Errorf("%w: number of people must be between 1 and 15", ErrValidation)
	}
}

// GetConfirmed lists confirmed bookings.
func (s *Service) GetConfirmed(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.FindByStatus(ctx, domain.BookingConfirmed)
}

func (s *Service) FindByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}
	return s.bookings.FindByDate(ctx, date)
}

// FindByLeadAttendee lists bookings whose first attendee carries the RUT.
func (s *Service) FindByLeadAttendee(ctx context.Context, rut string) ([]domain.Booking, error) {
	return s.bookings.FindByLeadAttendee(ctx, rut)
}

// OccupiedTimes returns the start and end times of every booking on a date,
// used by the scheduling frontend to grey out taken slots.
func (s *Service) OccupiedTimes(ctx context.Context, date string) ([]string, []string, error) {
	list, err := s.FindByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	starts := make([]string, 0, len(list))
	ends := make([]string, 0, len(list))
	for _, b := range list {
		starts = append(starts, b.StartTime)
		ends = append(ends, b.EndTime)
	}
	return starts, ends, nil
}
