package booking

import (
	"context"
	"errors"
	"testing"

	"karting/internal/domain"
	"karting/internal/modules/discounts"
	"karting/internal/modules/rates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mocks

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error) {
	args := m.Called(ctx, status, month, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStatusMonthPeople(ctx context.Context, status domain.BookingStatus, month string, lo, hi int) ([]domain.Booking, error) {
	args := m.Called(ctx, status, month, lo, hi)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByLeadAttendee(ctx context.Context, rut string) ([]domain.Booking, error) {
	args := m.Called(ctx, rut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockClientRegistry struct {
	mock.Mock
}

func (m *MockClientRegistry) Lookup(ctx context.Context, rut string) (*domain.Client, error) {
	args := m.Called(ctx, rut)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRegistry) RecordVisit(ctx context.Context, rut string) error {
	args := m.Called(ctx, rut)
	return args.Error(0)
}

type MockScheduleSink struct {
	mock.Mock
}

func (m *MockScheduleSink) Upsert(ctx context.Context, e domain.RackEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockScheduleSink) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type failingRates struct{}

func (failingRates) BasePrice(context.Context, int) (int, error) {
	return 0, errors.New("rate service down")
}

func (failingRates) Duration(context.Context, int) (int, error) {
	return 0, errors.New("rate service down")
}

func newTestService(repo *MockBookingRepository, registry *MockClientRegistry, sink *MockScheduleSink) *Service {
	return NewService(repo, rates.NewService(), discounts.NewService(), registry, sink)
}

func attendeeReqs(ruts ...string) []AttendeeRequest {
	out := make([]AttendeeRequest, 0, len(ruts))
	for i, rut := range ruts {
		out = append(out, AttendeeRequest{RUT: rut, Name: "Attendee " + string(rune('A'+i))})
	}
	return out
}

// Tests

func TestSaveBooking_AllocatesDiscountsInOrder(t *testing.T) {
	repo := new(MockBookingRepository)
	registry := new(MockClientRegistry)
	sink := new(MockScheduleSink)

	// Band 3-5: one birthday slot. Booking date 2026-05-12, tier 10 -> 15000.
	registry.On("Lookup", mock.Anything, "11111111-1").
		Return(&domain.Client{RUT: "11111111-1", Birthday: "12-05-1990"}, nil)
	registry.On("Lookup", mock.Anything, "22222222-2").
		Return(&domain.Client{RUT: "22222222-2", Birthday: "01-01-1985", MonthlyVisits: 3}, nil)
	registry.On("Lookup", mock.Anything, "33333333-3").
		Return(&domain.Client{RUT: "33333333-3", Birthday: "01-01-1985"}, nil)
	registry.On("Lookup", mock.Anything, "44444444-4").Return(nil, nil)
	registry.On("RecordVisit", mock.Anything, mock.Anything).Return(nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(repo, registry, sink)

	b, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "14:30",
		Tier:        10,
		NumOfPeople: 4,
		Attendees:   attendeeReqs("11111111-1", "22222222-2", "33333333-3", "44444444-4"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingUnconfirmed, b.Status)
	assert.Equal(t, 15000, b.BasePrice)
	assert.Equal(t, "15:00", b.EndTime, "tier 10 lasts 30 minutes")
	assert.Equal(t, 19, b.TaxPct)

	// First attendee: birthday matches the booking date -> 50% off.
	assert.Equal(t, domain.DiscountBirthday, b.Attendees[0].DiscountType)
	assert.Equal(t, 7500, b.Attendees[0].Price)
	// Second: 3 monthly visits -> 10% off.
	assert.Equal(t, domain.DiscountVisits, b.Attendees[1].DiscountType)
	assert.Equal(t, 13500, b.Attendees[1].Price)
	// Third: no birthday slot left to claim, no visits -> group discount.
	assert.Equal(t, domain.DiscountGroup, b.Attendees[2].DiscountType)
	assert.Equal(t, 13500, b.Attendees[2].Price)
	// Fourth: unregistered walk-in.
	assert.Equal(t, domain.DiscountNone, b.Attendees[3].DiscountType)
	assert.Equal(t, 15000, b.Attendees[3].Price)

	// Tax and grand total, integer truncation throughout.
	assert.Equal(t, 8925, b.Attendees[0].PriceWithTax)
	assert.Equal(t, 16065, b.Attendees[1].PriceWithTax)
	assert.Equal(t, 58905, b.TotalAmount)

	// Registered attendees got exactly one visit each; the walk-in none.
	registry.AssertNumberOfCalls(t, "RecordVisit", 3)
	registry.AssertNotCalled(t, "RecordVisit", mock.Anything, "44444444-4")
	repo.AssertExpectations(t)
}

func TestSaveBooking_SingleBirthdaySlotInSmallBand(t *testing.T) {
	repo := new(MockBookingRepository)
	registry := new(MockClientRegistry)
	sink := new(MockScheduleSink)

	// Two attendees share the booking-day birthday; band 3-5 carries one slot.
	for _, rut := range []string{"11111111-1", "22222222-2", "33333333-3"} {
		registry.On("Lookup", mock.Anything, rut).
			Return(&domain.Client{RUT: rut, Birthday: "12-05-1990"}, nil)
	}
	registry.On("RecordVisit", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(repo, registry, sink)

	b, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "10:00",
		Tier:        15,
		NumOfPeople: 3,
		Attendees:   attendeeReqs("11111111-1", "22222222-2", "33333333-3"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DiscountBirthday, b.Attendees[0].DiscountType)
	assert.Equal(t, domain.DiscountGroup, b.Attendees[1].DiscountType)
	assert.Equal(t, domain.DiscountGroup, b.Attendees[2].DiscountType)
}

func TestSaveBooking_ThreeBirthdaySlotsInLargeBand(t *testing.T) {
	repo := new(MockBookingRepository)
	registry := new(MockClientRegistry)
	sink := new(MockScheduleSink)

	ruts := []string{
		"10000000-1", "20000000-2", "30000000-3", "40000000-4",
		"50000000-5", "60000000-6", "70000000-7", "80000000-8",
	}
	// First four all match the booking-day birthday; only three slots exist.
	for i, rut := range ruts {
		birthday := "01-01-1990"
		if i < 4 {
			birthday = "12-05-1990"
		}
		registry.On("Lookup", mock.Anything, rut).
			Return(&domain.Client{RUT: rut, Birthday: birthday}, nil)
	}
	registry.On("RecordVisit", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(repo, registry, sink)

	b, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "10:00",
		Tier:        20,
		NumOfPeople: 8,
		Attendees:   attendeeReqs(ruts...),
	})

	assert.NoError(t, err)
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.DiscountBirthday, b.Attendees[i].DiscountType, "attendee %d", i)
		assert.Equal(t, 12500, b.Attendees[i].Price)
	}
	// Fourth birthday match arrives after the quota is spent.
	assert.Equal(t, domain.DiscountGroup, b.Attendees[3].DiscountType)
	assert.Equal(t, 20000, b.Attendees[3].Price, "band 6-10 group discount is 20%")
}

func TestSaveBooking_NoBirthdaySlotForPairs(t *testing.T) {
	repo := new(MockBookingRepository)
	registry := new(MockClientRegistry)
	sink := new(MockScheduleSink)

	// Group of 2: birthday never offered even on an exact match, and the
	// group rule does not apply below 3 people either.
	registry.On("Lookup", mock.Anything, "11111111-1").
		Return(&domain.Client{RUT: "11111111-1", Birthday: "12-05-1990"}, nil)
	registry.On("Lookup", mock.Anything, "22222222-2").
		Return(&domain.Client{RUT: "22222222-2", Birthday: "12-05-1991"}, nil)
	registry.On("RecordVisit", mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newTestService(repo, registry, sink)

	b, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "10:00",
		Tier:        10,
		NumOfPeople: 2,
		Attendees:   attendeeReqs("11111111-1", "22222222-2"),
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.DiscountNone, b.Attendees[0].DiscountType)
	assert.Equal(t, 15000, b.Attendees[0].Price)
	assert.Equal(t, domain.DiscountNone, b.Attendees[1].DiscountType)
}

func TestSaveBooking_ValidationErrors(t *testing.T) {
	service := newTestService(new(MockBookingRepository), new(MockClientRegistry), new(MockScheduleSink))
	ctx := context.Background()

	base := CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "14:30",
		Tier:        10,
		NumOfPeople: 2,
		Attendees:   attendeeReqs("11111111-1", "22222222-2"),
	}

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
	}{
		{"bad date", func(r *CreateBookingRequest) { r.Date = "12/05/2026" }},
		{"bad time", func(r *CreateBookingRequest) { r.StartTime = "2pm" }},
		{"unknown tier", func(r *CreateBookingRequest) { r.Tier = 12 }},
		{"zero people", func(r *CreateBookingRequest) { r.NumOfPeople = 0; r.Attendees = nil }},
		{"too many people", func(r *CreateBookingRequest) { r.NumOfPeople = 16 }},
		{"attendee count mismatch", func(r *CreateBookingRequest) { r.NumOfPeople = 3 }},
		{"malformed rut", func(r *CreateBookingRequest) { r.Attendees[0].RUT = "123456789" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Attendees = attendeeReqs("11111111-1", "22222222-2")
			tt.mutate(&req)
			_, err := service.SaveBooking(ctx, req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestSaveBooking_PricingUnavailableFailsClosed(t *testing.T) {
	repo := new(MockBookingRepository)
	service := NewService(repo, failingRates{}, discounts.NewService(), new(MockClientRegistry), new(MockScheduleSink))

	_, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "14:30",
		Tier:        10,
		NumOfPeople: 1,
		Attendees:   attendeeReqs("11111111-1"),
	})

	assert.ErrorIs(t, err, ErrPricingUnavailable)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaveBooking_PersistenceFailureIsDistinct(t *testing.T) {
	repo := new(MockBookingRepository)
	registry := new(MockClientRegistry)
	registry.On("Lookup", mock.Anything, mock.Anything).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	service := newTestService(repo, registry, new(MockScheduleSink))

	_, err := service.SaveBooking(context.Background(), CreateBookingRequest{
		Date:        "2026-05-12",
		StartTime:   "14:30",
		Tier:        10,
		NumOfPeople: 1,
		Attendees:   attendeeReqs("11111111-1"),
	})

	assert.ErrorIs(t, err, ErrPersistence)
	assert.NotErrorIs(t, err, ErrPricingUnavailable)
}

func TestConfirmBooking_ProjectsOntoRack(t *testing.T) {
	repo := new(MockBookingRepository)
	sink := new(MockScheduleSink)

	stored := &domain.Booking{
		ID:        5,
		Date:      "2026-05-12",
		StartTime: "14:30",
		EndTime:   "15:00",
		Status:    domain.BookingUnconfirmed,
		Attendees: []domain.Attendee{{RUT: "11111111-1", Name: "María Pérez"}},
	}
	repo.On("GetByID", mock.Anything, int64(5)).Return(stored, nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.BookingConfirmed).Return(nil)
	sink.On("Upsert", mock.Anything, domain.RackEntry{
		BookingID:  5,
		Date:       "2026-05-12",
		StartTime:  "14:30",
		EndTime:    "15:00",
		Status:     "confirmed",
		ClientName: "María Pérez",
	}).Return(nil)

	service := newTestService(repo, new(MockClientRegistry), sink)

	err := service.ConfirmBooking(context.Background(), 5)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
	sink.AssertExpectations(t)
}

func TestConfirmBooking_TerminalStatusRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	sink := new(MockScheduleSink)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Booking{ID: 5, Status: domain.BookingConfirmed}, nil)

	service := newTestService(repo, new(MockClientRegistry), sink)

	err := service.ConfirmBooking(context.Background(), 5)
	assert.ErrorIs(t, err, ErrAlreadyFinal)
	// The rack side effect must not run a second time.
	sink.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	service := newTestService(repo, new(MockClientRegistry), new(MockScheduleSink))

	err := service.ConfirmBooking(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmBooking_RackFailureIsDistinct(t *testing.T) {
	repo := new(MockBookingRepository)
	sink := new(MockScheduleSink)
	repo.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Booking{ID: 5, Status: domain.BookingUnconfirmed}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.BookingConfirmed).Return(nil)
	sink.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("rack down"))

	service := newTestService(repo, new(MockClientRegistry), sink)

	err := service.ConfirmBooking(context.Background(), 5)
	assert.ErrorIs(t, err, ErrScheduleSync)
	assert.NotErrorIs(t, err, ErrPersistence)
}

func TestCancelBooking_RemovesRackEntry(t *testing.T) {
	repo := new(MockBookingRepository)
	sink := new(MockScheduleSink)
	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Booking{ID: 9, Status: domain.BookingUnconfirmed}, nil)
	repo.On("UpdateStatus", mock.Anything, int64(9), domain.BookingCancelled).Return(nil)
	sink.On("DeleteByBookingID", mock.Anything, int64(9)).Return(nil)

	service := newTestService(repo, new(MockClientRegistry), sink)

	err := service.CancelBooking(context.Background(), 9)
	assert.NoError(t, err)
	sink.AssertExpectations(t)
}

func TestCancelBooking_TerminalStatusRejected(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Booking{ID: 9, Status: domain.BookingCancelled}, nil)

	service := newTestService(repo, new(MockClientRegistry), new(MockScheduleSink))

	err := service.CancelBooking(context.Background(), 9)
	assert.ErrorIs(t, err, ErrAlreadyFinal)
}

func TestFindByStatusMonthBand_ResolvesBands(t *testing.T) {
	repo := new(MockBookingRepository)
	repo.On("FindByStatusMonthPeople", mock.Anything, domain.BookingConfirmed, "05", 6, 10).
		Return([]domain.Booking{}, nil)

	service := newTestService(repo, new(MockClientRegistry), new(MockScheduleSink))

	_, err := service.FindByStatusMonthBand(context.Background(), domain.BookingConfirmed, "05", 7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)

	_, err = service.FindByStatusMonthBand(context.Background(), domain.BookingConfirmed, "05", 99)
	assert.ErrorIs(t, err, ErrValidation)
}
