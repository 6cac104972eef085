package reports

import (
	"context"
	"testing"

	"karting/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingFinder struct {
	mock.Mock
}

func (m *MockBookingFinder) FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error) {
	args := m.Called(ctx, status, month, tier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingFinder) FindByStatusMonthBand(ctx context.Context, status domain.BookingStatus, month string, people int) ([]domain.Booking, error) {
	args := m.Called(ctx, status, month, people)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func TestIncomesByTier(t *testing.T) {
	finder := new(MockBookingFinder)

	// May, tier 10: two bookings. Income counts base price per head.
	finder.On("FindByStatusMonthTier", mock.Anything, domain.BookingConfirmed, "05", 10).
		Return([]domain.Booking{
			{BasePrice: 15000, NumOfPeople: 4},
			{BasePrice: 15000, NumOfPeople: 2},
		}, nil)
	// July, tier 20: one booking.
	finder.On("FindByStatusMonthTier", mock.Anything, domain.BookingConfirmed, "07", 20).
		Return([]domain.Booking{{BasePrice: 25000, NumOfPeople: 10}}, nil)
	// Everything else is empty.
	finder.On("FindByStatusMonthTier", mock.Anything, domain.BookingConfirmed, mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	report, err := NewService(finder).IncomesByTier(context.Background())
	assert.NoError(t, err)
	assert.Len(t, report.Rows, 3)

	assert.Equal(t, "10 laps", report.Rows[0].Label)
	assert.Equal(t, 90000, report.Rows[0].Months[4], "May is index 4")
	assert.Equal(t, 90000, report.Rows[0].Total)

	assert.Equal(t, "15 laps", report.Rows[1].Label)
	assert.Equal(t, 0, report.Rows[1].Total)

	assert.Equal(t, "20 laps", report.Rows[2].Label)
	assert.Equal(t, 250000, report.Rows[2].Months[6])
	assert.Equal(t, 250000, report.Rows[2].Total)

	assert.Equal(t, "TOTAL", report.Totals.Label)
	assert.Equal(t, 90000, report.Totals.Months[4])
	assert.Equal(t, 250000, report.Totals.Months[6])
	assert.Equal(t, 340000, report.Totals.Total)
}

func TestIncomesByBand(t *testing.T) {
	finder := new(MockBookingFinder)

	finder.On("FindByStatusMonthBand", mock.Anything, domain.BookingConfirmed, "01", 3).
		Return([]domain.Booking{{BasePrice: 20000, NumOfPeople: 5}}, nil)
	finder.On("FindByStatusMonthBand", mock.Anything, domain.BookingConfirmed, mock.Anything, mock.Anything).
		Return([]domain.Booking{}, nil)

	report, err := NewService(finder).IncomesByBand(context.Background())
	assert.NoError(t, err)
	assert.Len(t, report.Rows, 4)

	assert.Equal(t, "3-5 people", report.Rows[1].Label)
	assert.Equal(t, 100000, report.Rows[1].Months[0])
	assert.Equal(t, 100000, report.Totals.Total)
}

func TestIncomesByTier_PropagatesFinderErrors(t *testing.T) {
	finder := new(MockBookingFinder)
	finder.On("FindByStatusMonthTier", mock.Anything, domain.BookingConfirmed, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	_, err := NewService(finder).IncomesByTier(context.Background())
	assert.Error(t, err)
}
