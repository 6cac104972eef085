package reports

import (
	"context"
	"fmt"

	"karting/internal/domain"
)

var months = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// Row is one report line: a category label, the income of each calendar
// month and the yearly total.
type Row struct {
	Label  string  `json:"label"`
	Months [12]int `json:"months"`
	Total  int     `json:"total"`
}

// Report is the income table plus a grand-total row summing every column.
type Report struct {
	Rows   []Row `json:"rows"`
	Totals Row   `json:"totals"`
}

// Service aggregates monthly income over confirmed bookings. A booking
// contributes base price times attendee count; discounts and tax stay out of
// the report on purpose.
type Service struct {
	bookings BookingFinder
}

func NewService(bookings BookingFinder) *Service {
	return &Service{bookings: bookings}
}

// IncomesByTier groups income by session tier (10, 15, 20 laps).
func (s *Service) IncomesByTier(ctx context.Context) (*Report, error) {
	rows := make([]Row, 0, 3)
	for _, tier := range []int{10, 15, 20} {
		row := Row{Label: fmt.Sprintf("%d laps", tier)}
		for i, month := range months {
			list, err := s.bookings.FindByStatusMonthTier(ctx, domain.BookingConfirmed, month, tier)
			if err != nil {
				return nil, err
			}
			row.Months[i] = income(list)
		}
		row.Total = sum(row.Months)
		rows = append(rows, row)
	}
	return assemble(rows), nil
}

// IncomesByBand groups income by attendee-count band.
func (s *Service) IncomesByBand(ctx context.Context) (*Report, error) {
	bands := []struct {
		label  string
		people int
	}{
		{"1-2 people", 1},
		{"3-5 people", 3},
		{"6-10 people", 6},
		{"11-15 people", 11},
	}

	rows := make([]Row, 0, len(bands))
	for _, band := range bands {
		row := Row{Label: band.label}
		for i, month := range months {
			list, err := s.bookings.FindByStatusMonthBand(ctx, domain.BookingConfirmed, month, band.people)
			if err != nil {
				return nil, err
			}
			row.Months[i] = income(list)
		}
		row.Total = sum(row.Months)
		rows = append(rows, row)
	}
	return assemble(rows), nil
}

func income(list []domain.Booking) int {
	total := 0
	for _, b := range list {
		total += b.BasePrice * b.NumOfPeople
	}
	return total
}

func sum(months [12]int) int {
	total := 0
	for _, v := range months {
		total += v
	}
	return total
}

func assemble(rows []Row) *Report {
	totals := Row{Label: "TOTAL"}
	for _, row := range rows {
		for i, v := range row.Months {
			totals.Months[i] += v
		}
		totals.Total += row.Total
	}
	return &Report{Rows: rows, Totals: totals}
}
