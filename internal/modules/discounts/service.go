package discounts

import "context"

// Service bundles the three discount calculators: by group size, by monthly
// visit count and by birthday. Each returns the discounted price, not the
// percentage; an unchanged price means the rule did not apply.
//
// All three share the truncating formula base - (base*pct)/100 with integer
// division. The truncation is part of the numeric contract and must not be
// "fixed" with rounding.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// ForGroupSize discounts by attendee count: 3-5 → 10%, 6-10 → 20%,
// 11-15 → 30%, anything else → 0%.
func (s *Service) ForGroupSize(_ context.Context, people, basePrice int) (int, error) {
	var pct int
	switch {
	case people >= 3 && people <= 5:
		pct = 10
	case people >= 6 && people <= 10:
		pct = 20
	case people >= 11 && people <= 15:
		pct = 30
	}
	return applyPct(basePrice, pct), nil
}

// ForMonthlyVisits discounts by the client's visit counter: 2-4 → 10%,
// 5-6 → 20%, 7+ → 30%, fewer than 2 → 0%.
func (s *Service) ForMonthlyVisits(_ context.Context, visits, basePrice int) (int, error) {
	var pct int
	switch {
	case visits >= 2 && visits <= 4:
		pct = 10
	case visits == 5 || visits == 6:
		pct = 20
	case visits >= 7:
		pct = 30
	}
	return applyPct(basePrice, pct), nil
}

// ForBirthday grants 50% when the client's birthday ("DD-MM-YYYY", possibly
// empty) starts with the booking day-month ("DD-MM").
func (s *Service) ForBirthday(_ context.Context, birthday, dayMonth string, basePrice int) (int, error) {
	var pct int
	if len(birthday) >= 5 && birthday[:5] == dayMonth {
		pct = 50
	}
	return applyPct(basePrice, pct), nil
}

func applyPct(basePrice, pct int) int {
	return basePrice - (basePrice*pct)/100
}
