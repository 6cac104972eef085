package booking

import (
	"context"
	"fmt"

	"karting/internal/domain"
)

// birthdayQuota is the number of birthday-discount slots a booking carries,
// scaled by group size. Groups of 1-2 and 11-15 never get one.
func birthdayQuota(people int) int {
	switch {
	case people >= 3 && people <= 5:
		return 1
	case people >= 6 && people <= 10:
		return 3
	default:
		return 0
	}
}

// priceAttendees walks the attendee sequence in order, selecting one
// discount category per attendee and carrying the used birthday-slot count
// through the fold. Every registered attendee gets exactly one visit
// recorded, whatever discount branch fired.
func (s *Service) priceAttendees(ctx context.Context, b *domain.Booking) error {
	dayMonth := b.DayMonth()
	birthdayUsed := 0

	for i := range b.Attendees {
		att := &b.Attendees[i]

		client, err := s.registry.Lookup(ctx, att.RUT)
		if err != nil {
			return fmt.Errorf("%w: client lookup: %v", ErrPricingUnavailable, err)
		}

		price, discountType, usedAfter, err := s.selectDiscount(ctx, client, b.NumOfPeople, b.BasePrice, dayMonth, birthdayUsed)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPricingUnavailable, err)
		}
		birthdayUsed = usedAfter

		att.Price = price
		att.DiscountType = discountType
		att.Position = i

		if client != nil {
			if err := s.registry.RecordVisit(ctx, client.RUT); err != nil {
				return fmt.Errorf("%w: record visit: %v", ErrPricingUnavailable, err)
			}
		}
	}
	return nil
}

// selectDiscount picks at most one discount for a single attendee.
// Precedence: birthday (while the booking's quota lasts), then visit
// frequency, then group size for groups of 3-15. A birthday grant is final;
// nothing stacks on top of it.
func (s *Service) selectDiscount(ctx context.Context, client *domain.Client, people, basePrice int, dayMonth string, birthdayUsed int) (int, string, int, error) {
	if client == nil {
		return basePrice, domain.DiscountNone, birthdayUsed, nil
	}

	if birthdayUsed < birthdayQuota(people) {
		price, err := s.discounts.ForBirthday(ctx, client.Birthday, dayMonth, basePrice)
		if err != nil {
			return 0, "", birthdayUsed, err
		}
		if price != basePrice {
			return price, domain.DiscountBirthday, birthdayUsed + 1, nil
		}
	}

	price, err := s.discounts.ForMonthlyVisits(ctx, client.MonthlyVisits, basePrice)
	if err != nil {
		return 0, "", birthdayUsed, err
	}
	if price != basePrice {
		return price, domain.DiscountVisits, birthdayUsed, nil
	}

	if people >= 3 && people <= 15 {
		price, err := s.discounts.ForGroupSize(ctx, people, basePrice)
		if err != nil {
			return 0, "", birthdayUsed, err
		}
		return price, domain.DiscountGroup, birthdayUsed, nil
	}

	return basePrice, domain.DiscountNone, birthdayUsed, nil
}

// applyTax adds the IVA share with the same integer truncation the discount
// calculators use.
func applyTax(price, taxPct int) int {
	return price + (price*taxPct)/100
}

// computeTotals fills the per-attendee price with tax and the booking's
// grand total. Recomputing over the same prices always yields the same sum.
func computeTotals(b *domain.Booking) {
	total := 0
	for i := range b.Attendees {
		b.Attendees[i].PriceWithTax = applyTax(b.Attendees[i].Price, b.TaxPct)
		total += b.Attendees[i].PriceWithTax
	}
	b.TotalAmount = total
}
