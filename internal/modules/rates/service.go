package rates

import "context"

// Service is the session rate table. Three tiers, keyed by laps or maximum
// minutes on track; anything else prices at zero by policy (the booking
// intake rejects unknown tiers before ever asking here).
//
// The ctx/error signature keeps the contract identical to a remote rate
// collaborator so the booking engine can swap implementations.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) BasePrice(_ context.Context, tier int) (int, error) {
	switch tier {
	case 10:
		return 15000, nil
	case 15:
		return 20000, nil
	case 20:
		return 25000, nil
	default:
		return 0, nil
	}
}

// Duration returns the session length in minutes for a tier.
func (s *Service) Duration(_ context.Context, tier int) (int, error) {
	switch tier {
	case 10:
		return 30, nil
	case 15:
		return 35, nil
	case 20:
		return 40, nil
	default:
		return 0, nil
	}
}
