package clients

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"karting/internal/domain"
	"karting/internal/repository"

	"gorm.io/gorm"
)

var (
	rutPattern   = regexp.MustCompile(`^\d{1,8}-[0-9kK]$`)
	namePattern  = regexp.MustCompile(`^[a-zA-ZáéíóúüÁÉÍÓÚÜñÑ ]+$`)
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w-]+\.[a-zA-Z]{2,}$`)
)

type Service struct {
	clients ClientRepository
}

func NewService(clients ClientRepository) *Service {
	return &Service{clients: clients}
}

// Register validates and stores a new client. The birthday arrives as
// YYYY-MM-DD and is stored compacted to DD-MM-YYYY, the form the birthday
// discount matches its first five characters against.
func (s *Service) Register(ctx context.Context, req RegisterClientRequest) (*domain.Client, error) {
	rut := NormalizeRUT(req.RUT)
	if !rutPattern.MatchString(rut) {
		return nil, fmt.Errorf("%w: rut must look like 12345678-9", ErrValidation)
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: name must have at least 3 characters", ErrValidation)
	}
	if !namePattern.MatchString(name) {
		return nil, fmt.Errorf("%w: name must contain letters only", ErrValidation)
	}

	if !emailPattern.MatchString(req.Email) {
		return nil, fmt.Errorf("%w: email format is invalid", ErrValidation)
	}

	birthday, err := validateBirthday(req.Birthday)
	if err != nil {
		return nil, err
	}

	if _, err := s.clients.GetByRUT(ctx, rut); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client := &domain.Client{
		RUT:           rut,
		Name:          name,
		Email:         req.Email,
		Birthday:      birthday,
		MonthlyVisits: 0,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return client, nil
}

// GetByRUT resolves a client, retrying with the normalized RUT before giving
// up so lowercase check digits still resolve.
func (s *Service) GetByRUT(ctx context.Context, rut string) (*domain.Client, error) {
	c, err := s.clients.GetByRUT(ctx, rut)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	normalized := NormalizeRUT(rut)
	if normalized == "" || normalized == rut {
		return nil, ErrNotRegistered
	}
	c, err = s.clients.GetByRUT(ctx, normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Lookup is the booking engine's view of the registry: absence is not an
// error, it means an unregistered walk-in priced at the base rate.
func (s *Service) Lookup(ctx context.Context, rut string) (*domain.Client, error) {
	c, err := s.GetByRUT(ctx, rut)
	if errors.Is(err, ErrNotRegistered) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// RecordVisit bumps the client's visit counter by exactly one.
func (s *Service) RecordVisit(ctx context.Context, rut string) error {
	err := s.clients.IncrementVisits(ctx, rut)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotRegistered
	}
	return err
}

func (s *Service) List(ctx context.Context) ([]domain.Client, error) {
	return s.clients.List(ctx)
}

// NormalizeRUT uppercases the check digit; malformed input yields "".
func NormalizeRUT(rut string) string {
	parts := strings.Split(rut, "-")
	if len(parts) != 2 {
		return ""
	}
	return parts[0] + "-" + strings.ToUpper(parts[1])
}

func validateBirthday(birthday string) (string, error) {
	day, err := time.Parse("2006-01-02", birthday)
	if err != nil {
		return "", fmt.Errorf("%w: birthday must be YYYY-MM-DD", ErrValidation)
	}

	now := time.Now()
	oldest := now.AddDate(-100, 0, 0)
	youngest := now.AddDate(-10, 0, 0)
	if day.Before(oldest) || day.After(youngest) {
		return "", fmt.Errorf("%w: client age must be between 10 and 100 years", ErrValidation)
	}

	return day.Format("02-01-2006"), nil
}
