package voucher

import (
	"context"
	"errors"
	"fmt"

	"karting/internal/domain"
	"karting/internal/modules/booking"

	"github.com/sirupsen/logrus"
)

// Service renders payment vouchers for a booking and mails them to the
// attendees.
type Service struct {
	bookings BookingGetter
	mailer   Mailer
}

func NewService(bookings BookingGetter, mailer Mailer) *Service {
	return &Service{bookings: bookings, mailer: mailer}
}

func (s *Service) load(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, booking.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ExcelVoucher returns the spreadsheet voucher and its download filename.
func (s *Service) ExcelVoucher(ctx context.Context, id int64) ([]byte, string, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	f, err := buildWorkbook(b)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), fmt.Sprintf("voucher-%d.xlsx", b.ID), nil
}

// PDFVoucher returns the printable voucher and its download filename.
func (s *Service) PDFVoucher(ctx context.Context, id int64) ([]byte, string, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	data, err := buildPDF(b)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return data, fmt.Sprintf("voucher-%d.pdf", b.ID), nil
}

// EmailVoucher mails the spreadsheet voucher to every attendee with an email
// address and returns the recipient count.
func (s *Service) EmailVoucher(ctx context.Context, id int64) (int, error) {
	b, err := s.load(ctx, id)
	if err != nil {
		return 0, err
	}

	to := make([]string, 0, len(b.Attendees))
	for _, a := range b.Attendees {
		if a.Email != "" {
			to = append(to, a.Email)
		}
	}
	if len(to) == 0 {
		return 0, ErrNoRecipients
	}

	data, name, err := s.ExcelVoucher(ctx, id)
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("Your KartingRM voucher for %s", b.Date)
	body := fmt.Sprintf(
		"Hi,\n\nAttached is the payment voucher for booking #%d on %s at %s.\nTotal: %d.\n\nSee you on the track!",
		b.ID, b.Date, b.StartTime, b.TotalAmount,
	)
	if err := s.mailer.Send(to, subject, body, name, data); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDelivery, err)
	}

	logrus.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"recipients": len(to),
	}).Info("voucher emailed")
	return len(to), nil
}
