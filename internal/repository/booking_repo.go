package repository

import (
	"context"
	"time"

	"karting/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Date        string          `gorm:"column:date;index"`
	StartTime   string          `gorm:"column:start_time"`
	EndTime     string          `gorm:"column:end_time"`
	Status      string          `gorm:"column:status;index"`
	Tier        int             `gorm:"column:tier"`
	NumOfPeople int             `gorm:"column:num_of_people"`
	BasePrice   int             `gorm:"column:base_price"`
	TaxPct      int             `gorm:"column:tax_pct"`
	TotalAmount int             `gorm:"column:total_amount"`
	CreatedAt   time.Time       `gorm:"column:created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at"`
	Attendees   []attendeeModel `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

func (bookingModel) TableName() string { return "bookings" }

type attendeeModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	BookingID    int64  `gorm:"column:booking_id;index"`
	Position     int    `gorm:"column:position"`
	RUT          string `gorm:"column:rut;index"`
	Name         string `gorm:"column:name"`
	Email        string `gorm:"column:email"`
	DiscountType string `gorm:"column:discount_type"`
	Price        int    `gorm:"column:price"`
	PriceWithTax int    `gorm:"column:price_with_tax"`
}

func (attendeeModel) TableName() string { return "booking_attendees" }

func toDomainBooking(m bookingModel) *domain.Booking {
	attendees := make([]domain.Attendee, 0, len(m.Attendees))
	for _, a := range m.Attendees {
		attendees = append(attendees, domain.Attendee{
			RUT:          a.RUT,
			Name:         a.Name,
			Email:        a.Email,
			DiscountType: a.DiscountType,
			Price:        a.Price,
			PriceWithTax: a.PriceWithTax,
			Position:     a.Position,
		})
	}

	return &domain.Booking{
		ID:          m.ID,
		Date:        m.Date,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      domain.BookingStatus(m.Status),
		Tier:        m.Tier,
		NumOfPeople: m.NumOfPeople,
		Attendees:   attendees,
		BasePrice:   m.BasePrice,
		TaxPct:      m.TaxPct,
		TotalAmount: m.TotalAmount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	attendees := make([]attendeeModel, 0, len(b.Attendees))
	for i, a := range b.Attendees {
		attendees = append(attendees, attendeeModel{
			Position:     i,
			RUT:          a.RUT,
			Name:         a.Name,
			Email:        a.Email,
			DiscountType: a.DiscountType,
			Price:        a.Price,
			PriceWithTax: a.PriceWithTax,
		})
	}

	return bookingModel{
		ID:          b.ID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		Tier:        b.Tier,
		NumOfPeople: b.NumOfPeople,
		BasePrice:   b.BasePrice,
		TaxPct:      b.TaxPct,
		TotalAmount: b.TotalAmount,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
		Attendees:   attendees,
	}
}

// Migrate creates the bookings and booking_attendees tables.
func (r *BookingRepository) Migrate() error {
	return r.db.AutoMigrate(&bookingModel{}, &attendeeModel{})
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Preload("Attendees", withPositionOrder).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByStatusMonthTier filters by status, booking month ("01".."12") and
// tier. substr on the ISO date column keeps SQLite and Postgres in agreement.
func (r *BookingRepository) FindByStatusMonthTier(ctx context.Context, status domain.BookingStatus, month string, tier int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Attendees", withPositionOrder).
		Where("status = ? AND substr(date, 6, 2) = ? AND tier = ?", string(status), month, tier).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// FindByStatusMonthPeople filters by status, booking month and an inclusive
// attendee-count band (1-2, 3-5, 6-10, 11-15).
func (r *BookingRepository) FindByStatusMonthPeople(ctx context.Context, status domain.BookingStatus, month string, lo, hi int) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Attendees", withPositionOrder).
		Where("status = ? AND substr(date, 6, 2) = ? AND num_of_people BETWEEN ? AND ?", string(status), month, lo, hi).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindByDate(ctx context.Context, date string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Attendees", withPositionOrder).
		Where("date = ?", date).
		Order("start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func (r *BookingRepository) FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Attendees", withPositionOrder).
		Where("status = ?", string(status)).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

// FindByLeadAttendee returns bookings whose first attendee carries the RUT.
func (r *BookingRepository) FindByLeadAttendee(ctx context.Context, rut string) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Preload("Attendees", withPositionOrder).
		Joins("JOIN booking_attendees a ON a.booking_id = bookings.id AND a.position = 0").
		Where("a.rut = ?", rut).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBookings(ms), nil
}

func withPositionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("booking_attendees.position")
}

func toDomainBookings(ms []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
