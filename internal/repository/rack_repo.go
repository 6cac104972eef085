package repository

import (
	"context"

	"karting/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RackRepository struct {
	db *gorm.DB
}

func NewRackRepository(db *gorm.DB) *RackRepository {
	return &RackRepository{db: db}
}

type rackModel struct {
	BookingID  int64  `gorm:"column:booking_id;primaryKey"`
	Date       string `gorm:"column:date;index"`
	StartTime  string `gorm:"column:start_time"`
	EndTime    string `gorm:"column:end_time"`
	Status     string `gorm:"column:status"`
	ClientName string `gorm:"column:client_name"`
}

func (rackModel) TableName() string { return "rack" }

func toDomainRack(m rackModel) domain.RackEntry {
	return domain.RackEntry{
		BookingID:  m.BookingID,
		Date:       m.Date,
		StartTime:  m.StartTime,
		EndTime:    m.EndTime,
		Status:     m.Status,
		ClientName: m.ClientName,
	}
}

func (r *RackRepository) Migrate() error {
	return r.db.AutoMigrate(&rackModel{})
}

// Upsert writes the projection row for a booking, replacing any previous one.
func (r *RackRepository) Upsert(ctx context.Context, e domain.RackEntry) error {
	m := rackModel{
		BookingID:  e.BookingID,
		Date:       e.Date,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
		Status:     e.Status,
		ClientName: e.ClientName,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "booking_id"}},
			UpdateAll: true,
		}).
		Create(&m).Error
}

// DeleteByBookingID removes the projection row; deleting an absent row is
// not an error.
func (r *RackRepository) DeleteByBookingID(ctx context.Context, bookingID int64) error {
	return r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&rackModel{}).Error
}

// FindByStatusMonthYear returns entries for the weekly rack display.
func (r *RackRepository) FindByStatusMonthYear(ctx context.Context, status, month, year string) ([]domain.RackEntry, error) {
	var ms []rackModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND substr(date, 6, 2) = ? AND substr(date, 1, 4) = ?", status, month, year).
		Order("date, start_time").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.RackEntry, 0, len(ms))
	for _, m := range ms {
		out = append(out, toDomainRack(m))
	}
	return out, nil
}
