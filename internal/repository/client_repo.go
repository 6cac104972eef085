package repository

import (
	"context"
	"errors"
	"time"

	"karting/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned when a client with the same RUT already exists.
var ErrDuplicateKey = errors.New("duplicate key")

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

type clientModel struct {
	RUT           string    `gorm:"column:rut;primaryKey"`
	Name          string    `gorm:"column:name"`
	Email         string    `gorm:"column:email"`
	Birthday      string    `gorm:"column:birthday"`
	MonthlyVisits int       `gorm:"column:monthly_visits"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (clientModel) TableName() string { return "clients" }

func toDomainClient(m clientModel) *domain.Client {
	return &domain.Client{
		RUT:           m.RUT,
		Name:          m.Name,
		Email:         m.Email,
		Birthday:      m.Birthday,
		MonthlyVisits: m.MonthlyVisits,
		CreatedAt:     m.CreatedAt,
	}
}

func (r *ClientRepository) Migrate() error {
	return r.db.AutoMigrate(&clientModel{})
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	m := clientModel{
		RUT:           c.RUT,
		Name:          c.Name,
		Email:         c.Email,
		Birthday:      c.Birthday,
		MonthlyVisits: c.MonthlyVisits,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(tx.Error, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateKey
		}
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return tx.Error
	}
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *ClientRepository) GetByRUT(ctx context.Context, rut string) (*domain.Client, error) {
	var m clientModel
	tx := r.db.WithContext(ctx).Where("rut = ?", rut).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainClient(m), nil
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	var ms []clientModel
	tx := r.db.WithContext(ctx).Order("rut").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Client, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainClient(m))
	}
	return out, nil
}

// IncrementVisits bumps the monthly visit counter by one in a single UPDATE,
// so concurrent booking saves naming the same client never lose a count.
func (r *ClientRepository) IncrementVisits(ctx context.Context, rut string) error {
	tx := r.db.WithContext(ctx).
		Model(&clientModel{}).
		Where("rut = ?", rut).
		Update("monthly_visits", gorm.Expr("monthly_visits + 1"))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
