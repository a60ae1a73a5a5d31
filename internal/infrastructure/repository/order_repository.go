package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AnthonyBalvin/chicharron-web/internal/domain/entity"
	domainRepo "github.com/AnthonyBalvin/chicharron-web/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) ListUnpaid(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).
		Where("is_paid = ?", false).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) MarkPaid(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("is_paid", true)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) MarkDelivered(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("is_delivered", true)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) SettleCustomer(ctx context.Context, customerName string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("customer_name = ?", customerName).
		Where("is_paid = ?", false).
		Update("is_paid", true)
	return res.RowsAffected, res.Error
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Order{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
