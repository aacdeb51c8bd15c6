package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jugnuu/themis-pos/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the durable source of truth for orders. Rows are never
// deleted; paid orders stay as permanent sales history.
type OrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// Create persists a new order and fills in its assigned id.
func (s *OrderStore) Create(order *models.Order) error {
	return s.DB.Create(order).Error
}

// FindByID loads a single order.
func (s *OrderStore) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus writes the new status unconditionally. It reports
// ErrOrderNotFound when no row matches but does not validate the
// transition; that is the lifecycle engine's job.
func (s *OrderStore) UpdateStatus(id uint, status string) error {
	res := s.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// TransitionStatus moves an order to the new status only if its current
// status is one of the allowed sources. Check and write are a single
// conditional UPDATE, so two racing transitions on the same id cannot
// both pass validation and commit out of order. When no row is changed
// the order is re-read to tell a missing id from an illegal move.
func (s *OrderStore) TransitionStatus(id uint, from []string, to string) error {
	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		order, err := s.FindByID(id)
		if err != nil {
			return err
		}
		return fmt.Errorf("%w: %s -> %s for order #%d", models.ErrInvalidTransition, order.Status, to, id)
	}
	return nil
}

// FindByStatus lists orders in any of the given statuses, oldest id first.
func (s *OrderStore) FindByStatus(statuses ...string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("status IN ?", statuses).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// FindPaidSince lists paid orders created on or after the given instant,
// newest first.
func (s *OrderStore) FindPaidSince(since time.Time) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.Where("status = ? AND created_at >= ?", models.StatusPaid, since).
		Order("id desc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// LifetimePaid returns the revenue sum and count over every paid order
// ever recorded.
func (s *OrderStore) LifetimePaid() (float64, int64, error) {
	var result struct {
		Rev float64
		Cnt int64
	}
	err := s.DB.Model(&models.Order{}).
		Where("status = ?", models.StatusPaid).
		Select("COALESCE(SUM(total), 0) as rev, COUNT(*) as cnt").
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Rev, result.Cnt, nil
}
