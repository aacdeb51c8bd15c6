package services

import (
	"time"

	"github.com/jugnuu/themis-pos/alerts"
	"github.com/jugnuu/themis-pos/models"
	"github.com/jugnuu/themis-pos/store"
	"github.com/jugnuu/themis-pos/utils"
)

// OrderService is the lifecycle engine: the only component that decides
// what counts as a valid submission or a valid status transition, and
// that shapes data before and after storage.
type OrderService struct {
	Store *store.OrderStore
	Hub   *alerts.Hub

	// now is swappable in tests.
	now func() time.Time
}

func NewOrderService(st *store.OrderStore, hub *alerts.Hub) *OrderService {
	return &OrderService{
		Store: st,
		Hub:   hub,
		now:   time.Now,
	}
}

type SubmitRequest struct {
	Table string            `json:"table"`
	Items []models.LineItem `json:"items"`
	Total float64           `json:"total"`
}

// Submit accepts a new order. Missing fields are defaulted rather than
// rejected so a client bug never blocks the point of sale: table falls
// back to "1", items to empty, a negative total to 0. The claimed total
// is trusted as-is; it is not recomputed against the menu.
func (s *OrderService) Submit(req SubmitRequest) (*models.Order, error) {
	table := req.Table
	if table == "" {
		table = "1"
	}
	total := req.Total
	if total < 0 {
		total = 0
	}

	order := &models.Order{
		TableNum:  table,
		Items:     models.ItemsDisplay(req.Items),
		Total:     total,
		Status:    models.StatusPending,
		CreatedAt: s.now(),
	}
	if err := s.Store.Create(order); err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Order #%d submitted for table %s (total %.2f)", order.ID, order.TableNum, order.Total)

	// Best-effort: the stored row is the durable fact, the alert is not.
	s.Hub.BroadcastNewOrder(order.ID, order.TableNum)

	return order, nil
}

// MarkServed moves an order from Pending to Served and tells the
// dashboards about it.
func (s *OrderService) MarkServed(id uint) error {
	if err := s.transition(id, models.StatusServed); err != nil {
		return err
	}
	s.Hub.BroadcastOrderServed(id)
	return nil
}

// Checkout finalizes an order into permanent sales history. No event is
// broadcast; dashboards are not told a table cleared.
func (s *OrderService) Checkout(id uint) error {
	return s.transition(id, models.StatusPaid)
}

// transition enforces the forward-only lifecycle. The allowed-edges
// check rides inside the store's conditional write, so it holds under
// concurrent calls on the same id regardless of the backend.
func (s *OrderService) transition(id uint, to string) error {
	return s.Store.TransitionStatus(id, models.AllowedSources(to), to)
}

// CallWaiter is stateless: it never touches the store, it only alerts
// connected staff. It is not tied to any order id.
func (s *OrderService) CallWaiter(table string) {
	if table == "" {
		table = "1"
	}
	s.Hub.BroadcastWaiterCall(table)
}

// ActiveOrders is the dashboard view: orders still Pending.
func (s *OrderService) ActiveOrders() ([]models.Order, error) {
	return s.Store.FindByStatus(models.StatusPending)
}

// BillingOrders is the billing view: everything not yet paid.
func (s *OrderService) BillingOrders() ([]models.Order, error) {
	return s.Store.FindByStatus(models.StatusPending, models.StatusServed)
}

type SalesBucket struct {
	Orders         []models.Order `json:"orders"`
	Revenue        float64        `json:"revenue"`
	RevenueDisplay string         `json:"revenue_display"`
}

type SalesReport struct {
	TotalRevenue        float64 `json:"total_revenue"`
	TotalRevenueDisplay string  `json:"total_revenue_display"`
	Count               int64   `json:"count"`

	Today SalesBucket `json:"today"`
	Week  SalesBucket `json:"week"`
	Month SalesBucket `json:"month"`
}

// Sales builds the sales view: lifetime totals over every paid order,
// plus today / last-7-days / last-30-days breakdowns, each inclusive of
// its boundary day.
func (s *OrderService) Sales() (*SalesReport, error) {
	revenue, count, err := s.Store.LifetimePaid()
	if err != nil {
		return nil, err
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := s.bucketSince(dayStart)
	if err != nil {
		return nil, err
	}
	week, err := s.bucketSince(dayStart.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	month, err := s.bucketSince(dayStart.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}

	return &SalesReport{
		TotalRevenue:        revenue,
		TotalRevenueDisplay: utils.FormatAmount(revenue),
		Count:               count,
		Today:               today,
		Week:                week,
		Month:               month,
	}, nil
}

func (s *OrderService) bucketSince(since time.Time) (SalesBucket, error) {
	orders, err := s.Store.FindPaidSince(since)
	if err != nil {
		return SalesBucket{}, err
	}
	var revenue float64
	for _, o := range orders {
		revenue += o.Total
	}
	return SalesBucket{
		Orders:         orders,
		Revenue:        revenue,
		RevenueDisplay: utils.FormatAmount(revenue),
	}, nil
}
