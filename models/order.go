package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Order statuses. The lifecycle only moves forward:
// Pending -> Served -> Paid, with Pending -> Paid allowed for
// checkouts that skip the served mark.
const (
	StatusPending = "Pending"
	StatusServed  = "Served"
	StatusPaid    = "Paid"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

var allowedTransitions = map[string][]string{
	StatusPending: {StatusServed, StatusPaid},
	StatusServed:  {StatusPaid},
	StatusPaid:    {},
}

// CanTransition reports whether moving an order from one status to
// another follows the forward-only lifecycle.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedSources lists the statuses an order may hold immediately
// before moving to the given status.
func AllowedSources(to string) []string {
	var sources []string
	for from, nexts := range allowedTransitions {
		for _, next := range nexts {
			if next == to {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TableNum  string    `gorm:"type:varchar(20);not null;default:'1'" json:"table_num"`
	Items     string    `gorm:"type:text" json:"items"`
	Total     float64   `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Status    string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// LineItem is a single entry of a submitted order. It is not persisted
// as its own row; orders store the flattened display string.
type LineItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// ItemsDisplay flattens line items into the stored display form,
// "<name> x<qty>" joined by ", ". A missing quantity counts as 1.
func ItemsDisplay(items []LineItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, qty))
	}
	return strings.Join(parts, ", ")
}

// LineItems parses the stored display string back into line items; the
// inverse of ItemsDisplay for callers that need the structured form.
func (o *Order) LineItems() []LineItem {
	if o.Items == "" {
		return nil
	}
	parts := strings.Split(o.Items, ", ")
	items := make([]LineItem, 0, len(parts))
	for _, p := range parts {
		idx := strings.LastIndex(p, " x")
		if idx < 0 {
			items = append(items, LineItem{Name: p, Qty: 1})
			continue
		}
		qty, err := strconv.Atoi(p[idx+2:])
		if err != nil || qty < 1 {
			items = append(items, LineItem{Name: p, Qty: 1})
			continue
		}
		items = append(items, LineItem{Name: p[:idx], Qty: qty})
	}
	return items
}
