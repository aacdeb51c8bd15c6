package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusServed))
	assert.True(t, CanTransition(StatusServed, StatusPaid))
	// checkout without a served mark is allowed
	assert.True(t, CanTransition(StatusPending, StatusPaid))

	// backwards or repeated moves are not
	assert.False(t, CanTransition(StatusServed, StatusPending))
	assert.False(t, CanTransition(StatusPaid, StatusPending))
	assert.False(t, CanTransition(StatusPaid, StatusServed))
	assert.False(t, CanTransition(StatusPending, StatusPending))
	assert.False(t, CanTransition(StatusPaid, StatusPaid))
}

func TestAllowedSources(t *testing.T) {
	assert.ElementsMatch(t, []string{StatusPending}, AllowedSources(StatusServed))
	assert.ElementsMatch(t, []string{StatusPending, StatusServed}, AllowedSources(StatusPaid))
	assert.Empty(t, AllowedSources(StatusPending))
}

func TestItemsDisplay(t *testing.T) {
	items := []LineItem{
		{Name: "Paneer Makhani", Qty: 2},
		{Name: "Gulab Jamun (2pc.)", Qty: 1},
	}
	assert.Equal(t, "Paneer Makhani x2, Gulab Jamun (2pc.) x1", ItemsDisplay(items))
}

func TestItemsDisplayDefaultsQuantity(t *testing.T) {
	assert.Equal(t, "Dal Makhani x1", ItemsDisplay([]LineItem{{Name: "Dal Makhani"}}))
	assert.Equal(t, "", ItemsDisplay(nil))
}

func TestLineItemsRoundTrip(t *testing.T) {
	items := []LineItem{
		{Name: "Paneer Makhani", Qty: 2},
		{Name: "Pasta Veg (Red/White/Mix)", Qty: 3},
		{Name: "Masala Uttapam", Qty: 1},
	}
	order := Order{Items: ItemsDisplay(items)}
	assert.Equal(t, items, order.LineItems())
}

func TestLineItemsEmpty(t *testing.T) {
	order := Order{Items: ""}
	assert.Nil(t, order.LineItems())
}

func TestLineItemsMalformedEntry(t *testing.T) {
	order := Order{Items: "Mystery Dish"}
	assert.Equal(t, []LineItem{{Name: "Mystery Dish", Qty: 1}}, order.LineItems())
}
