// Package viewmodel reshapes raw backend payloads into what the console
// screens render: statuses lower-cased, Mongo "_id" fields resolved to a
// single id, and order line items resolved through their deleted-reference
// fallbacks.
package viewmodel

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/transitions"
)

// PlaceholderImage stands in for line items whose menu item no longer
// carries an image, or no longer exists at all.
const PlaceholderImage = "/placeholder.png"

// OrderRow is one row of the orders list screen.
type OrderRow struct {
	ID          string
	Status      string
	TotalAmount float64
	ItemsCount  int
	CreatedAt   time.Time
}

// OrderRows lower-cases statuses for display and counts line items.
func OrderRows(orders []adminapi.Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, OrderRow{
			ID:          order.ID,
			Status:      displayStatus(order.Status),
			TotalAmount: order.TotalAmount,
			ItemsCount:  len(order.Items),
			CreatedAt:   order.CreatedAt,
		})
	}
	return rows
}

// LineItem is a resolved order line item. Deleted marks the placeholder
// rows synthesized for unresolvable menu item references.
type LineItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
	ImageURL string
	Deleted  bool
}

// OrderDetail is the order detail screen's shape.
type OrderDetail struct {
	ID          string
	Status      string
	TotalAmount float64
	CreatedAt   time.Time
	Items       []LineItem
}

// OrderDetailView resolves every line item and normalizes the status.
func OrderDetailView(order *adminapi.Order) OrderDetail {
	items := make([]LineItem, 0, len(order.Items))
	for i, raw := range order.Items {
		items = append(items, ResolveLineItem(i, raw))
	}
	return OrderDetail{
		ID:          order.ID,
		Status:      displayStatus(order.Status),
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}
}

// ResolveLineItem maps a raw line item through the three possible shapes of
// its menu item reference:
//
//   - a bare identifier string: population failed upstream, render an
//     "Item Not Found" placeholder;
//   - null or absent: the menu item was deleted, render a "Deleted Item"
//     placeholder;
//   - a populated object: extract id, name, price, and image, with price
//     defaulting to 0 and image to the placeholder.
//
// Rendering must never fail on a dangling reference, so every branch
// produces a usable row.
func ResolveLineItem(index int, raw adminapi.OrderLineItem) LineItem {
	quantity := raw.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	item := gjson.ParseBytes(raw.Item)

	if item.Type == gjson.String {
		id := item.String()
		if id == "" {
			id = raw.ID
		}
		if id == "" {
			id = fmt.Sprintf("item-%d", index)
		}
		return LineItem{
			ID:       id,
			Name:     "Item Not Found",
			Price:    0,
			Quantity: quantity,
			ImageURL: PlaceholderImage,
			Deleted:  true,
		}
	}

	if !item.IsObject() {
		id := raw.ID
		if id == "" {
			id = fmt.Sprintf("deleted-%d", index)
		}
		return LineItem{
			ID:       id,
			Name:     "Deleted Item",
			Price:    0,
			Quantity: quantity,
			ImageURL: PlaceholderImage,
			Deleted:  true,
		}
	}

	id := firstNonEmpty(item.Get("_id").String(), item.Get("id").String(), raw.ID, fmt.Sprintf("item-%d", index))
	name := item.Get("name").String()
	if name == "" {
		name = "Unknown Item"
	}
	price := 0.0
	if p := item.Get("price"); p.Type == gjson.Number {
		price = p.Float()
	}
	image := firstNonEmpty(item.Get("image").String(), item.Get("imageUrl").String(), PlaceholderImage)

	return LineItem{
		ID:       id,
		Name:     name,
		Price:    price,
		Quantity: quantity,
		ImageURL: image,
	}
}

// displayStatus lower-cases a backend status, defaulting blank to pending.
func displayStatus(status string) string {
	if s := adminapi.Normalize(status); s != "" {
		return s
	}
	return transitions.StatusPending
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
