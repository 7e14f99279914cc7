package adminapi

import (
	"encoding/json"
	"io"
	"time"
)

// Category is a menu category. The backend owns these records; the console
// only reads and writes them through the CRUD calls.
type Category struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOrderable bool      `json:"isOrderable"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryDraft is the request body for category create and update.
type CategoryDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsOrderable bool   `json:"isOrderable"`
}

// MenuItem belongs to exactly one category.
type MenuItem struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Available   bool    `json:"available"`
}

// ImageUpload is an item image attached to a multipart create or update.
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// ItemDraft carries the multipart fields for item create and update.
type ItemDraft struct {
	Name        string
	Price       float64
	Description string
	Available   bool
	Image       *ImageUpload
}

// ItemPage is one page of items within a category.
type ItemPage struct {
	Items       []MenuItem `json:"items"`
	CurrentPage int        `json:"currentPage"`
	TotalPages  int        `json:"totalPages"`
	TotalItems  int        `json:"totalItems"`
}

// OrderLineItem references a menu item by id with a quantity. Item is kept
// raw because the backend populates it inconsistently: a populated object,
// a bare identifier string when population failed, or null when the menu
// item has been deleted.
type OrderLineItem struct {
	ID       string          `json:"_id"`
	Quantity int             `json:"quantity"`
	Item     json.RawMessage `json:"item"`
}

// Order statuses arrive in the backend's capitalized form and are
// lower-cased at the view-model boundary.
type Order struct {
	ID          string          `json:"_id"`
	Status      string          `json:"status"`
	TotalAmount float64         `json:"totalAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []OrderLineItem `json:"items"`
}

// OrderPage is one page of the orders list.
type OrderPage struct {
	Orders      []Order `json:"orders"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	TotalOrders int     `json:"totalOrders"`
}

// Reservation records carry either "_id" or "id" depending on the backend
// handler; both are decoded and the view model resolves one.
type Reservation struct {
	MongoID        string    `json:"_id"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PeopleCount    int       `json:"peopleCount"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	SpecialRequest string    `json:"specialRequest"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ReservationPage is one page of the reservations list.
type ReservationPage struct {
	Reservations      []Reservation `json:"reservations"`
	CurrentPage       int           `json:"currentPage"`
	TotalPages        int           `json:"totalPages"`
	TotalReservations int           `json:"totalReservations"`
}

// Review is a customer review pending moderation.
type Review struct {
	MongoID   string    `json:"_id"`
	ID        string    `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewPage is one page of the reviews list.
type ReviewPage struct {
	Reviews      []Review `json:"reviews"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	TotalReviews int      `json:"totalReviews"`
}

// StatusCount is one slice of the orders-by-status aggregate. The backend
// keys the status under "_id" or "status" depending on the aggregation.
type StatusCount struct {
	MongoID string `json:"_id"`
	Status  string `json:"status"`
	Count   int    `json:"count"`
}

// DailyOrders is one day of the dashboard's order/revenue series.
type DailyOrders struct {
	Date    string  `json:"date"`
	Day     string  `json:"day"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// Overview is the dashboard aggregate.
type Overview struct {
	TotalOrders        int           `json:"totalOrders"`
	TotalRevenue       float64       `json:"totalRevenue"`
	TotalReservations  int           `json:"totalReservations"`
	ActiveReservations int           `json:"activeReservations"`
	OrdersByStatus     []StatusCount `json:"ordersByStatus"`
	DailyOrders        []DailyOrders `json:"dailyOrders"`
}
