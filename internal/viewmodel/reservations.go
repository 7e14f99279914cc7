package viewmodel

import (
	"time"

	"github.com/spicetable/admin-console/internal/adminapi"
)

// ReservationView is a reservation with one resolved id and a lowercase
// status.
type ReservationView struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	PeopleCount    int
	Date           string
	Time           string
	Status         string
	SpecialRequest string
	CreatedAt      time.Time
}

// ReservationFrom resolves "_id" over "id" and normalizes the status.
func ReservationFrom(r adminapi.Reservation) ReservationView {
	return ReservationView{
		ID:             firstNonEmpty(r.MongoID, r.ID),
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		PeopleCount:    r.PeopleCount,
		Date:           r.Date,
		Time:           r.Time,
		Status:         displayStatus(r.Status),
		SpecialRequest: r.SpecialRequest,
		CreatedAt:      r.CreatedAt,
	}
}

// ReservationsFrom maps a page of reservations.
func ReservationsFrom(list []adminapi.Reservation) []ReservationView {
	views := make([]ReservationView, 0, len(list))
	for _, r := range list {
		views = append(views, ReservationFrom(r))
	}
	return views
}
