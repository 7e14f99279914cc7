package viewmodel

import (
	"time"

	"github.com/spicetable/admin-console/internal/adminapi"
)

// ReviewView is a review with one resolved id.
type ReviewView struct {
	ID        string
	Rating    int
	Comment   string
	UserName  string
	CreatedAt time.Time
}

// ReviewsFrom resolves "_id" over "id" for each review.
func ReviewsFrom(list []adminapi.Review) []ReviewView {
	views := make([]ReviewView, 0, len(list))
	for _, r := range list {
		views = append(views, ReviewView{
			ID:        firstNonEmpty(r.MongoID, r.ID),
			Rating:    r.Rating,
			Comment:   r.Comment,
			UserName:  r.UserName,
			CreatedAt: r.CreatedAt,
		})
	}
	return views
}
