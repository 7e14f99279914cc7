package viewmodel

import (
	"github.com/spicetable/admin-console/internal/adminapi"
)

// StatusSlice is one normalized slice of the orders-by-status aggregate.
type StatusSlice struct {
	Status string
	Count  int
}

// OrdersByStatus normalizes aggregate entries whose status arrives under
// either "_id" or "status"; entries with neither are labeled Unknown.
func OrdersByStatus(counts []adminapi.StatusCount) []StatusSlice {
	slices := make([]StatusSlice, 0, len(counts))
	for _, c := range counts {
		status := firstNonEmpty(c.MongoID, c.Status, "Unknown")
		slices = append(slices, StatusSlice{
			Status: FormatStatusName(status),
			Count:  c.Count,
		})
	}
	return slices
}

// FormatStatusName re-capitalizes a status for display.
func FormatStatusName(status string) string {
	return adminapi.Capitalize(status)
}
