// Package transitions declares the legal next-states for orders and
// reservations. These tables only gate what the console offers; the backend
// independently rejects illegal transitions and remains the authority.
package transitions

// Lowercase status values shared by both machines. Both start at pending;
// completed and cancelled are terminal sinks.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// OrderFlow is the happy-path sequence shown on the order timeline.
var OrderFlow = []string{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

// ReservationFlow is the happy-path sequence for reservations.
var ReservationFlow = []string{StatusPending, StatusConfirmed, StatusCompleted}

var orderNext = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

var reservationNext = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Order returns the states an order may move to from status. Unknown
// statuses have no legal transitions.
func Order(status string) []string {
	return copyOf(orderNext[status])
}

// Reservation returns the states a reservation may move to from status.
func Reservation(status string) []string {
	return copyOf(reservationNext[status])
}

// OrderTerminal reports whether an order in status offers no transitions;
// the console disables its status control entirely in that case.
func OrderTerminal(status string) bool {
	return len(orderNext[status]) == 0
}

// ReservationTerminal reports whether a reservation in status offers no
// transitions.
func ReservationTerminal(status string) bool {
	return len(reservationNext[status]) == 0
}

// OrderAllows reports whether moving an order from one status to another is
// offered by the table.
func OrderAllows(from, to string) bool {
	return allows(orderNext, from, to)
}

// ReservationAllows reports whether moving a reservation from one status to
// another is offered by the table.
func ReservationAllows(from, to string) bool {
	return allows(reservationNext, from, to)
}

func allows(table map[string][]string, from, to string) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func copyOf(states []string) []string {
	out := make([]string, len(states))
	copy(out, states)
	return out
}
