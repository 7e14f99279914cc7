package console

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/transitions"
	"github.com/spicetable/admin-console/internal/viewmodel"
)

// reservations lists table reservations, shows one booking, and moves it
// along the reservation status machine.
func (c *Console) reservations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reservations", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", c.cfg.PageSize, "page size")
	id := fs.String("id", "", "show the reservation with this id")
	setStatus := fs.String("set-status", "", "move the reservation to this status")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: reservations: %w", err)
	}

	if *setStatus != "" && *id == "" {
		return fmt.Errorf("console: reservations: -set-status requires -id")
	}

	if *id != "" {
		if *setStatus != "" {
			if err := c.updateReservationStatus(ctx, *id, adminapi.Normalize(*setStatus)); err != nil {
				return err
			}
		}
		return c.reservationDetail(ctx, *id)
	}

	return c.listReservations(ctx, *page, *limit)
}

func (c *Console) listReservations(ctx context.Context, page, limit int) error {
	var resPage *adminapi.ReservationPage
	err := c.fetch("Loading reservations", func() error {
		var err error
		resPage, err = c.api.ListReservations(ctx, page, limit)
		return err
	})
	if err != nil {
		return err
	}

	views := viewmodel.ReservationsFrom(resPage.Reservations)
	if len(views) == 0 {
		c.term.Info("No reservations found")
		return nil
	}

	rows := make([][]string, 0, len(views))
	for _, r := range views {
		rows = append(rows, []string{
			"#" + shortID(r.ID),
			r.Name,
			strconv.Itoa(r.PeopleCount) + " guests",
			r.Date,
			r.Time,
			c.term.Status(r.Status),
		})
	}
	c.term.Table([]string{"BOOKING", "NAME", "PARTY", "DATE", "TIME", "STATUS"}, rows)
	c.printPagination(page, len(rows), limit)
	return nil
}

func (c *Console) reservationDetail(ctx context.Context, id string) error {
	var raw *adminapi.Reservation
	err := c.fetch("Loading reservation", func() error {
		var err error
		raw, err = c.api.GetReservation(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	r := viewmodel.ReservationFrom(*raw)

	c.term.Printf("\nBooking #%s  %s\n", shortID(r.ID), formatDate(r.CreatedAt))
	c.term.Printf("Status: %s\n\n", c.term.Status(r.Status))
	c.term.Table([]string{"FIELD", "VALUE"}, [][]string{
		{"Guest", r.Name},
		{"Email", r.Email},
		{"Phone", r.Phone},
		{"Party size", strconv.Itoa(r.PeopleCount)},
		{"Date", r.Date},
		{"Time", r.Time},
	})
	if r.SpecialRequest != "" {
		c.term.Printf("\nSpecial request: %s\n", r.SpecialRequest)
	}
	c.term.Printf("\n")

	c.printTimeline(transitions.ReservationFlow, r.Status)
	c.printNextStates(transitions.Reservation(r.Status))
	return nil
}

func (c *Console) updateReservationStatus(ctx context.Context, id, next string) error {
	var raw *adminapi.Reservation
	err := c.fetch("Loading reservation", func() error {
		var err error
		raw, err = c.api.GetReservation(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	current := adminapi.Normalize(raw.Status)
	if transitions.ReservationTerminal(current) {
		return fmt.Errorf("console: reservation is %s; no further transitions", current)
	}
	if !transitions.ReservationAllows(current, next) {
		return fmt.Errorf("console: cannot move reservation from %s to %s (allowed: %s)",
			current, next, strings.Join(transitions.Reservation(current), ", "))
	}

	if err := c.api.UpdateReservationStatus(ctx, id, next); err != nil {
		return err
	}
	c.term.Success("Reservation status updated successfully")
	return nil
}
