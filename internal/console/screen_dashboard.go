package console

import (
	"context"
	"strconv"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/viewmodel"
)

// dashboard renders the analytics overview: the four stat cards, the
// orders-by-status breakdown, and the daily series when the backend sends
// one.
func (c *Console) dashboard(ctx context.Context) error {
	var overview *adminapi.Overview
	err := c.fetch("Loading analytics", func() error {
		var err error
		overview, err = c.api.Overview(ctx)
		return err
	})
	if err != nil {
		return err
	}

	c.term.Printf("\nDashboard\n\n")
	c.term.Table([]string{"TOTAL ORDERS", "TOTAL REVENUE", "RESERVATIONS", "ACTIVE RESERVATIONS"}, [][]string{{
		strconv.Itoa(overview.TotalOrders),
		money(overview.TotalRevenue),
		strconv.Itoa(overview.TotalReservations),
		strconv.Itoa(overview.ActiveReservations),
	}})

	if byStatus := viewmodel.OrdersByStatus(overview.OrdersByStatus); len(byStatus) > 0 {
		c.term.Printf("\nOrders by status\n")
		rows := make([][]string, 0, len(byStatus))
		for _, slice := range byStatus {
			rows = append(rows, []string{slice.Status, strconv.Itoa(slice.Count)})
		}
		c.term.Table([]string{"STATUS", "COUNT"}, rows)
	}

	if len(overview.DailyOrders) > 0 {
		c.term.Printf("\nLast %d days\n", len(overview.DailyOrders))
		rows := make([][]string, 0, len(overview.DailyOrders))
		for _, day := range overview.DailyOrders {
			rows = append(rows, []string{
				day.Day,
				day.Date,
				strconv.Itoa(day.Orders),
				money(day.Revenue),
			})
		}
		c.term.Table([]string{"DAY", "DATE", "ORDERS", "REVENUE"}, rows)
	}

	c.term.Printf("\n")
	return nil
}
