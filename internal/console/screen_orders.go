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

// orders lists orders with a status filter, shows a single order with its
// line items and timeline, and moves an order along the status machine.
func (c *Console) orders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", c.cfg.PageSize, "page size")
	status := fs.String("status", "all", "status filter (all, pending, preparing, ready, completed, cancelled)")
	id := fs.String("id", "", "show the order with this id")
	setStatus := fs.String("set-status", "", "move the order to this status")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: orders: %w", err)
	}

	if *setStatus != "" && *id == "" {
		return fmt.Errorf("console: orders: -set-status requires -id")
	}

	if *id != "" {
		if *setStatus != "" {
			if err := c.updateOrderStatus(ctx, *id, adminapi.Normalize(*setStatus)); err != nil {
				return err
			}
		}
		return c.orderDetail(ctx, *id)
	}

	return c.listOrders(ctx, *page, *limit, adminapi.Normalize(*status))
}

func (c *Console) listOrders(ctx context.Context, page, limit int, status string) error {
	var orderPage *adminapi.OrderPage
	err := c.fetch("Loading orders", func() error {
		var err error
		orderPage, err = c.api.ListOrders(ctx, page, limit, status)
		return err
	})
	if err != nil {
		return err
	}

	rows := viewmodel.OrderRows(orderPage.Orders)
	if len(rows) == 0 {
		c.term.Info("No orders found")
		return nil
	}

	table := make([][]string, 0, len(rows))
	for _, row := range rows {
		table = append(table, []string{
			"#" + shortID(row.ID),
			c.term.Status(row.Status),
			money(row.TotalAmount),
			fmt.Sprintf("%d items", row.ItemsCount),
			formatDate(row.CreatedAt),
		})
	}
	c.term.Table([]string{"ORDER", "STATUS", "TOTAL", "ITEMS", "DATE"}, table)
	c.printPagination(page, len(rows), limit)
	return nil
}

func (c *Console) orderDetail(ctx context.Context, id string) error {
	var order *adminapi.Order
	err := c.fetch("Loading order", func() error {
		var err error
		order, err = c.api.GetOrder(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	detail := viewmodel.OrderDetailView(order)

	c.term.Printf("\nOrder #%s  %s\n", shortID(detail.ID), formatDate(detail.CreatedAt))
	c.term.Printf("Status: %s\n\n", c.term.Status(detail.Status))

	if len(detail.Items) > 0 {
		rows := make([][]string, 0, len(detail.Items))
		for _, item := range detail.Items {
			rows = append(rows, []string{
				item.Name,
				strconv.Itoa(item.Quantity),
				money(item.Price),
				money(item.Price * float64(item.Quantity)),
			})
		}
		c.term.Table([]string{"ITEM", "QTY", "PRICE", "TOTAL"}, rows)
	}
	c.term.Printf("\nTotal amount: %s\n\n", money(detail.TotalAmount))

	c.printTimeline(transitions.OrderFlow, detail.Status)
	c.printNextStates(transitions.Order(detail.Status))
	return nil
}

func (c *Console) updateOrderStatus(ctx context.Context, id, next string) error {
	var order *adminapi.Order
	err := c.fetch("Loading order", func() error {
		var err error
		order, err = c.api.GetOrder(ctx, id)
		return err
	})
	if err != nil {
		return err
	}

	current := adminapi.Normalize(order.Status)
	if transitions.OrderTerminal(current) {
		return fmt.Errorf("console: order is %s; no further transitions", current)
	}
	if !transitions.OrderAllows(current, next) {
		return fmt.Errorf("console: cannot move order from %s to %s (allowed: %s)",
			current, next, strings.Join(transitions.Order(current), ", "))
	}

	if err := c.api.UpdateOrderStatus(ctx, id, next); err != nil {
		return err
	}
	c.term.Success("Order status updated successfully")
	return nil
}

// printTimeline renders the happy-path checkpoints the way the detail
// screens show progress; a cancelled record marks nothing.
func (c *Console) printTimeline(flow []string, status string) {
	current := -1
	for i, step := range flow {
		if step == status {
			current = i
		}
	}
	for i, step := range flow {
		mark := "○"
		if i <= current {
			mark = "●"
		}
		c.term.Printf("  %s %s\n", mark, step)
	}
}

func (c *Console) printNextStates(next []string) {
	if len(next) == 0 {
		c.term.Printf("\nNo further status changes available.\n")
		return
	}
	c.term.Printf("\nAvailable transitions: %s\n", strings.Join(next, ", "))
}
