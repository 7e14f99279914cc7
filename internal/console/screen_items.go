package console

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spicetable/admin-console/internal/adminapi"
)

// items lists a category's menu items and handles add, update, and delete.
// Item writes travel as multipart form data so an image file can ride
// along.
func (c *Console) items(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("items", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "category id")
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", c.cfg.ItemsPageSize, "page size")
	add := fs.Bool("add", false, "add an item")
	update := fs.String("update", "", "update the item with this id")
	remove := fs.String("delete", "", "delete the item with this id")
	name := fs.String("name", "", "item name")
	price := fs.Float64("price", 0, "item price")
	description := fs.String("description", "", "item description")
	available := fs.Bool("available", true, "item availability")
	imagePath := fs.String("image", "", "path to an image file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: items: %w", err)
	}

	switch {
	case *add:
		if *category == "" {
			return fmt.Errorf("console: items: -category is required to add an item")
		}
		if *name == "" {
			return fmt.Errorf("console: items: -name is required")
		}
		draft, closeImage, err := itemDraft(*name, *price, *description, *available, *imagePath)
		if err != nil {
			return err
		}
		defer closeImage()
		if err := c.api.CreateItem(ctx, *category, draft); err != nil {
			return err
		}
		c.term.Success("Item created successfully")

	case *update != "":
		if *name == "" {
			return fmt.Errorf("console: items: -name is required")
		}
		draft, closeImage, err := itemDraft(*name, *price, *description, *available, *imagePath)
		if err != nil {
			return err
		}
		defer closeImage()
		if err := c.api.UpdateItem(ctx, *update, draft); err != nil {
			return err
		}
		c.term.Success("Item updated successfully")

	case *remove != "":
		if !c.term.Confirm("Are you sure you want to delete this item?") {
			c.term.Info("Deletion cancelled")
			return nil
		}
		if err := c.api.DeleteItem(ctx, *remove); err != nil {
			return err
		}
		c.term.Success("Item deleted successfully")
	}

	if *category == "" {
		// No category to list; point the operator at one.
		return c.listCategories(ctx)
	}
	return c.listItems(ctx, *category, *page, *limit)
}

func (c *Console) listItems(ctx context.Context, categoryID string, page, limit int) error {
	var itemPage *adminapi.ItemPage
	err := c.fetch("Loading items", func() error {
		var err error
		itemPage, err = c.api.ListCategoryItems(ctx, categoryID, page, limit)
		return err
	})
	if err != nil {
		return err
	}

	if len(itemPage.Items) == 0 {
		c.term.Info("No items found in this category")
		return nil
	}

	rows := make([][]string, 0, len(itemPage.Items))
	for _, item := range itemPage.Items {
		rows = append(rows, []string{
			item.ID,
			item.Name,
			money(item.Price),
			strconv.FormatBool(item.Available),
			item.Description,
		})
	}
	c.term.Table([]string{"ID", "NAME", "PRICE", "AVAILABLE", "DESCRIPTION"}, rows)
	c.printPagination(page, len(itemPage.Items), limit)
	return nil
}

// itemDraft assembles the multipart draft, opening the image file when one
// is given. The returned closer is a no-op without an image.
func itemDraft(name string, price float64, description string, available bool, imagePath string) (adminapi.ItemDraft, func(), error) {
	draft := adminapi.ItemDraft{
		Name:        name,
		Price:       price,
		Description: description,
		Available:   available,
	}
	if imagePath == "" {
		return draft, func() {}, nil
	}

	f, err := os.Open(filepath.Clean(imagePath))
	if err != nil {
		return draft, func() {}, fmt.Errorf("console: open image: %w", err)
	}
	draft.Image = &adminapi.ImageUpload{Filename: filepath.Base(imagePath), Reader: f}
	return draft, func() { f.Close() }, nil
}

// printPagination mirrors the list screens' pager: previous is possible
// above page 1, next when the page came back full.
func (c *Console) printPagination(page, count, limit int) {
	c.term.Printf("\nPage %d", page)
	if page > 1 {
		c.term.Printf("  (previous: -page %d)", page-1)
	}
	if count == limit {
		c.term.Printf("  (next: -page %d)", page+1)
	}
	c.term.Printf("\n")
}
