package console

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/spicetable/admin-console/internal/adminapi"
)

// categories lists menu categories and handles create, update, and delete.
// Every mutation is followed by a fresh list fetch.
func (c *Console) categories(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("categories", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	create := fs.Bool("create", false, "create a category")
	update := fs.String("update", "", "update the category with this id")
	remove := fs.String("delete", "", "delete the category with this id")
	name := fs.String("name", "", "category name")
	description := fs.String("description", "", "category description")
	orderable := fs.Bool("orderable", true, "whether items can be ordered from this category")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: categories: %w", err)
	}

	switch {
	case *create:
		if *name == "" {
			return fmt.Errorf("console: categories: -name is required")
		}
		draft := adminapi.CategoryDraft{Name: *name, Description: *description, IsOrderable: *orderable}
		if err := c.api.CreateCategory(ctx, draft); err != nil {
			return err
		}
		c.term.Success("Category created successfully")

	case *update != "":
		if *name == "" {
			return fmt.Errorf("console: categories: -name is required")
		}
		draft := adminapi.CategoryDraft{Name: *name, Description: *description, IsOrderable: *orderable}
		if err := c.api.UpdateCategory(ctx, *update, draft); err != nil {
			return err
		}
		c.term.Success("Category updated successfully")

	case *remove != "":
		if !c.term.Confirm("Are you sure you want to delete this category?") {
			c.term.Info("Deletion cancelled")
			return nil
		}
		if err := c.api.DeleteCategory(ctx, *remove); err != nil {
			return err
		}
		c.term.Success("Category deleted successfully")
	}

	return c.listCategories(ctx)
}

func (c *Console) listCategories(ctx context.Context) error {
	var categories []adminapi.Category
	err := c.fetch("Loading categories", func() error {
		var err error
		categories, err = c.api.ListCategories(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if len(categories) == 0 {
		c.term.Info("No categories found")
		return nil
	}

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{
			cat.ID,
			cat.Name,
			cat.Description,
			strconv.FormatBool(cat.IsOrderable),
			formatDate(cat.CreatedAt),
		})
	}
	c.term.Table([]string{"ID", "NAME", "DESCRIPTION", "ORDERABLE", "CREATED"}, rows)
	return nil
}
