package console

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/spicetable/admin-console/internal/adminapi"
	"github.com/spicetable/admin-console/internal/viewmodel"
)

// reviews lists customer reviews for moderation and deletes flagged ones
// after confirmation.
func (c *Console) reviews(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", c.cfg.PageSize, "page size")
	remove := fs.String("delete", "", "delete the review with this id")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("console: reviews: %w", err)
	}

	if *remove != "" {
		if !c.term.Confirm("Are you sure you want to delete this review?") {
			c.term.Info("Deletion cancelled")
			return nil
		}
		if err := c.api.DeleteReview(ctx, *remove); err != nil {
			return err
		}
		c.term.Success("Review deleted successfully")
	}

	return c.listReviews(ctx, *page, *limit)
}

func (c *Console) listReviews(ctx context.Context, page, limit int) error {
	var reviewPage *adminapi.ReviewPage
	err := c.fetch("Loading reviews", func() error {
		var err error
		reviewPage, err = c.api.ListReviews(ctx, page, limit)
		return err
	})
	if err != nil {
		return err
	}

	views := viewmodel.ReviewsFrom(reviewPage.Reviews)
	if len(views) == 0 {
		c.term.Info("No reviews found")
		return nil
	}

	rows := make([][]string, 0, len(views))
	for _, r := range views {
		rows = append(rows, []string{
			r.ID,
			stars(r.Rating),
			r.UserName,
			r.Comment,
			formatDate(r.CreatedAt),
		})
	}
	c.term.Table([]string{"ID", "RATING", "AUTHOR", "COMMENT", "DATE"}, rows)
	c.printPagination(page, len(rows), limit)
	return nil
}

// stars renders a 1-5 rating the way the reviews screen does.
func stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
