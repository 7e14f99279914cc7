// Package adminapi maps the restaurant platform's admin REST surface onto
// typed Go calls, one method per backend capability.
package adminapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/spicetable/admin-console/internal/restclient"
)

// Client is the domain facade over the authenticated HTTP client.
type Client struct {
	http *restclient.Client
}

func New(http *restclient.Client) *Client {
	return &Client{http: http}
}

// Login exchanges credentials for a bearer token. Storing the token is the
// caller's decision; a failed login must leave the store untouched.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := c.http.Post(ctx, "/admin/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return "", fmt.Errorf("adminapi: decode login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("adminapi: login response carried no token")
	}
	return resp.Token, nil
}

// Overview fetches the dashboard aggregate. The backend has been observed
// returning both `{data: {...}}` and the flat object; both shapes are
// accepted and normalized here.
func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	payload, err := c.http.Get(ctx, "/admin/analytics/overview")
	if err != nil {
		return nil, err
	}

	if data := gjson.GetBytes(payload, "data"); data.Exists() && data.Type != gjson.Null {
		payload = json.RawMessage(data.Raw)
	}

	var overview Overview
	if err := json.Unmarshal(payload, &overview); err != nil {
		return nil, fmt.Errorf("adminapi: decode overview: %w", err)
	}
	return &overview, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	payload, err := c.http.Get(ctx, "/admin/menu/categories")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Categories []Category `json:"categories"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode categories: %w", err)
	}
	return resp.Categories, nil
}

func (c *Client) CreateCategory(ctx context.Context, draft CategoryDraft) error {
	_, err := c.http.Post(ctx, "/admin/menu/category", draft)
	return err
}

func (c *Client) UpdateCategory(ctx context.Context, id string, draft CategoryDraft) error {
	_, err := c.http.Put(ctx, "/admin/menu/category/"+url.PathEscape(id), draft)
	return err
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	_, err := c.http.Delete(ctx, "/admin/menu/category/"+url.PathEscape(id))
	return err
}

func (c *Client) ListCategoryItems(ctx context.Context, categoryID string, page, limit int) (*ItemPage, error) {
	endpoint := "/admin/menu/categories/" + url.PathEscape(categoryID) + "/items?" + pageQuery(page, limit).Encode()
	payload, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var resp ItemPage
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode items: %w", err)
	}
	return &resp, nil
}

// CreateItem uploads a new menu item as multipart form data so the image
// travels with the plain fields.
func (c *Client) CreateItem(ctx context.Context, categoryID string, draft ItemDraft) error {
	form := draft.form()
	form.AddField("categoryId", categoryID)
	endpoint := "/admin/menu/categories/" + url.PathEscape(categoryID) + "/items"
	_, err := c.http.Request(ctx, "POST", endpoint, form, nil)
	return err
}

func (c *Client) UpdateItem(ctx context.Context, id string, draft ItemDraft) error {
	_, err := c.http.Request(ctx, "PUT", "/admin/menu/items/"+url.PathEscape(id), draft.form(), nil)
	return err
}

func (c *Client) DeleteItem(ctx context.Context, id string) error {
	_, err := c.http.Delete(ctx, "/admin/menu/items/"+url.PathEscape(id))
	return err
}

// ListOrders returns one page of orders. status is the lowercase filter
// value; the sentinel "all" (or "") sends no filter, anything else is
// capitalized to the backend's canonical form.
func (c *Client) ListOrders(ctx context.Context, page, limit int, status string) (*OrderPage, error) {
	q := pageQuery(page, limit)
	if status != "" && status != "all" {
		q.Set("status", Capitalize(status))
	}

	payload, err := c.http.Get(ctx, "/admin/orders?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp OrderPage
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode orders: %w", err)
	}
	return &resp, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	payload, err := c.http.Get(ctx, "/admin/orders/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	var resp struct {
		Order Order `json:"order"`
	}
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode order: %w", err)
	}
	return &resp.Order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	_, err := c.http.Put(ctx, "/admin/orders/"+url.PathEscape(id)+"/status", map[string]string{
		"status": Capitalize(status),
	})
	return err
}

func (c *Client) ListReservations(ctx context.Context, page, limit int) (*ReservationPage, error) {
	payload, err := c.http.Get(ctx, "/admin/reservations?"+pageQuery(page, limit).Encode())
	if err != nil {
		return nil, err
	}

	var resp ReservationPage
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode reservations: %w", err)
	}
	return &resp, nil
}

// GetReservation accepts both the `{reservation: {...}}` envelope and the
// flat record.
func (c *Client) GetReservation(ctx context.Context, id string) (*Reservation, error) {
	payload, err := c.http.Get(ctx, "/admin/reservation/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}

	if wrapped := gjson.GetBytes(payload, "reservation"); wrapped.Exists() && wrapped.IsObject() {
		payload = json.RawMessage(wrapped.Raw)
	}

	var reservation Reservation
	if err := json.Unmarshal(payload, &reservation); err != nil {
		return nil, fmt.Errorf("adminapi: decode reservation: %w", err)
	}
	return &reservation, nil
}

func (c *Client) UpdateReservationStatus(ctx context.Context, id, status string) error {
	_, err := c.http.Put(ctx, "/admin/reservation/"+url.PathEscape(id)+"/status", map[string]string{
		"status": Capitalize(status),
	})
	return err
}

func (c *Client) ListReviews(ctx context.Context, page, limit int) (*ReviewPage, error) {
	payload, err := c.http.Get(ctx, "/admin/reviews?"+pageQuery(page, limit).Encode())
	if err != nil {
		return nil, err
	}

	var resp ReviewPage
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("adminapi: decode reviews: %w", err)
	}
	return &resp, nil
}

func (c *Client) DeleteReview(ctx context.Context, id string) error {
	_, err := c.http.Delete(ctx, "/admin/reviews/"+url.PathEscape(id))
	return err
}

func (d ItemDraft) form() *restclient.MultipartForm {
	form := restclient.NewMultipartForm().
		AddField("name", d.Name).
		AddField("price", strconv.FormatFloat(d.Price, 'f', -1, 64)).
		AddField("description", d.Description).
		AddField("available", strconv.FormatBool(d.Available))
	if d.Image != nil {
		form.AddFile("image", d.Image.Filename, d.Image.Reader)
	}
	return form
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
