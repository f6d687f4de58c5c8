package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 15 * time.Second

// APIError describes a non-2xx CMS response.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("strapi API error: status %d, body: %s", e.Status, e.Body)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Client talks to the headless CMS REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient builds a Client for the given CMS base URL. The token is
// optional: without it the client relies on public read permissions.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL exposes the configured CMS base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// requestOpts captures inputs for a single CMS API call.
type requestOpts struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do executes one API request and returns the raw response body. Any
// non-2xx status is returned as an *APIError; failures are never swallowed.
func (c *Client) do(ctx context.Context, opts requestOpts) ([]byte, error) {
	target := c.baseURL + "/api/" + strings.TrimLeft(opts.path, "/")
	if len(opts.query) > 0 {
		target += "?" + opts.query.Encode()
	}

	var bodyReader io.Reader
	if opts.body != nil {
		payload, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func decodeList[T any](body []byte) ([]T, error) {
	var env Envelope[[]T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return env.Data, nil
}

func decodeOne[T any](body []byte) (*T, error) {
	var env Envelope[*T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return env.Data, nil
}

// writePayload wraps a write body in the envelope the CMS expects.
type writePayload struct {
	Data any `json:"data"`
}

// ListCategories returns categories matching the query.
func (c *Client) ListCategories(ctx context.Context, q *ListQuery) ([]Category, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodGet, path: "categories", query: q.Values()})
	if err != nil {
		return nil, err
	}
	return decodeList[Category](body)
}

// CreateCategory creates a category and returns the stored record.
func (c *Client) CreateCategory(ctx context.Context, input CategoryInput) (*Category, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPost, path: "categories", body: writePayload{Data: input}})
	if err != nil {
		return nil, err
	}
	return decodeOne[Category](body)
}

// ListProducts returns products matching the query.
func (c *Client) ListProducts(ctx context.Context, q *ListQuery) ([]Product, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodGet, path: "products", query: q.Values()})
	if err != nil {
		return nil, err
	}
	return decodeList[Product](body)
}

// CreateProduct creates a product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPost, path: "products", body: writePayload{Data: input}})
	if err != nil {
		return nil, err
	}
	return decodeOne[Product](body)
}

// UpdateProduct updates the product identified by documentID.
func (c *Client) UpdateProduct(ctx context.Context, documentID string, update ProductUpdate) (*Product, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPut, path: "products/" + documentID, body: writePayload{Data: update}})
	if err != nil {
		return nil, err
	}
	return decodeOne[Product](body)
}

// ListGalleryImages returns gallery entries matching the query.
func (c *Client) ListGalleryImages(ctx context.Context, q *ListQuery) ([]GalleryImage, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodGet, path: "gallery-images", query: q.Values()})
	if err != nil {
		return nil, err
	}
	return decodeList[GalleryImage](body)
}

// CreateGalleryImage creates a gallery entry and returns the stored record.
func (c *Client) CreateGalleryImage(ctx context.Context, input GalleryImageInput) (*GalleryImage, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPost, path: "gallery-images", body: writePayload{Data: input}})
	if err != nil {
		return nil, err
	}
	return decodeOne[GalleryImage](body)
}

// DeleteGalleryImage removes the gallery entry identified by documentID.
func (c *Client) DeleteGalleryImage(ctx context.Context, documentID string) error {
	_, err := c.do(ctx, requestOpts{method: http.MethodDelete, path: "gallery-images/" + documentID})
	return err
}

// ListTestimonials returns testimonials matching the query.
func (c *Client) ListTestimonials(ctx context.Context, q *ListQuery) ([]Testimonial, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodGet, path: "testimonials", query: q.Values()})
	if err != nil {
		return nil, err
	}
	return decodeList[Testimonial](body)
}

// GetSiteSettings fetches the site settings singleton. A missing singleton
// is reported as (nil, nil), not an error, so callers can distinguish
// "not yet created" from a failed call.
func (c *Client) GetSiteSettings(ctx context.Context, q *ListQuery) (*SiteSettings, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodGet, path: "site-setting", query: q.Values()})
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return decodeOne[SiteSettings](body)
}

// CreateSiteSettings creates the site settings singleton.
func (c *Client) CreateSiteSettings(ctx context.Context, input SiteSettingsInput) (*SiteSettings, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPost, path: "site-setting", body: writePayload{Data: input}})
	if err != nil {
		return nil, err
	}
	return decodeOne[SiteSettings](body)
}

// UpdateSiteSettings replaces the site settings singleton with the full
// payload.
func (c *Client) UpdateSiteSettings(ctx context.Context, input SiteSettingsInput) (*SiteSettings, error) {
	body, err := c.do(ctx, requestOpts{method: http.MethodPut, path: "site-setting", body: writePayload{Data: input}})
	if err != nil {
		return nil, err
	}
	return decodeOne[SiteSettings](body)
}

// Upload sends one file to the CMS media library via a multipart request
// and returns the created asset.
func (c *Client) Upload(ctx context.Context, fileName string, content io.Reader) (*Image, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("files", fileName)
	if err != nil {
		return nil, fmt.Errorf("create multipart field: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("copy file content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute upload request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	// The upload endpoint returns a bare array of created assets.
	var assets []Image
	if err := json.Unmarshal(respBody, &assets); err != nil {
		return nil, fmt.Errorf("unmarshal upload response: %w", err)
	}
	if len(assets) == 0 {
		return nil, errors.New("upload response contained no assets")
	}

	return &assets[0], nil
}
