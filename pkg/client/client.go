// Package client HTTP-клиент API каталога Shoesclean.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config адрес API и таймаут запросов. BaseURL задаётся явно, например "http://localhost:8787".
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New создаёт клиент API.
func New(cfg Config) (*Client, error) {
	const op = "client.New"
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%s: invalid base url %q", op, cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// envelope общие поля ответа API.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		var b bytes.Buffer
		if err := json.NewEncoder(&b).Encode(body); err != nil {
			return nil, err
		}
		buf = &b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do выполняет запрос и раскладывает тело ответа в out.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
		}
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || (env.Success != nil && !*env.Success) {
		msg := env.Error
		if msg == "" {
			msg = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// ListServices возвращает страницу услуг.
func (c *Client) ListServices(ctx context.Context, opts ListOptions) (*ServiceList, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", opts.SortOrder)
	}
	path := "/api/services"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var list ServiceList
	if err := c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetService(ctx context.Context, id int) (*Service, error) {
	var resp struct {
		Service Service `json:"service"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/services/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Service, nil
}

func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*Service, error) {
	var resp struct {
		Service Service `json:"service"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/services", in, &resp); err != nil {
		return nil, err
	}
	return &resp.Service, nil
}

func (c *Client) UpdateService(ctx context.Context, id int, in ServiceInput) (*Service, error) {
	var resp struct {
		Service Service `json:"service"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/services/"+strconv.Itoa(id), in, &resp); err != nil {
		return nil, err
	}
	return &resp.Service, nil
}

// DeleteService удаляет услугу и возвращает удалённую запись.
func (c *Client) DeleteService(ctx context.Context, id int) (*Service, error) {
	var resp struct {
		DeletedService Service `json:"deletedService"`
	}
	if err := c.do(ctx, http.MethodDelete, "/api/services/"+strconv.Itoa(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.DeletedService, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var resp struct {
		Stats Stats `json:"stats"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/services/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Stats, nil
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Ping проверяет, что корневой маршрут отвечает 2xx. Тело ответа не разбирается.
func (c *Client) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	}
	return nil
}
