// Package client is a cache-aware Go client for the dashboard API.
//
// Reads are cached per endpoint path and date range. Creating, updating
// or deleting a campaign invalidates every cached campaign query once the
// server acknowledges the change. Concurrent identical reads share one
// request, but each call is cancelled by its own context only. Nothing is
// retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/juju/errors"
	"golang.org/x/sync/singleflight"

	"adpulse/internal/core/domain"
)

const campaignsPath = "/api/campaigns"

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the dashboard API.
type Client struct {
	baseURL string
	hc      *http.Client
	cache   *queryCache
	group   singleflight.Group
}

// New returns a client for the API rooted at baseURL. A nil hc uses
// http.DefaultClient.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
		cache:   newQueryCache(),
	}
}

// Metrics returns the latest metrics for r. The result is nil when the
// server has no snapshot.
func (c *Client) Metrics(ctx context.Context, r domain.DateRange) (*domain.Metrics, error) {
	var m *domain.Metrics
	if err := c.query(ctx, "/api/metrics", r, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// Campaigns lists campaigns scaled to r.
func (c *Client) Campaigns(ctx context.Context, r domain.DateRange) ([]domain.Campaign, error) {
	var list []domain.Campaign
	if err := c.query(ctx, campaignsPath, r, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Campaign fetches one campaign.
func (c *Client) Campaign(ctx context.Context, id string) (domain.Campaign, error) {
	var camp domain.Campaign
	if err := c.query(ctx, campaignsPath+"/"+url.PathEscape(id), domain.DateRange{}, &camp); err != nil {
		return domain.Campaign{}, err
	}
	return camp, nil
}

// Chart fetches the chart of chartType scaled to r.
func (c *Client) Chart(ctx context.Context, chartType string, r domain.DateRange) (domain.ChartData, error) {
	var chart domain.ChartData
	if err := c.query(ctx, "/api/charts/"+url.PathEscape(chartType), r, &chart); err != nil {
		return domain.ChartData{}, err
	}
	return chart, nil
}

// CreateCampaign creates a campaign and invalidates cached campaign
// queries.
func (c *Client) CreateCampaign(ctx context.Context, in domain.CampaignInput) (domain.Campaign, error) {
	var camp domain.Campaign
	if err := c.mutate(ctx, http.MethodPost, campaignsPath, in, http.StatusCreated, &camp); err != nil {
		return domain.Campaign{}, err
	}
	return camp, nil
}

// UpdateCampaign applies patch and invalidates cached campaign queries.
func (c *Client) UpdateCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (domain.Campaign, error) {
	var camp domain.Campaign
	if err := c.mutate(ctx, http.MethodPut, campaignsPath+"/"+url.PathEscape(id), patch, http.StatusOK, &camp); err != nil {
		return domain.Campaign{}, err
	}
	return camp, nil
}

// DeleteCampaign deletes a campaign and invalidates cached campaign
// queries.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	return c.mutate(ctx, http.MethodDelete, campaignsPath+"/"+url.PathEscape(id), nil, http.StatusNoContent, nil)
}

// query serves GET requests from the cache, coalescing concurrent misses
// for the same key. Callers only share a fetch when they saw the same cache
// generation, so a read issued after an acknowledged mutation never joins
// an older fetch. The shared fetch outlives any single caller; each caller
// stops waiting when its own ctx is done.
func (c *Client) query(ctx context.Context, path string, r domain.DateRange, dst any) error {
	key := cacheKey(path, r)
	body, ok := c.cache.get(key)
	if !ok {
		if err := ctx.Err(); err != nil {
			return errors.Annotatef(err, "GET %s", key)
		}
		gen := c.cache.generation()
		fetchCtx := context.WithoutCancel(ctx)
		ch := c.group.DoChan(fmt.Sprintf("%d|%s", gen, key), func() (any, error) {
			b, err := c.do(fetchCtx, http.MethodGet, key, nil, http.StatusOK)
			if err != nil {
				return nil, err
			}
			c.cache.setIf(gen, key, b)
			return b, nil
		})
		select {
		case <-ctx.Done():
			return errors.Annotatef(ctx.Err(), "GET %s", key)
		case res := <-ch:
			if res.Err != nil {
				return res.Err
			}
			body = res.Val.([]byte)
		}
	}
	return errors.Annotatef(json.Unmarshal(body, dst), "decoding %s", path)
}

func (c *Client) mutate(ctx context.Context, method, path string, in any, want int, dst any) error {
	var payload []byte
	if in != nil {
		var err error
		if payload, err = json.Marshal(in); err != nil {
			return errors.Trace(err)
		}
	}
	body, err := c.do(ctx, method, path, payload, want)
	if err != nil {
		return err
	}
	c.cache.invalidate(campaignsPath)
	if dst == nil {
		return nil
	}
	return errors.Annotatef(json.Unmarshal(body, dst), "decoding %s", path)
}

// do performs one request and returns the body when the status is want.
func (c *Client) do(ctx context.Context, method, pathAndQuery string, payload []byte, want int) ([]byte, error) {
	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+pathAndQuery, rd)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, errors.Annotatef(err, "%s %s", method, pathAndQuery)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s %s", method, pathAndQuery)
	}
	if resp.StatusCode == want {
		return body, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	var e struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &e) == nil && e.Error != "" {
		apiErr.Message = e.Error
	}
	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, errors.NewNotFound(apiErr, apiErr.Message)
	case http.StatusBadRequest:
		return nil, errors.NewNotValid(apiErr, apiErr.Message)
	default:
		return nil, apiErr
	}
}

// cacheKey is the request path plus the encoded range, which is also the
// URL that gets fetched.
func cacheKey(path string, r domain.DateRange) string {
	q := url.Values{}
	if r.From != nil {
		q.Set("from", r.From.Format(time.RFC3339))
	}
	if r.To != nil {
		q.Set("to", r.To.Format(time.RFC3339))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
