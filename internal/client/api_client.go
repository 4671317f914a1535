// Package client is a Go client for the labour-reporting HTTP API, for
// entry-form frontends and scripts that cannot mount the storage directory
// themselves.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"hangarops/labour-reporting/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Summary mirrors the API's per-day summary payload.
type Summary struct {
	User            string                  `json:"user"`
	Date            string                  `json:"date"`
	WorkOrderTotals []models.WorkOrderTotal `json:"work_order_totals"`
	TotalHours      float64                 `json:"total_hours"`
}

// SubmitOccupation records one entry, authorizing with the roster pin.
func (c *Client) SubmitOccupation(req models.SubmissionRequest, pin string) (models.OccupationRecord, error) {
	payload := struct {
		models.SubmissionRequest
		PIN string `json:"pin"`
	}{req, pin}

	var rec models.OccupationRecord
	if err := c.do(http.MethodPost, "/api/v1/occupations", nil, payload, &rec); err != nil {
		return models.OccupationRecord{}, err
	}
	return rec, nil
}

// Day fetches user's reconstructed sheet for date (today when empty).
func (c *Client) Day(user, date string) (models.DaySheet, error) {
	var sheet models.DaySheet
	err := c.do(http.MethodGet, "/api/v1/occupations", dayQuery(user, date), nil, &sheet)
	return sheet, err
}

// Summary fetches user's per-work-order totals for date.
func (c *Client) Summary(user, date string) (Summary, error) {
	var s Summary
	err := c.do(http.MethodGet, "/api/v1/occupations/summary", dayQuery(user, date), nil, &s)
	return s, err
}

// Rebuild regenerates date's aggregate from the per-user logs and returns
// the record count written.
func (c *Client) Rebuild(date string) (int, error) {
	q := url.Values{}
	if date != "" {
		q.Set("date", date)
	}
	var resp map[string]int
	if err := c.do(http.MethodPost, "/api/v1/occupations/rebuild", q, nil, &resp); err != nil {
		return 0, err
	}
	return resp["records"], nil
}

// Employees lists the roster names.
func (c *Client) Employees() ([]string, error) {
	var names []string
	err := c.do(http.MethodGet, "/api/v1/employees", nil, nil, &names)
	return names, err
}

// HealthCheck checks if the server is reachable.
func (c *Client) HealthCheck() error {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}
	return nil
}

func dayQuery(user, date string) url.Values {
	q := url.Values{}
	q.Set("user", user)
	if date != "" {
		q.Set("date", date)
	}
	return q
}

func (c *Client) do(method, path string, query url.Values, payload, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("server returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &AuthError{Message: msg, StatusCode: resp.StatusCode}
		case http.StatusBadRequest:
			return &ValidationError{Message: msg, StatusCode: resp.StatusCode}
		default:
			c.logger.Error("Server error",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status_code", resp.StatusCode),
			)
			return &ServerError{Message: msg, StatusCode: resp.StatusCode}
		}
	}

	c.logger.Debug("Request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(startTime)),
	)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// Error types
type AuthError struct {
	Message    string
	StatusCode int
}

func (e *AuthError) Error() string {
	return e.Message
}

type ValidationError struct {
	Message    string
	StatusCode int
}

func (e *ValidationError) Error() string {
	return e.Message
}

type ServerError struct {
	Message    string
	StatusCode int
}

func (e *ServerError) Error() string {
	return e.Message
}
