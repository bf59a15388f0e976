package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/timeclock/kiosk/internal/logging"
	"github.com/timeclock/kiosk/internal/ports"
)

// DefaultTimeout bounds each directory call
const DefaultTimeout = 10 * time.Second

// maxBodySize caps how much of a response is read
const maxBodySize = 4 << 20

// Endpoints holds one fixed URL per directory operation
type Endpoints struct {
	ClockIn      string
	ClockOut     string
	EndBreak     string
	GetEmployees string
	StartBreak   string
}

// EndpointsFromBase derives the default endpoint URLs from a base URL
func EndpointsFromBase(base string) Endpoints {
	base = strings.TrimRight(base, "/")
	return Endpoints{
		ClockIn:      base + "/clock-in",
		ClockOut:     base + "/clock-out",
		EndBreak:     base + "/end-break",
		GetEmployees: base + "/get-employees",
		StartBreak:   base + "/start-break",
	}
}

// Validate checks every endpoint is set
func (e Endpoints) Validate() error {
	missing := []string{}
	for name, url := range map[string]string{
		"clock_in":      e.ClockIn,
		"clock_out":     e.ClockOut,
		"end_break":     e.EndBreak,
		"get_employees": e.GetEmployees,
		"start_break":   e.StartBreak,
	} {
		if url == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("directory endpoints not configured: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Options configures a Client
type Options struct {
	Endpoints Endpoints
	Timeout   time.Duration
	Token     string // Bearer token, optional
	Transport http.RoundTripper
}

// Client is the HTTP/JSON implementation of ports.DirectoryClient.
// It never retries.
type Client struct {
	endpoints Endpoints
	http      *http.Client
}

var _ ports.DirectoryClient = (*Client)(nil)

// NewClient creates a directory client
func NewClient(opts Options) (*Client, error) {
	if err := opts.Endpoints.Validate(); err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	if opts.Token != "" {
		transport = &oauth2.Transport{
			Base:   transport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token, TokenType: "Bearer"}),
		}
	}

	return &Client{
		endpoints: opts.Endpoints,
		http:      &http.Client{Transport: transport, Timeout: timeout},
	}, nil
}

// GetEmployees fetches the roster
func (c *Client) GetEmployees(ctx context.Context) ([]ports.DirectoryEmployee, error) {
	body, err := c.call(ctx, http.MethodGet, c.endpoints.GetEmployees, nil)
	if err != nil {
		return nil, err
	}

	entries, err := decodeEmployees(body)
	if err != nil {
		return nil, &CallError{Endpoint: c.endpoints.GetEmployees, Reason: err.Error()}
	}

	employees := make([]ports.DirectoryEmployee, 0, len(entries))
	for _, entry := range entries {
		timesheetID := entry.TimesheetID
		if timesheetID == "" {
			timesheetID = entry.CurrentTimesheetID
		}
		employees = append(employees, ports.DirectoryEmployee{
			Active:      entry.Active,
			ID:          string(entry.ID),
			Name:        entry.Name,
			OnBreak:     entry.OnBreak,
			PinCode:     entry.PinCode,
			Status:      entry.Status,
			TimesheetID: string(timesheetID),
		})
	}
	return employees, nil
}

// ClockIn opens a timesheet and returns its id
func (c *Client) ClockIn(ctx context.Context, req ports.ClockInRequest) (string, error) {
	body, err := c.call(ctx, http.MethodPost, c.endpoints.ClockIn, ClockInPayload{
		ClockInTimestamp: Timestamp(req.Timestamp),
		EmployeeID:       req.EmployeeID,
		EmployeeName:     req.EmployeeName,
	})
	if err != nil {
		return "", err
	}

	var resp ClockInResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &CallError{Endpoint: c.endpoints.ClockIn, Reason: fmt.Sprintf("invalid response: %v", err)}
	}
	if resp.TimesheetID == "" {
		return "", &CallError{Endpoint: c.endpoints.ClockIn, Reason: "response has no timesheetId"}
	}
	return string(resp.TimesheetID), nil
}

// ClockOut closes the timesheet
func (c *Client) ClockOut(ctx context.Context, req ports.TimesheetRequest) error {
	_, err := c.call(ctx, http.MethodPost, c.endpoints.ClockOut, ClockOutPayload{
		ClockOutTimestamp: Timestamp(req.Timestamp),
		TimesheetID:       req.TimesheetID,
	})
	return err
}

// StartBreak records the start of a break
func (c *Client) StartBreak(ctx context.Context, req ports.TimesheetRequest) error {
	_, err := c.call(ctx, http.MethodPost, c.endpoints.StartBreak, StartBreakPayload{
		BreakStartTimestamp: Timestamp(req.Timestamp),
		TimesheetID:         req.TimesheetID,
	})
	return err
}

// EndBreak records the end of a break
func (c *Client) EndBreak(ctx context.Context, req ports.TimesheetRequest) error {
	_, err := c.call(ctx, http.MethodPost, c.endpoints.EndBreak, EndBreakPayload{
		BreakEndTimestamp: Timestamp(req.Timestamp),
		TimesheetID:       req.TimesheetID,
	})
	return err
}

// call performs one round trip. Transport errors and non-2xx answers
// both come back as *CallError.
func (c *Client) call(ctx context.Context, method, endpoint string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &CallError{Endpoint: endpoint, Reason: fmt.Sprintf("failed to encode request: %v", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, &CallError{Endpoint: endpoint, Reason: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Logger.Warn("Directory call failed", "endpoint", endpoint, "error", err)
		return nil, &CallError{Endpoint: endpoint, Reason: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &CallError{Endpoint: endpoint, Reason: fmt.Sprintf("failed to read response: %v", err)}
	}

	logging.Logger.Debug("Directory call",
		"endpoint", endpoint,
		"method", method,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		callErr := &CallError{
			Endpoint:   endpoint,
			Reason:     statusReason(resp.StatusCode, body),
			StatusCode: resp.StatusCode,
		}
		logging.Logger.Warn("Directory call rejected", "endpoint", endpoint, "status", resp.StatusCode, "error", callErr)
		return nil, callErr
	}
	return body, nil
}

// statusReason builds a human-readable reason from a non-2xx answer
func statusReason(code int, body []byte) string {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return fmt.Sprintf("HTTP %d: %s", code, errResp.Error)
	}
	return fmt.Sprintf("HTTP %d %s", code, http.StatusText(code))
}
