package calendar

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type calendarClient struct {
	BaseUrl string
	ApiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

func NewCalendarClient(cfg config.Calendar) contracts.CalendarClient {
	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &calendarClient{
		BaseUrl: cfg.BaseUrl,
		ApiKey:  cfg.ApiKey,
		http:    &http.Client{Timeout: 15 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type freeBusyResponse struct {
	Busy []struct {
		Start time.Time `json:"start"`
		End   time.Time `json:"end"`
	} `json:"busy"`
}

func (c *calendarClient) FreeBusy(ctx context.Context, from, until time.Time) ([]models.BusyInterval, error) {
	endpoint := fmt.Sprintf("%s/freebusy?timeMin=%s&timeMax=%s",
		c.BaseUrl,
		url.QueryEscape(from.Format(time.RFC3339)),
		url.QueryEscape(until.Format(time.RFC3339)),
	)

	body, err := c.do(ctx, constvars.MethodGet, endpoint, nil, "freebusy")
	if err != nil {
		return nil, err
	}

	var result freeBusyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "freebusy")
	}

	intervals := make([]models.BusyInterval, 0, len(result.Busy))
	for _, b := range result.Busy {
		intervals = append(intervals, models.BusyInterval{Start: b.Start, End: b.End})
	}
	return intervals, nil
}

type listEventsResponse struct {
	Items []rawEventDTO `json:"items"`
}

type rawEventDTO struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Start       struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"end"`
}

func (d rawEventDTO) toRawEvent() contracts.RawEvent {
	return contracts.RawEvent{
		ID:          d.ID,
		Summary:     d.Summary,
		Description: d.Description,
		Status:      d.Status,
		Start:       d.Start.DateTime,
		End:         d.End.DateTime,
	}
}

func (c *calendarClient) ListEvents(ctx context.Context, from, until time.Time) ([]contracts.RawEvent, error) {
	endpoint := fmt.Sprintf("%s/events?timeMin=%s&timeMax=%s&singleEvents=true",
		c.BaseUrl,
		url.QueryEscape(from.Format(time.RFC3339)),
		url.QueryEscape(until.Format(time.RFC3339)),
	)

	body, err := c.do(ctx, constvars.MethodGet, endpoint, nil, "list events")
	if err != nil {
		return nil, err
	}

	var result listEventsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "list events")
	}

	events := make([]contracts.RawEvent, 0, len(result.Items))
	for _, item := range result.Items {
		if item.Status == "cancelled" {
			continue
		}
		events = append(events, item.toRawEvent())
	}
	return events, nil
}

func (c *calendarClient) CreateEvent(ctx context.Context, input contracts.CreateEventInput) (*contracts.RawEvent, error) {
	payload := map[string]any{
		"summary":     input.Summary,
		"description": input.Description,
		"start":       map[string]any{"dateTime": input.Start.Format(time.RFC3339)},
		"end":         map[string]any{"dateTime": input.End.Format(time.RFC3339)},
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	body, err := c.do(ctx, constvars.MethodPost, c.BaseUrl+"/events", requestJSON, "create event")
	if err != nil {
		return nil, err
	}

	var dto rawEventDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "create event")
	}
	event := dto.toRawEvent()
	return &event, nil
}

func (c *calendarClient) UpdateEvent(ctx context.Context, eventID string, patch contracts.EventPatch) (*contracts.RawEvent, error) {
	payload := map[string]any{}
	if patch.Summary != nil {
		payload["summary"] = *patch.Summary
	}
	if patch.Description != nil {
		payload["description"] = *patch.Description
	}
	if patch.Start != nil {
		payload["start"] = map[string]any{"dateTime": patch.Start.Format(time.RFC3339)}
	}
	if patch.End != nil {
		payload["end"] = map[string]any{"dateTime": patch.End.Format(time.RFC3339)}
	}
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	body, err := c.do(ctx, constvars.MethodPatch, c.BaseUrl+"/events/"+url.PathEscape(eventID), requestJSON, "update event")
	if err != nil {
		return nil, err
	}

	var dto rawEventDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "update event")
	}
	event := dto.toRawEvent()
	return &event, nil
}

func (c *calendarClient) DeleteEvent(ctx context.Context, eventID string) error {
	_, err := c.do(ctx, constvars.MethodDelete, c.BaseUrl+"/events/"+url.PathEscape(eventID), nil, "delete event")
	return err
}

// do performs a throttled request and maps non-2xx statuses onto error
// kinds: 409 stays a conflict, 404 a vanished booking, 429 a rate limit,
// anything else a calendar-side failure. Reads get one retry on transient
// failures; writes never do, a lost response may still have landed.
func (c *calendarClient) do(ctx context.Context, method, endpoint string, payload []byte, operation string) ([]byte, error) {
	body, err := c.attempt(ctx, method, endpoint, payload, operation)
	if err != nil && method == constvars.MethodGet && exceptions.IsHTTPErrRetryable(err) {
		body, err = c.attempt(ctx, method, endpoint, payload, operation)
	}
	return body, err
}

func (c *calendarClient) attempt(ctx context.Context, method, endpoint string, payload []byte, operation string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewBuffer(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.ApiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, operation)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return nil, exceptions.ErrCalendarStatus(fmt.Errorf("%s", bytes.TrimSpace(body)), resp.StatusCode, operation)
	}

	return body, nil
}
