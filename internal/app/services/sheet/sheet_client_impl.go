package sheet

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

type sheetClient struct {
	BaseUrl string
	ApiKey  string
	http    *http.Client
}

func NewSheetClient(cfg config.Sheet) contracts.SheetClient {
	return &sheetClient{
		BaseUrl: cfg.BaseUrl,
		ApiKey:  cfg.ApiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// scheduleRulesDTO mirrors the published sheet ranges. Weekday names and hour
// text come straight from operator-edited cells, so parsing stays lenient.
type scheduleRulesDTO struct {
	Weekly []struct {
		Weekday string `json:"weekday"`
		Hours   string `json:"hours"`
	} `json:"weekly"`
	Exceptions []struct {
		Date   string `json:"date"`
		Hours  string `json:"hours"`
		Closed bool   `json:"closed"`
	} `json:"exceptions"`
}

func (c *sheetClient) ScheduleRules(ctx context.Context) (*models.ScheduleRules, error) {
	body, err := c.do(ctx, c.BaseUrl+"/schedule", "schedule rules")
	if err != nil {
		return nil, err
	}

	var dto scheduleRulesDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "schedule rules")
	}

	rules := &models.ScheduleRules{}
	for _, w := range dto.Weekly {
		weekday, ok := parseWeekday(w.Weekday)
		if !ok {
			// Unknown weekday text is operator noise; skip the row rather
			// than failing the whole ruleset.
			continue
		}
		rules.Weekly = append(rules.Weekly, models.WeeklyRule{Weekday: weekday, Hours: w.Hours})
	}
	for _, e := range dto.Exceptions {
		rules.Exceptions = append(rules.Exceptions, models.ExceptionRule{Date: e.Date, Hours: e.Hours, Closed: e.Closed})
	}
	return rules, nil
}

func (c *sheetClient) ListProcedures(ctx context.Context) ([]models.Procedure, error) {
	body, err := c.do(ctx, c.BaseUrl+"/procedures", "procedures")
	if err != nil {
		return nil, err
	}

	var result struct {
		Items []models.Procedure `json:"items"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "procedures")
	}

	procedures := make([]models.Procedure, 0, len(result.Items))
	for _, p := range result.Items {
		if p.ID == "" || p.DurationMinutes <= 0 {
			continue
		}
		procedures = append(procedures, p)
	}
	return procedures, nil
}

func (c *sheetClient) do(ctx context.Context, endpoint, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if c.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.ApiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrSheetStatus(fmt.Errorf("unexpected status"), resp.StatusCode, operation)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, operation)
	}
	return body, nil
}

func parseWeekday(s string) (time.Weekday, bool) {
	switch normalizeToken(s) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return time.Sunday, false
}
