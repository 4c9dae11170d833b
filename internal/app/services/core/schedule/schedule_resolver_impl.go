package schedule

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// staleRulesTTL keeps a last-known-good copy of the rules around far past
// their freshness window, so a sheet outage degrades to slightly stale
// opening hours instead of a closed business.
const staleRulesTTL = 24 * time.Hour

type cachedRules struct {
	Rules     models.ScheduleRules `json:"rules"`
	FetchedAt time.Time            `json:"fetchedAt"`
}

type scheduleResolver struct {
	SheetClient     contracts.SheetClient
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	scheduleResolverInstance contracts.ScheduleResolver
	onceScheduleResolver     sync.Once
)

func NewScheduleResolver(
	sheetClient contracts.SheetClient,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ScheduleResolver {
	onceScheduleResolver.Do(func() {
		scheduleResolverInstance = &scheduleResolver{
			SheetClient:     sheetClient,
			RedisRepository: redisRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return scheduleResolverInstance
}

func (r *scheduleResolver) Resolve(ctx context.Context, date time.Time) (models.DaySchedule, error) {
	rules, err := r.rules(ctx)
	if err != nil {
		return models.DaySchedule{}, err
	}
	return ResolveDay(*rules, date), nil
}

// rules returns the current schedule rules, preferring a fresh cached copy,
// then the sheet, then a stale cached copy if the sheet is down.
func (r *scheduleResolver) rules(ctx context.Context) (*models.ScheduleRules, error) {
	cached := r.readCache(ctx)
	if cached != nil && time.Since(cached.FetchedAt) < constvars.ScheduleCacheTTL {
		return &cached.Rules, nil
	}

	rules, err := r.SheetClient.ScheduleRules(ctx)
	if err != nil {
		if cached != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			r.Log.Warn("sheet unavailable, serving stale schedule rules",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return &cached.Rules, nil
		}
		return nil, err
	}

	entry := cachedRules{Rules: *rules, FetchedAt: time.Now()}
	if cacheErr := r.RedisRepository.Set(ctx, constvars.RedisKeySchedulePrefix+"rules", entry, staleRulesTTL); cacheErr != nil {
		r.Log.Warn("failed to cache schedule rules", zap.Error(cacheErr))
	}
	return rules, nil
}

func (r *scheduleResolver) readCache(ctx context.Context) *cachedRules {
	raw, err := r.RedisRepository.Get(ctx, constvars.RedisKeySchedulePrefix+"rules")
	if err != nil || raw == "" {
		return nil
	}
	var entry cachedRules
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return nil
	}
	return &entry
}

// ResolveDay applies the rule precedence for one calendar date: a matching
// exception wins entirely over the weekly rule, a closure or malformed hours
// text means closed, and a weekday with no rule at all means closed.
func ResolveDay(rules models.ScheduleRules, date time.Time) models.DaySchedule {
	day := models.DaySchedule{Date: date, Closed: true}
	dateKey := date.Format(constvars.DateOnlyLayout)

	for _, exception := range rules.Exceptions {
		if exception.Date != dateKey {
			continue
		}
		if exception.Closed {
			return day
		}
		open, close, ok := models.ParseHoursRange(exception.Hours)
		if !ok {
			return day
		}
		day.Open, day.Close, day.Closed = open, close, false
		return day
	}

	for _, weekly := range rules.Weekly {
		if weekly.Weekday != date.Weekday() {
			continue
		}
		open, close, ok := models.ParseHoursRange(weekly.Hours)
		if !ok {
			return day
		}
		day.Open, day.Close, day.Closed = open, close, false
		return day
	}

	return day
}
