package availability

import (
	"booking-service/internal/app/config"
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	CalendarClient   contracts.CalendarClient
	ScheduleResolver contracts.ScheduleResolver
	ProcedureService contracts.ProcedureUsecase
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
	Location         *time.Location
	Log              *zap.Logger

	// now is swappable so the grid walk can be pinned in tests.
	now func() time.Time
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	calendarClient contracts.CalendarClient,
	scheduleResolver contracts.ScheduleResolver,
	procedureService contracts.ProcedureUsecase,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		availabilityUsecaseInstance = &availabilityUsecase{
			CalendarClient:   calendarClient,
			ScheduleResolver: scheduleResolver,
			ProcedureService: procedureService,
			RedisRepository:  redisRepository,
			InternalConfig:   internalConfig,
			Location:         location,
			Log:              logger,
			now:              time.Now,
		}
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) SlotsForDay(ctx context.Context, date time.Time, procedureID string) ([]models.Slot, error) {
	procedure, err := uc.findProcedure(ctx, procedureID)
	if err != nil {
		return nil, err
	}
	if procedure == nil {
		return []models.Slot{}, nil
	}

	day, err := uc.ScheduleResolver.Resolve(ctx, date)
	if err != nil {
		return nil, err
	}
	if day.Closed {
		return []models.Slot{}, nil
	}

	open, close := day.OpenInterval(uc.Location)
	busy, err := uc.busyIntervals(ctx, open, close)
	if err != nil {
		return nil, err
	}

	slots := ComputeSlots(open, close, uc.now().In(uc.Location), procedure.DurationMinutes, uc.InternalConfig.Booking.SlotStepMinutes, busy)
	return slots, nil
}

func (uc *availabilityUsecase) DaysWithAvailability(ctx context.Context, from, until time.Time, procedureID string) (map[string]bool, error) {
	days := make(map[string]bool)
	procedure, err := uc.findProcedure(ctx, procedureID)
	if err != nil {
		return nil, err
	}

	fromDay := utils.TruncateToDay(from, uc.Location)
	untilDay := utils.TruncateToDay(until, uc.Location)
	if procedure == nil {
		for d := fromDay; !d.After(untilDay); d = d.AddDate(0, 0, 1) {
			days[d.Format(constvars.DateOnlyLayout)] = false
		}
		return days, nil
	}

	// One free/busy fetch for the whole range; per-day filtering happens
	// locally to keep the calendar call count flat.
	busy, err := uc.busyIntervals(ctx, fromDay, untilDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.Location)
	for d := fromDay; !d.After(untilDay); d = d.AddDate(0, 0, 1) {
		dateKey := d.Format(constvars.DateOnlyLayout)
		day, err := uc.ScheduleResolver.Resolve(ctx, d)
		if err != nil {
			return nil, err
		}
		if day.Closed {
			days[dateKey] = false
			continue
		}
		open, close := day.OpenInterval(uc.Location)
		days[dateKey] = HasAnySlot(open, close, now, procedure.DurationMinutes, uc.InternalConfig.Booking.SlotStepMinutes, busy)
	}
	return days, nil
}

// findProcedure resolves the catalog entry; an unknown ID yields nil without
// an error, which callers render as "no availability".
func (uc *availabilityUsecase) findProcedure(ctx context.Context, procedureID string) (*models.Procedure, error) {
	procedures, err := uc.ProcedureService.ListProcedures(ctx)
	if err != nil {
		return nil, err
	}
	for i := range procedures {
		if procedures[i].ID == procedureID {
			return &procedures[i], nil
		}
	}
	return nil, nil
}

func (uc *availabilityUsecase) busyIntervals(ctx context.Context, from, until time.Time) ([]models.BusyInterval, error) {
	cacheKey := fmt.Sprintf("%s%d:%d", constvars.RedisKeyBusyPrefix, from.Unix(), until.Unix())

	if raw, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && raw != "" {
		var cached []models.BusyInterval
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	}

	busy, err := uc.CalendarClient.FreeBusy(ctx, from, until)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, cacheKey, busy, constvars.BusyCacheTTL); err != nil {
		uc.Log.Warn("failed to cache busy intervals", zap.Error(err))
	}
	return busy, nil
}

// ComputeSlots walks the step grid across one open day and returns every
// candidate that fits entirely before closing, starts no earlier than now,
// and touches no busy interval. Comparisons are half-open, so a slot may end
// exactly when a busy block starts.
func ComputeSlots(open, close, now time.Time, durationMinutes, stepMinutes int, busy []models.BusyInterval) []models.Slot {
	slots := []models.Slot{}
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return slots
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	for start := open; ; start = start.Add(step) {
		end := start.Add(duration)
		if end.After(close) {
			break
		}
		if start.Before(now) {
			continue
		}
		if overlapsAny(start, end, busy) {
			continue
		}
		slots = append(slots, models.NewSlot(start, end))
	}
	return slots
}

// HasAnySlot is ComputeSlots with an early exit, for day-level summaries.
func HasAnySlot(open, close, now time.Time, durationMinutes, stepMinutes int, busy []models.BusyInterval) bool {
	if durationMinutes <= 0 || stepMinutes <= 0 {
		return false
	}

	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(stepMinutes) * time.Minute

	for start := open; ; start = start.Add(step) {
		end := start.Add(duration)
		if end.After(close) {
			return false
		}
		if start.Before(now) {
			continue
		}
		if !overlapsAny(start, end, busy) {
			return true
		}
	}
}

func overlapsAny(start, end time.Time, busy []models.BusyInterval) bool {
	for _, interval := range busy {
		if utils.Overlaps(start, end, interval.Start, interval.End) {
			return true
		}
	}
	return false
}
