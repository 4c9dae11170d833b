package matcher

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/utils"
	"sync"
	"time"
)

type bookingMatcher struct {
	now func() time.Time
}

var (
	bookingMatcherInstance contracts.BookingMatcher
	onceBookingMatcher     sync.Once
)

func NewBookingMatcher() contracts.BookingMatcher {
	onceBookingMatcher.Do(func() {
		bookingMatcherInstance = &bookingMatcher{now: time.Now}
	})
	return bookingMatcherInstance
}

func (m *bookingMatcher) Match(form models.SearchForm, events []contracts.RawEvent) []models.BookingRecord {
	now := m.now()
	matched := []models.BookingRecord{}
	for _, event := range events {
		record, ok := ParseEvent(event, now)
		if !ok {
			continue
		}
		if MatchesForm(form, record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// MatchesForm decides whether one record belongs to the searcher. The filter
// is conservative: a false negative costs the client a phone call, a false
// positive leaks someone else's booking.
func MatchesForm(form models.SearchForm, record models.BookingRecord) bool {
	searchFirst, searchLast := utils.SplitFullName(form.FullName)
	if searchFirst == "" || searchFirst != utils.NormalizeName(record.FirstName) {
		return false
	}

	// Last-name structure: equal when both present, match when both absent,
	// mismatch when exactly one side has one. A bare first name must never
	// surface a record with a fuller name on file.
	recordLast := utils.NormalizeName(record.LastName)
	lastNameMatch := searchLast == recordLast

	phoneMatch := utils.PhoneTailMatch(form.Phone, record.Phone)

	if lastNameMatch && phoneMatch {
		return true
	}

	// Email relaxes the structural rule but never stands alone.
	emailMatch := form.Email != "" && record.Email != "" &&
		utils.NormalizeEmail(form.Email) == utils.NormalizeEmail(record.Email)
	if !emailMatch {
		return false
	}
	return phoneMatch || lastNameMatch
}
