package matcher

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func kowalskaRecord() models.BookingRecord {
	return models.BookingRecord{
		EventID:       "evt-1",
		FirstName:     "Natalia",
		LastName:      "Kowalska",
		Phone:         "+48 601 234 567",
		Email:         "natalia.k@example.com",
		ProcedureName: "Manicure",
	}
}

func TestMatchesForm(t *testing.T) {
	t.Run("bare first name never surfaces a fuller record", func(t *testing.T) {
		form := models.SearchForm{FullName: "Natalia", Phone: "+48 555 000 111"}
		assert.False(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("bare first name with matching phone is still rejected", func(t *testing.T) {
		form := models.SearchForm{FullName: "Natalia", Phone: "601234567"}
		assert.False(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("bare first name with phone and exact email is accepted", func(t *testing.T) {
		form := models.SearchForm{
			FullName: "Natalia",
			Phone:    "601234567",
			Email:    "Natalia.K@example.com",
		}
		assert.True(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("full name with matching phone is accepted regardless of email", func(t *testing.T) {
		form := models.SearchForm{FullName: "natalia kowalska", Phone: "0601234567"}
		assert.True(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("full name with email overrides a partial phone", func(t *testing.T) {
		form := models.SearchForm{
			FullName: "Natalia Kowalska",
			Phone:    "601",
			Email:    "natalia.k@example.com",
		}
		assert.True(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("email alone matches nothing", func(t *testing.T) {
		form := models.SearchForm{
			FullName: "Natalia Nowak",
			Phone:    "999",
			Email:    "natalia.k@example.com",
		}
		assert.False(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("different first name is rejected outright", func(t *testing.T) {
		form := models.SearchForm{FullName: "Anna Kowalska", Phone: "601234567", Email: "natalia.k@example.com"}
		assert.False(t, MatchesForm(form, kowalskaRecord()))
	})

	t.Run("record without last name matches a bare first name and phone", func(t *testing.T) {
		record := kowalskaRecord()
		record.LastName = ""
		form := models.SearchForm{FullName: "Natalia", Phone: "601234567"}
		assert.True(t, MatchesForm(form, record))
	})

	t.Run("search with last name does not match a record without one", func(t *testing.T) {
		record := kowalskaRecord()
		record.LastName = ""
		record.Email = ""
		form := models.SearchForm{FullName: "Natalia Kowalska", Phone: "601234567"}
		assert.False(t, MatchesForm(form, record))
	})

	t.Run("short phones never tail-match", func(t *testing.T) {
		record := kowalskaRecord()
		record.Phone = "234567"
		form := models.SearchForm{FullName: "Natalia Kowalska", Phone: "234567"}
		assert.False(t, MatchesForm(form, record))
	})
}

func TestParseEvent(t *testing.T) {
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(72 * time.Hour)

	validEvent := contracts.RawEvent{
		ID:      "evt-42",
		Summary: "Natalia Kowalska - Manicure",
		Description: "Phone: +48 601 234 567\n" +
			"Email: natalia.k@example.com\n" +
			"Procedure: proc-manicure\n" +
			"Price: 150\n",
		Start: start,
		End:   start.Add(30 * time.Minute),
	}

	t.Run("well-formed event round-trips into a record", func(t *testing.T) {
		record, ok := ParseEvent(validEvent, now)

		assert.True(t, ok)
		assert.Equal(t, "evt-42", record.EventID)
		assert.Equal(t, "Natalia", record.FirstName)
		assert.Equal(t, "Kowalska", record.LastName)
		assert.Equal(t, "proc-manicure", record.ProcedureID)
		assert.Equal(t, "Manicure", record.ProcedureName)
		assert.Equal(t, 150.0, record.Price)
		assert.True(t, record.CanModify)
		assert.True(t, record.CanCancel)
	})

	t.Run("encode functions produce what parse expects", func(t *testing.T) {
		event := contracts.RawEvent{
			ID:          "evt-43",
			Summary:     EncodeEventSummary("Anna", "Nowak", "Pedicure"),
			Description: EncodeEventDescription("+48 555 666 777", "", "proc-pedicure", 180),
			Start:       start,
			End:         start.Add(45 * time.Minute),
		}
		record, ok := ParseEvent(event, now)

		assert.True(t, ok)
		assert.Equal(t, "Anna", record.FirstName)
		assert.Equal(t, "Nowak", record.LastName)
		assert.Equal(t, "", record.Email)
		assert.Equal(t, 180.0, record.Price)
	})

	t.Run("staff-created event without the identity block is skipped", func(t *testing.T) {
		event := contracts.RawEvent{
			ID:      "evt-44",
			Summary: "Lunch break",
			Start:   start,
			End:     start.Add(time.Hour),
		}
		_, ok := ParseEvent(event, now)

		assert.False(t, ok)
	})

	t.Run("event starting inside the cutoff loses its modify and cancel flags", func(t *testing.T) {
		event := validEvent
		event.Start = now.Add(2 * time.Hour)
		event.End = event.Start.Add(30 * time.Minute)
		record, ok := ParseEvent(event, now)

		assert.True(t, ok)
		assert.False(t, record.CanModify)
		assert.False(t, record.CanCancel)
	})
}

func TestMatch(t *testing.T) {
	now := time.Now().Add(96 * time.Hour)
	events := []contracts.RawEvent{
		{
			ID:          "evt-1",
			Summary:     EncodeEventSummary("Natalia", "Kowalska", "Manicure"),
			Description: EncodeEventDescription("+48 601 234 567", "natalia.k@example.com", "proc-manicure", 150),
			Start:       now,
			End:         now.Add(30 * time.Minute),
		},
		{
			ID:          "evt-2",
			Summary:     EncodeEventSummary("Natalia", "Nowak", "Pedicure"),
			Description: EncodeEventDescription("+48 555 666 777", "", "proc-pedicure", 180),
			Start:       now.Add(time.Hour),
			End:         now.Add(time.Hour + 45*time.Minute),
		},
		{
			ID:      "evt-3",
			Summary: "Team meeting",
			Start:   now,
			End:     now.Add(time.Hour),
		},
	}

	m := &bookingMatcher{now: time.Now}
	form := models.SearchForm{FullName: "Natalia Kowalska", Phone: "601234567"}
	records := m.Match(form, events)

	assert.Len(t, records, 1)
	assert.Equal(t, "evt-1", records[0].EventID)
}
