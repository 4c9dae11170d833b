package matcher

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calendar events carry client identity as plain text because the calendar
// has no structured attendee data for walk-in clients. The summary holds
// "First Last - Procedure Name"; the description holds one "Key: value" line
// per field. Events written by staff directly (personal blocks, holidays) do
// not follow this shape and simply fail to parse, which keeps them out of
// every search result.

const (
	descPhoneKey     = "Phone"
	descEmailKey     = "Email"
	descProcedureKey = "Procedure"
	descPriceKey     = "Price"
)

// EncodeEventSummary renders the calendar event title for a booking.
func EncodeEventSummary(firstName, lastName, procedureName string) string {
	name := strings.TrimSpace(firstName + " " + lastName)
	return name + " - " + procedureName
}

// EncodeEventDescription renders the key/value identity block.
func EncodeEventDescription(phone, email, procedureID string, price float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", descPhoneKey, phone)
	if email != "" {
		fmt.Fprintf(&b, "%s: %s\n", descEmailKey, email)
	}
	fmt.Fprintf(&b, "%s: %s\n", descProcedureKey, procedureID)
	fmt.Fprintf(&b, "%s: %s\n", descPriceKey, strconv.FormatFloat(price, 'f', -1, 64))
	return b.String()
}

// ParseEvent reconstructs a BookingRecord from a raw calendar event. The
// second return value is false for events this system did not write.
func ParseEvent(event contracts.RawEvent, now time.Time) (models.BookingRecord, bool) {
	namePart, procedureName, found := strings.Cut(event.Summary, " - ")
	if !found || event.ID == "" || event.Start.IsZero() || event.End.IsZero() {
		return models.BookingRecord{}, false
	}

	fields := parseDescription(event.Description)
	phone, hasPhone := fields[descPhoneKey]
	if !hasPhone || phone == "" {
		return models.BookingRecord{}, false
	}

	nameWords := strings.Fields(namePart)
	if len(nameWords) == 0 {
		return models.BookingRecord{}, false
	}
	firstName := nameWords[0]
	lastName := strings.Join(nameWords[1:], " ")

	price, _ := strconv.ParseFloat(fields[descPriceKey], 64)

	record := models.BookingRecord{
		EventID:       event.ID,
		FirstName:     firstName,
		LastName:      lastName,
		Phone:         phone,
		Email:         fields[descEmailKey],
		ProcedureID:   fields[descProcedureKey],
		ProcedureName: strings.TrimSpace(procedureName),
		StartTime:     event.Start,
		EndTime:       event.End,
		Price:         price,
	}
	modifiable := !record.WithinModificationWindow(now)
	record.CanModify = modifiable
	record.CanCancel = modifiable
	return record, true
}

func parseDescription(description string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(description, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}
