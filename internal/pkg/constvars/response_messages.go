package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Booking messages
	BookingSearchSuccess    = "bookings fetched successfully"
	BookingCreatedSuccess   = "booking created successfully"
	BookingUpdatedSuccess   = "booking updated successfully"
	BookingCancelledSuccess = "booking cancelled successfully"

	// Availability messages
	SlotsFetchedSuccess = "available slots fetched successfully"
	DaysFetchedSuccess  = "day availability fetched successfully"

	// Catalog messages
	ProceduresFetchedSuccess = "procedures fetched successfully"

	// Extension messages
	ExtensionCheckedSuccess = "extension possibilities checked successfully"
)
