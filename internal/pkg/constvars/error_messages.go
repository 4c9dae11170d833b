package constvars

// Client-facing messages. Every message pairs with an unambiguous next action
// (retry, pick another time, contact the reception) so the caller is never
// left with a bare failure.
const (
	ErrClientCannotProcessRequest          = "We could not process your request, please check your input and try again"
	ErrClientSomethingWrongWithApplication = "Something went wrong on our side, please try again in a moment"
	ErrClientSlotAlreadyTaken              = "That time has just been taken, please pick another slot"
	ErrClientDuplicateBooking              = "A booking just like this one was made moments ago, please wait before trying again"
	ErrClientTooManyAttempts               = "Too many attempts, please wait a while and try again"
	ErrClientVerificationFailed            = "We could not verify you are human, please complete the verification and try again"
	ErrClientBookingNotFound               = "We could not find that booking anymore, please search again"
	ErrClientTooLateToModify               = "This booking starts in less than 24 hours and can no longer be changed online, please contact the reception"
	ErrClientCalendarUnreachable           = "The booking calendar is unreachable right now, please try again"
)

// Dev messages kept out of client responses.
const (
	ErrDevValidationFailed    = "request validation failed"
	ErrDevCannotParseJSON     = "cannot parse request body as JSON"
	ErrDevCannotParseDate     = "cannot parse date parameter"
	ErrDevCreateHTTPRequest   = "failed to create HTTP request"
	ErrDevSendHTTPRequest     = "failed to send HTTP request"
	ErrDevDecodeResponse      = "failed to decode %s response"
	ErrDevCalendarStatus      = "calendar service returned status %d for %s"
	ErrDevSheetStatus         = "sheet service returned status %d for %s"
	ErrDevVerifierStatus      = "verification service returned status %d"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRabbitMQPublish     = "failed to publish message to queue %s"
	ErrDevSMTPSendEmail       = "failed to send email through %s"
	ErrDevUnknownProcedure    = "procedure %q is not in the catalog"
	ErrDevBookingWindowClosed = "booking %s starts within the modification window"
	ErrDevEventVanished       = "event %s no longer exists on the calendar"
)
