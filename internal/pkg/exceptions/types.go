package exceptions

import (
	"booking-service/internal/pkg/constvars"
	"fmt"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}

	// HTTP plumbing
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildKindedCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientCalendarUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, source string) *CustomError {
		return BuildKindedCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientCalendarUnreachable, fmt.Sprintf(constvars.ErrDevDecodeResponse, source))
	}

	// Booking flow
	ErrSlotTaken = func(err error) *CustomError {
		return BuildKindedCustomError(err, KindConflict, constvars.StatusConflict, constvars.ErrClientSlotAlreadyTaken, "slot conflict at write time")
	}
	ErrDuplicateBooking = func(err error) *CustomError {
		return BuildKindedCustomError(err, KindDuplicate, constvars.StatusConflict, constvars.ErrClientDuplicateBooking, "identical booking attempt inside cooldown window")
	}
	ErrRateLimited = func(err error) *CustomError {
		return BuildKindedCustomError(err, KindRateLimited, constvars.StatusTooManyRequests, constvars.ErrClientTooManyAttempts, "caller exceeded attempt budget")
	}
	ErrVerificationFailed = func(err error) *CustomError {
		return BuildKindedCustomError(err, KindVerificationFailed, constvars.StatusUnauthorized, constvars.ErrClientVerificationFailed, "bot-challenge token missing or rejected")
	}
	ErrBookingNotFound = func(err error, eventID string) *CustomError {
		return BuildKindedCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevEventVanished, eventID))
	}
	ErrTooLateToModify = func(eventID string) *CustomError {
		return BuildKindedCustomError(nil, KindTooLateToModify, constvars.StatusForbidden, constvars.ErrClientTooLateToModify, fmt.Sprintf(constvars.ErrDevBookingWindowClosed, eventID))
	}
	ErrUnknownProcedure = func(procedureID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevUnknownProcedure, procedureID))
	}

	// Calendar service
	ErrCalendarStatus = func(err error, statusCode int, operation string) *CustomError {
		return BuildNewCustomError(err, statusCode, clientMessageForCalendarStatus(statusCode), fmt.Sprintf(constvars.ErrDevCalendarStatus, statusCode, operation))
	}

	// Sheet service
	ErrSheetStatus = func(err error, statusCode int, operation string) *CustomError {
		return BuildKindedCustomError(err, KindNetwork, constvars.StatusBadGateway, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSheetStatus, statusCode, operation))
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
)

// clientMessageForCalendarStatus keeps the client message specific to the
// recoverable calendar failures; everything else degrades to the generic one.
func clientMessageForCalendarStatus(statusCode int) string {
	switch statusCode {
	case constvars.StatusConflict:
		return constvars.ErrClientSlotAlreadyTaken
	case constvars.StatusNotFound:
		return constvars.ErrClientBookingNotFound
	case constvars.StatusTooManyRequests:
		return constvars.ErrClientTooManyAttempts
	default:
		return constvars.ErrClientCalendarUnreachable
	}
}

// IsHTTPErrRetryable reports whether a failed calendar call may be retried
// as-is. Conflicts and not-found are definitive answers, not transport noise.
func IsHTTPErrRetryable(err error) bool {
	ce, ok := err.(*CustomError)
	if !ok {
		return false
	}
	switch ce.Kind {
	case KindNetwork, KindRateLimited, KindUnknown:
		return ce.StatusCode >= constvars.StatusInternalServerError || ce.StatusCode == constvars.StatusTooManyRequests
	default:
		return false
	}
}
