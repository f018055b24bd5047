package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/campusconnect/campus-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"invalid_range":    "End time must be after start time.",
	"range_too_large":  "Cannot create more than 365 schedules at once.",
	"invalid_status":   "Unknown schedule status.",
	"slot_unavailable": "Schedule not available.",
	"schedule_booked":  "Cannot modify a booked schedule. Please cancel the appointment first.",
	"not_found":        "Not found.",
	"invalid_state":    "The appointment is not in a state that allows this action.",
	"invalid_role":     "Role must be teacher or student.",
	"email_taken":      "A user with this email already exists.",
	"status_conflict":  "The schedule changed while processing. Please retry.",
}

// writeBusinessError maps a use-case business error onto an HTTP reply.
// Anything that is not a business error is an internal failure.
func writeBusinessError(c *gin.Context, err error, fallbackCode string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallbackCode, "Something went wrong.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request failed."
	}

	switch code {
	case "not_found":
		httperr.NotFound(c, code, msg)
	case "status_conflict":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
