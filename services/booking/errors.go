package booking

import (
	"errors"
	"fmt"
)

// Flow error codes. Expected policy violations are returned as values with
// one of these codes, never as panics.
const (
	CodeInvalidInterval       = "invalidInterval"
	CodeOutsideBusinessPolicy = "outsideBusinessPolicy"
	CodeCapacityExceeded      = "capacityExceeded"
	CodeFullyBooked           = "fullyBooked"
	CodeStaleAvailability     = "staleAvailability"
	CodeTransportFailure      = "transportFailure"
	CodeSessionNotFound       = "sessionNotFound"
	CodeInvalidStep           = "invalidStep"
)

// FlowError is a typed booking flow failure.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsFlowError unwraps err into a *FlowError if it carries one.
func AsFlowError(err error) (*FlowError, bool) {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func NewInvalidIntervalError(msg string) error {
	return &FlowError{Code: CodeInvalidInterval, Message: msg}
}

func NewOutsideBusinessPolicyError(msg string) error {
	return &FlowError{Code: CodeOutsideBusinessPolicy, Message: msg}
}

func NewCapacityExceededError(msg string) error {
	return &FlowError{Code: CodeCapacityExceeded, Message: msg}
}

func NewFullyBookedError(msg string) error {
	return &FlowError{Code: CodeFullyBooked, Message: msg}
}

func NewStaleAvailabilityError(msg string) error {
	return &FlowError{Code: CodeStaleAvailability, Message: msg}
}

func NewTransportFailureError(msg string) error {
	return &FlowError{Code: CodeTransportFailure, Message: msg}
}

func NewSessionNotFoundError(msg string) error {
	return &FlowError{Code: CodeSessionNotFound, Message: msg}
}

func NewInvalidStepError(msg string) error {
	return &FlowError{Code: CodeInvalidStep, Message: msg}
}
