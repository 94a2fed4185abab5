package constants

import (
	"net/http"
)

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found", http.StatusNotFound)
	ErrInvalidRequest     = NewCodedError("invalid request", http.StatusBadRequest)
	ErrInvalidFilterValue = NewCodedError("invalid filter value", http.StatusBadRequest)
	ErrUnknownFilter      = NewCodedError("unknown filter category", http.StatusBadRequest)
	ErrEmptyScrapeQuery   = NewCodedError("please enter a facility type to scrape", http.StatusBadRequest)
	ErrNoSelection        = NewCodedError("please select at least one facility to enrich", http.StatusBadRequest)
	ErrSuperseded         = NewCodedError("superseded by a newer request", http.StatusConflict)
)
