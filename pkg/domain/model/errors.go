package model

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying failures for callers that map them to responses
var (
	ErrTagValidation = goerr.NewTag("validation")
	ErrTagTransport  = goerr.NewTag("transport")
	ErrTagNotFound   = goerr.NewTag("not_found")
	ErrTagAuth       = goerr.NewTag("unauthorized")
)

// Sentinel errors for domain operations
var (
	ErrReportNotFound   = goerr.New("report not found", goerr.T(ErrTagNotFound))
	ErrInvalidRoute     = goerr.New(`invalid route: a route must be a non-empty string that starts with "/"`, goerr.T(ErrTagValidation))
	ErrDraftRangeExists = goerr.New("an empty date range already exists", goerr.T(ErrTagValidation))
	ErrPropertyReserved = goerr.New("date property is already used by another date range", goerr.T(ErrTagValidation))
)
