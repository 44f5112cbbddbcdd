package utils

import "errors"

var (
	// Pricing path. All four collapse to one user-facing error state; the
	// client recovers by editing input or retrying the same request.
	ErrMissingAPIKey   = errors.New("ai api key is not configured")
	ErrProviderFailure = errors.New("ai provider request failed")
	ErrEmptyAIResponse = errors.New("ai provider returned no content")
	ErrAIResponseParse = errors.New("ai response is not valid json")

	ErrNoPricingResult = errors.New("no pricing result available")

	ErrStepIncomplete = errors.New("current step is missing required fields")

	ErrImportNotArray    = errors.New("imported history must be a json array")
	ErrImportInvalidItem = errors.New("imported history item is missing required fields")
	ErrHistoryNotFound   = errors.New("history item not found")

	ErrDatabaseError = errors.New("database error")
)
