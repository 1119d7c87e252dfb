package domain

import "errors"

var (
	// ErrEmptyQuery is returned when a search is requested without any input
	ErrEmptyQuery = errors.New("query is required")

	// ErrInvalidIdentifier is returned when no well-formed IP identifier can be found in the input
	ErrInvalidIdentifier = errors.New("invalid IPID format")

	// ErrAssetNotFound is returned when the registry confirms an identifier is not registered
	ErrAssetNotFound = errors.New("ip asset not found")

	// ErrRegistryUnavailable is returned for network, timeout and malformed-response failures from the registry
	ErrRegistryUnavailable = errors.New("registry unavailable")

	// ErrLLMUnavailable is returned when no language model is configured
	ErrLLMUnavailable = errors.New("llm unavailable")

	// ErrTooManyIdentifiers is returned when a batch lookup exceeds the configured size
	ErrTooManyIdentifiers = errors.New("too many identifiers")
)
