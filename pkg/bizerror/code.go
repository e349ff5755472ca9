// Package bizerror provides the runtime support types consumed by generated
// error-code enumerations: the ErrorCode capability set, the generic AppError
// wrapper, and the Response envelope handed to transport layers.
package bizerror

// ErrorCode is the capability set every generated enumeration satisfies.
//
// All operations are total: generated enumerations back each method with
// immutable lookup tables validated at generation time, so no variant
// reachable through the generated All() list can fail a lookup.
type ErrorCode interface {
	// Code returns the configured numeric error code.
	Code() int

	// Message returns the message for the configuration's default language.
	Message() string

	// MessageLang returns the message for the given language tag.
	// Unknown or unconfigured tags fall back to the default-language
	// message rather than failing; the degradation is deliberate.
	MessageLang(lang string) string

	// HTTPStatus returns the configured HTTP status, or 500 when the
	// configuration left it unset.
	HTTPStatus() int
}
