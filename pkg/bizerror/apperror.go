package bizerror

import "fmt"

// AppError pairs an error code with an optional custom message and optional
// structured payload. It is the top-level value a service's error paths
// produce and its response pipeline consumes.
//
// AppError is a value type with builder-style transformation: WithMsg and
// WithData return a modified copy, so a partially built error held elsewhere
// is never mutated underneath its holder.
type AppError[E ErrorCode] struct {
	code      E
	customMsg string
	data      any
}

// New creates an AppError for the given code with no custom message and no
// payload. Msg() resolves to the code's default-language message until a
// custom message is attached.
func New[E ErrorCode](code E) AppError[E] {
	return AppError[E]{code: code}
}

// NewWithData creates an AppError carrying a payload from the start.
func NewWithData[E ErrorCode](code E, data any) AppError[E] {
	return New(code).WithData(data)
}

// WithMsg returns a copy with the custom message set.
// The custom message overrides the code's default message in Msg() and in
// the response envelope.
func (e AppError[E]) WithMsg(msg string) AppError[E] {
	e.customMsg = msg
	return e
}

// WithData returns a copy with the payload attached. The payload is
// arbitrary serializable data carried verbatim into the response envelope.
func (e AppError[E]) WithData(data any) AppError[E] {
	e.data = data
	return e
}

// ErrorCode returns the underlying error code value.
func (e AppError[E]) ErrorCode() E {
	return e.code
}

// Code returns the numeric error code.
func (e AppError[E]) Code() int {
	return e.code.Code()
}

// Msg returns the custom message if one was set, otherwise the code's
// default-language message.
func (e AppError[E]) Msg() string {
	if e.customMsg != "" {
		return e.customMsg
	}
	return e.code.Message()
}

// Data returns the attached payload, or nil when none was set.
func (e AppError[E]) Data() any {
	return e.data
}

// HTTPStatus returns the HTTP status configured for the underlying code.
func (e AppError[E]) HTTPStatus() int {
	return e.code.HTTPStatus()
}

// ToResponse converts the error into the transport-facing envelope.
func (e AppError[E]) ToResponse() Response {
	return Response{
		Code: e.Code(),
		Msg:  e.Msg(),
		Data: e.data,
	}
}

// Error implements the error interface.
// Format: [code] message
func (e AppError[E]) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code(), e.Msg())
}
