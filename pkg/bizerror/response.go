package bizerror

// Response is the three-field envelope handed to a transport layer.
// The transport layer (an HTTP framework, typically) serializes it as the
// response body and maps the code's HTTPStatus to the transport status.
//
// Wire shape:
//
//	{
//	  "code": 4000,
//	  "msg": "invalid parameter",
//	  "data": { "field": "user_id" }
//	}
//
// Data is omitted from JSON when absent.
type Response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

// NewResponse builds a Response from an error code, using its
// default-language message.
func NewResponse[E ErrorCode](code E) Response {
	return Response{
		Code: code.Code(),
		Msg:  code.Message(),
	}
}

// WithMsg returns a copy with the message replaced.
func (r Response) WithMsg(msg string) Response {
	r.Msg = msg
	return r
}

// WithData returns a copy with the payload attached.
func (r Response) WithData(data any) Response {
	r.Data = data
	return r
}
