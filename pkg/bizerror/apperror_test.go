package bizerror_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bizerr/bizerr/pkg/bizerror"
)

// stubCode mirrors the shape of a generated enumeration: ordinal values
// backed by immutable lookup tables.
type stubCode int

const (
	stubInvalidParam stubCode = iota
	stubNotFound
)

var (
	stubNumbers  = [...]int{4000, 4041}
	stubStatuses = [...]int{400, 404}
	stubMessages = [...]map[string]string{
		{"en": "bad input", "zh-CN": "参数错误"},
		{"en": "not found"},
	}
)

func (c stubCode) Code() int       { return stubNumbers[c] }
func (c stubCode) Message() string { return c.MessageLang("en") }
func (c stubCode) HTTPStatus() int { return stubStatuses[c] }

func (c stubCode) MessageLang(lang string) string {
	if msg, ok := stubMessages[c][lang]; ok {
		return msg
	}
	return stubMessages[c]["en"]
}

var _ bizerror.ErrorCode = stubInvalidParam

func TestNew(t *testing.T) {
	e := bizerror.New(stubInvalidParam)

	if e.Code() != 4000 {
		t.Errorf("Code() = %d, want 4000", e.Code())
	}
	if e.Msg() != "bad input" {
		t.Errorf("Msg() = %q, want %q", e.Msg(), "bad input")
	}
	if e.Data() != nil {
		t.Errorf("Data() = %v, want nil", e.Data())
	}
	if e.HTTPStatus() != 400 {
		t.Errorf("HTTPStatus() = %d, want 400", e.HTTPStatus())
	}
}

func TestWithMsg(t *testing.T) {
	base := bizerror.New(stubInvalidParam)
	custom := base.WithMsg("user_id must not be empty")

	if custom.Msg() != "user_id must not be empty" {
		t.Errorf("Msg() = %q, want custom message", custom.Msg())
	}

	// The original value keeps the default message.
	if base.Msg() != "bad input" {
		t.Errorf("base Msg() = %q, want default message", base.Msg())
	}
}

func TestWithData(t *testing.T) {
	payload := map[string]any{"field": "user_id"}
	e := bizerror.New(stubInvalidParam).WithData(payload)

	data, ok := e.Data().(map[string]any)
	if !ok {
		t.Fatalf("Data() = %T, want map", e.Data())
	}
	if data["field"] != "user_id" {
		t.Errorf("Data()[field] = %v, want user_id", data["field"])
	}
}

func TestNewWithData(t *testing.T) {
	e := bizerror.NewWithData(stubNotFound, "user 42")
	if e.Data() != "user 42" {
		t.Errorf("Data() = %v, want payload", e.Data())
	}
	if e.Msg() != "not found" {
		t.Errorf("Msg() = %q, want default message", e.Msg())
	}
}

func TestErrorInterface(t *testing.T) {
	var e error = bizerror.New(stubInvalidParam).WithMsg("custom")

	if e.Error() != "[4000] custom" {
		t.Errorf("Error() = %q, want %q", e.Error(), "[4000] custom")
	}

	var app bizerror.AppError[stubCode]
	if !errors.As(e, &app) {
		t.Fatal("errors.As should recover AppError")
	}
	if app.ErrorCode() != stubInvalidParam {
		t.Errorf("ErrorCode() = %v, want stubInvalidParam", app.ErrorCode())
	}
}

func TestToResponse(t *testing.T) {
	tests := []struct {
		name     string
		err      bizerror.AppError[stubCode]
		wantCode int
		wantMsg  string
		wantData any
	}{
		{
			name:     "defaults",
			err:      bizerror.New(stubInvalidParam),
			wantCode: 4000,
			wantMsg:  "bad input",
			wantData: nil,
		},
		{
			name:     "custom_message",
			err:      bizerror.New(stubInvalidParam).WithMsg("custom"),
			wantCode: 4000,
			wantMsg:  "custom",
			wantData: nil,
		},
		{
			name:     "with_payload",
			err:      bizerror.New(stubNotFound).WithData("user 42"),
			wantCode: 4041,
			wantMsg:  "not found",
			wantData: "user 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tt.err.ToResponse()
			if resp.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", resp.Code, tt.wantCode)
			}
			if resp.Msg != tt.wantMsg {
				t.Errorf("Msg = %q, want %q", resp.Msg, tt.wantMsg)
			}
			if resp.Data != tt.wantData {
				t.Errorf("Data = %v, want %v", resp.Data, tt.wantData)
			}
		})
	}
}

func TestResponseJSON(t *testing.T) {
	resp := bizerror.New(stubInvalidParam).ToResponse()

	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if strings.Contains(string(out), "data") {
		t.Errorf("absent payload should be omitted from JSON, got %s", out)
	}
	if !strings.Contains(string(out), `"code":4000`) {
		t.Errorf("JSON missing code field: %s", out)
	}
	if !strings.Contains(string(out), `"msg":"bad input"`) {
		t.Errorf("JSON missing msg field: %s", out)
	}

	withData, err := json.Marshal(resp.WithData(map[string]string{"field": "user_id"}))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(withData), `"data":{"field":"user_id"}`) {
		t.Errorf("JSON missing data field: %s", withData)
	}
}

func TestMessageLangFallback(t *testing.T) {
	e := bizerror.New(stubInvalidParam)

	if got := e.ErrorCode().MessageLang("zh-CN"); got != "参数错误" {
		t.Errorf("MessageLang(zh-CN) = %q, want configured message", got)
	}
	if got := e.ErrorCode().MessageLang("fr"); got != "bad input" {
		t.Errorf("MessageLang(fr) = %q, want default-language fallback", got)
	}
}
