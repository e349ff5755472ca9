package config

import (
	"fmt"

	"github.com/bizerr/bizerr/pkg/common/err"
)

const (
	pkgName = "config"

	// Package-specific error codes
	CodeSyntaxErr          = err.CodeSyntax
	CodeNotFoundErr        = err.CodeNotFound
	CodeInvalidDefinition  = err.CodeInvalidInput
	CodeMissingDefaultLang = "MISSING_DEFAULT_LANGUAGE"
	CodeMissingMessageErr  = err.CodeMissingMessage
	CodeDuplicateCodeErr   = err.CodeDuplicateCode
	CodeDuplicateKeyErr    = "DUPLICATE_KEY"
	CodeEmptyErrorSet      = "EMPTY_ERROR_SET"
)

// ConfigError represents a configuration-related error with detailed context
type ConfigError struct {
	base *err.Error
	Path string // file path if applicable
	Key  string // error-definition key if applicable
}

// NewConfigError creates a new ConfigError
func NewConfigError(op, code, key, path string, underlying error) *ConfigError {
	return &ConfigError{
		base: err.New(pkgName, code, op, "", underlying),
		Path: path,
		Key:  key,
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.base.Error()
	if e.Key != "" {
		msg += fmt.Sprintf(" [key=%s]", e.Key)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" [path=%s]", e.Path)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.base
}

// NewSyntaxError reports raw text that does not parse into the schema.
func NewSyntaxError(underlying error) *ConfigError {
	return NewConfigError("parse", CodeSyntaxErr, "", "", underlying)
}

// NewNotFoundError reports an unreadable configuration file.
func NewNotFoundError(path string, underlying error) *ConfigError {
	return NewConfigError("load", CodeNotFoundErr, "", path, underlying)
}

// NewDefinitionError reports a structurally invalid error definition.
func NewDefinitionError(key string, underlying error) *ConfigError {
	return NewConfigError("parse", CodeInvalidDefinition, key, "", underlying)
}

// NewMissingDefaultLangError reports a configuration without default_language.
func NewMissingDefaultLangError() *ConfigError {
	return NewConfigError("validate", CodeMissingDefaultLang, "", "",
		fmt.Errorf("default_language is required"))
}

// NewEmptyErrorSetError reports a configuration with no error definitions.
func NewEmptyErrorSetError() *ConfigError {
	return NewConfigError("validate", CodeEmptyErrorSet, "", "",
		fmt.Errorf("configuration defines no errors"))
}

// NewMissingMessageError reports a definition lacking its default-language message.
func NewMissingMessageError(key, lang string) *ConfigError {
	return NewConfigError("validate", CodeMissingMessageErr, key, "",
		fmt.Errorf("missing message for default language %q", lang))
}

// NewDuplicateKeyError reports a key defined twice in the errors mapping.
func NewDuplicateKeyError(key string) *ConfigError {
	return NewConfigError("validate", CodeDuplicateKeyErr, key, "",
		fmt.Errorf("error key defined more than once"))
}

// NewDuplicateCodeError reports two definitions sharing a numeric code.
// Both source keys are named so the offending entries can be located.
func NewDuplicateCodeError(code int, firstKey, secondKey string) *ConfigError {
	e := NewConfigError("validate", CodeDuplicateCodeErr, secondKey, "",
		fmt.Errorf("code %d already used by %q", code, firstKey))
	e.base.WithContext("first_key", firstKey).WithContext("code", code)
	return e
}

// IsSyntax returns true if the error is a configuration syntax error
func IsSyntax(e error) bool {
	return err.IsCode(e, CodeSyntaxErr)
}

// IsMissingMessage returns true if the error is a missing default-language message
func IsMissingMessage(e error) bool {
	return err.IsCode(e, CodeMissingMessageErr)
}

// IsDuplicateCode returns true if the error is a duplicate numeric code
func IsDuplicateCode(e error) bool {
	return err.IsCode(e, CodeDuplicateCodeErr)
}

// IsEmptyErrorSet returns true if the configuration defines no errors
func IsEmptyErrorSet(e error) bool {
	return err.IsCode(e, CodeEmptyErrorSet)
}

// IsMissingDefaultLang returns true if default_language is absent
func IsMissingDefaultLang(e error) bool {
	return err.IsCode(e, CodeMissingDefaultLang)
}
