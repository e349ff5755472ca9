// Package err provides a standardized error handling system for the entire project.
//
// # Design Principles
//
// 1. Consistency: All packages use the same base error structure
// 2. Context: Errors carry package, operation, and code information
// 3. Wrapping: Full support for Go 1.13+ error wrapping with errors.Is/As
// 4. Categorization: Machine-readable error codes enable programmatic handling
//
// # Usage Patterns
//
// ## Creating Package-Specific Errors
//
// Each package should define its own error types that embed err.Error:
//
//	type ParseError struct {
//	    *err.Error
//	    Line int
//	}
//
// ## Defining Package Constants
//
// Define package name and error codes as constants:
//
//	const (
//	    pkgName = "config"
//	    CodeEmptySet = "EMPTY_ERROR_SET"
//	)
//
// ## Error Checking
//
// Use standard Go error checking patterns:
//
//	if err.IsCode(e, err.CodeDuplicateCode) {
//	    // handle duplicate numeric code
//	}
//
// ## Adding Context
//
// Add structured context to errors:
//
//	e := err.New("config", err.CodeDuplicateCode, "validate", "", nil)
//	e.WithContext("key", "invalid_param").WithContext("code", 4000)
//
// # Error Codes
//
// Standard error codes are provided as constants (CodeSyntax, CodeValidation,
// CodeDuplicateCode, etc.). Packages can define additional codes as needed,
// following the UPPER_SNAKE_CASE convention.
package err
