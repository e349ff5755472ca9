// Package codegen emits a Go error-code enumeration from a validated
// configuration.
//
// The emitted type is an ordinal integer enumeration: constants appear in
// configuration order and index into parallel lookup tables for numeric
// codes, HTTP statuses, and per-language messages. The tables are plain
// package-level data, immutable after init and safe for unsynchronized
// concurrent readers. Output is passed through go/format, so regenerating
// from unchanged input produces byte-identical source.
package codegen

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/bizerr/bizerr/pkg/common/err"
	"github.com/bizerr/bizerr/pkg/config"
	"github.com/bizerr/bizerr/pkg/symbol"
)

const pkgName = "codegen"

// runtimeImport is the package providing the ErrorCode capability set the
// generated type asserts against.
const runtimeImport = "github.com/bizerr/bizerr/pkg/bizerror"

// Options control the shape of the generated source.
type Options struct {
	// PackageName is the package clause of the generated file (default "errcodes")
	PackageName string

	// TypeName is the name of the generated enumeration type (default "ErrorCode")
	TypeName string

	// Source, when set, is recorded in the generated header (typically the
	// configuration file path)
	Source string
}

func (o Options) withDefaults() Options {
	if o.PackageName == "" {
		o.PackageName = "errcodes"
	}
	if o.TypeName == "" {
		o.TypeName = "ErrorCode"
	}
	return o
}

// Generate produces formatted Go source for the configuration's enumeration.
//
// Generation is all-or-nothing: the configuration is (re)validated and every
// key is transformed before a single byte is emitted, so an invalid
// configuration or a symbol collision yields an error and no output.
func Generate(cfg *config.Config, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	if verr := cfg.Validate(); verr != nil {
		return nil, verr
	}

	keys := make([]string, len(cfg.Definitions))
	for i := range cfg.Definitions {
		keys[i] = cfg.Definitions[i].Key
	}
	symbols, serr := symbol.TransformAll(keys)
	if serr != nil {
		return nil, serr
	}

	src := emit(cfg, symbols, opts)

	formatted, ferr := format.Source([]byte(src))
	if ferr != nil {
		// A formatting failure means the emitter produced invalid Go.
		return nil, err.New(pkgName, err.CodeInternal, "format",
			"generated source does not parse", ferr)
	}

	return formatted, nil
}

// GenerateFile is the batch entry point: it reads the configuration at
// configPath and writes the generated source to outputPath.
func GenerateFile(configPath, outputPath string, opts Options) error {
	cfg, lerr := config.Load(configPath)
	if lerr != nil {
		return lerr
	}

	if opts.Source == "" {
		opts.Source = configPath
	}

	out, gerr := Generate(cfg, opts)
	if gerr != nil {
		return gerr
	}

	if werr := os.WriteFile(outputPath, out, 0644); werr != nil {
		return err.New(pkgName, err.CodeInternal, "write",
			fmt.Sprintf("failed to write %s", outputPath), werr)
	}

	return nil
}

// emit renders the unformatted source. Everything it writes is derived from
// the validated configuration in order, so output is deterministic.
func emit(cfg *config.Config, symbols []string, opts Options) string {
	var b strings.Builder

	tablePrefix := lowerFirst(opts.TypeName)

	b.WriteString("// Code generated by bizerr. DO NOT EDIT.\n")
	if opts.Source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", opts.Source)
	}
	b.WriteString("//\n// Edit the configuration file and regenerate instead of changing this file.\n\n")

	fmt.Fprintf(&b, "package %s\n\n", opts.PackageName)
	fmt.Fprintf(&b, "import (\n\t\"fmt\"\n\n\t%q\n)\n\n", runtimeImport)

	fmt.Fprintf(&b, "// %s enumerates the configured business error codes.\n", opts.TypeName)
	fmt.Fprintf(&b, "type %s int\n\n", opts.TypeName)

	fmt.Fprintf(&b, "var _ bizerror.ErrorCode = %s(0)\n\n", opts.TypeName)

	// Constants, one per definition, in configuration order.
	b.WriteString("const (\n")
	for i, def := range cfg.Definitions {
		fmt.Fprintf(&b, "\t// %s: %s\n", symbols[i], commentSafe(def.Messages[cfg.DefaultLanguage]))
		if i == 0 {
			fmt.Fprintf(&b, "\t%s %s = iota\n", symbols[i], opts.TypeName)
		} else {
			fmt.Fprintf(&b, "\t%s\n", symbols[i])
		}
	}
	b.WriteString(")\n\n")

	// Lookup tables.
	fmt.Fprintf(&b, "var %sCodes = [...]int{\n", tablePrefix)
	for _, def := range cfg.Definitions {
		fmt.Fprintf(&b, "\t%d,\n", def.Code)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "var %sStatuses = [...]int{\n", tablePrefix)
	for _, def := range cfg.Definitions {
		fmt.Fprintf(&b, "\t%d,\n", def.HTTPStatus)
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "var %sMessages = [...]map[string]string{\n", tablePrefix)
	for _, def := range cfg.Definitions {
		b.WriteString("\t{\n")
		for _, lang := range def.Languages {
			fmt.Fprintf(&b, "\t\t%q: %q,\n", lang, def.Messages[lang])
		}
		b.WriteString("\t},\n")
	}
	b.WriteString("}\n\n")

	// Lookup methods. Out-of-range values of the integer type behave as an
	// unknown variant instead of panicking on table access.
	fmt.Fprintf(&b, "// Code returns the configured numeric error code.\n")
	fmt.Fprintf(&b, "func (c %s) Code() int {\n", opts.TypeName)
	fmt.Fprintf(&b, "\tif c < 0 || int(c) >= len(%sCodes) {\n\t\treturn 0\n\t}\n", tablePrefix)
	fmt.Fprintf(&b, "\treturn %sCodes[c]\n}\n\n", tablePrefix)

	fmt.Fprintf(&b, "// Message returns the message for the default language (%s).\n", cfg.DefaultLanguage)
	fmt.Fprintf(&b, "func (c %s) Message() string {\n", opts.TypeName)
	fmt.Fprintf(&b, "\treturn c.MessageLang(%q)\n}\n\n", cfg.DefaultLanguage)

	fmt.Fprintf(&b, "// MessageLang returns the message for lang, falling back to the\n")
	fmt.Fprintf(&b, "// default language when lang is not configured for this code.\n")
	fmt.Fprintf(&b, "func (c %s) MessageLang(lang string) string {\n", opts.TypeName)
	fmt.Fprintf(&b, "\tif c < 0 || int(c) >= len(%sMessages) {\n\t\treturn \"\"\n\t}\n", tablePrefix)
	fmt.Fprintf(&b, "\tmessages := %sMessages[c]\n", tablePrefix)
	b.WriteString("\tif msg, ok := messages[lang]; ok {\n\t\treturn msg\n\t}\n")
	fmt.Fprintf(&b, "\treturn messages[%q]\n}\n\n", cfg.DefaultLanguage)

	fmt.Fprintf(&b, "// HTTPStatus returns the configured HTTP status for the code.\n")
	fmt.Fprintf(&b, "func (c %s) HTTPStatus() int {\n", opts.TypeName)
	fmt.Fprintf(&b, "\tif c < 0 || int(c) >= len(%sStatuses) {\n\t\treturn %d\n\t}\n", tablePrefix, config.DefaultHTTPStatus)
	fmt.Fprintf(&b, "\treturn %sStatuses[c]\n}\n\n", tablePrefix)

	fmt.Fprintf(&b, "// String implements fmt.Stringer.\n")
	fmt.Fprintf(&b, "// Format: [code] message\n")
	fmt.Fprintf(&b, "func (c %s) String() string {\n", opts.TypeName)
	b.WriteString("\treturn fmt.Sprintf(\"[%d] %s\", c.Code(), c.Message())\n}\n\n")

	fmt.Fprintf(&b, "// All%ss returns every code in configuration order.\n", opts.TypeName)
	fmt.Fprintf(&b, "// Each call returns a fresh slice.\n")
	fmt.Fprintf(&b, "func All%ss() []%s {\n", opts.TypeName, opts.TypeName)
	fmt.Fprintf(&b, "\tall := make([]%s, len(%sCodes))\n", opts.TypeName, tablePrefix)
	fmt.Fprintf(&b, "\tfor i := range all {\n\t\tall[i] = %s(i)\n\t}\n", opts.TypeName)
	b.WriteString("\treturn all\n}\n")

	return b.String()
}

// commentSafe flattens a message onto one line so it cannot terminate the
// doc comment it is embedded in.
func commentSafe(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// lowerFirst lowers the first rune of s for use as an unexported table prefix.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
