// Package config parses and validates the declarative error-definition file
// that drives code generation.
//
// The file is YAML with three top-level keys:
//
//	default_language: en
//	supported_languages:   # optional, inferred when absent
//	  - en
//	  - zh-CN
//	errors:
//	  invalid_param:
//	    code: 4000
//	    http_status: 400   # optional, defaults to 500
//	    message:
//	      en: "invalid parameter"
//	      zh-CN: "参数错误"
//
// The order of entries under `errors` is preserved: generated enumerations
// list their variants in first-appearance order so regeneration stays
// diff-stable when only messages change.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultHTTPStatus is used when a definition omits http_status.
const DefaultHTTPStatus = 500

// Definition describes one configured error.
type Definition struct {
	// Key is the unique word-separated lowercase identifier (e.g., "invalid_param")
	Key string

	// Code is the numeric error code, unique within one configuration
	Code int

	// HTTPStatus is the HTTP status to pair with the code (DefaultHTTPStatus when omitted)
	HTTPStatus int

	// Messages maps language tags to message strings
	Messages map[string]string

	// Languages lists the message tags in the order they appear in the file
	Languages []string

	// Line is the line number of the definition in the source file (for error reporting)
	Line int
}

// Message returns the message for the given language tag and whether it is configured.
func (d *Definition) Message(lang string) (string, bool) {
	msg, ok := d.Messages[lang]
	return msg, ok
}

// Config is the validated in-memory form of one error-definition file.
type Config struct {
	// DefaultLanguage is the tag every definition must carry a message for
	DefaultLanguage string

	// SupportedLanguages lists all tags, default language first.
	// Populated by Validate when the file omits supported_languages.
	SupportedLanguages []string

	// Definitions holds every configured error in file order
	Definitions []Definition
}

// rawConfig matches the file schema before semantic validation.
// The errors mapping is kept as a yaml.Node because decoding it into a Go
// map would destroy the insertion order the generator depends on.
type rawConfig struct {
	DefaultLanguage    string    `yaml:"default_language"`
	SupportedLanguages []string  `yaml:"supported_languages"`
	Errors             yaml.Node `yaml:"errors"`
}

type rawDefinition struct {
	Code       *int      `yaml:"code"`
	HTTPStatus *int      `yaml:"http_status"`
	Message    yaml.Node `yaml:"message"`
}

// Load reads and parses the configuration file at path.
// The result is not yet validated; call Validate before generating.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewNotFoundError(path, err)
	}
	cfg, perr := Parse(data)
	if perr != nil {
		return nil, perr
	}
	return cfg, nil
}

// LoadValidated reads, parses, and validates the configuration file at path.
func LoadValidated(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse deserializes raw configuration text into a Config.
// Structural problems (unparseable YAML, non-scalar keys, missing required
// fields) are reported here; semantic rules are checked by Validate.
func Parse(data []byte) (*Config, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, NewSyntaxError(err)
	}

	cfg := &Config{
		DefaultLanguage:    raw.DefaultLanguage,
		SupportedLanguages: raw.SupportedLanguages,
	}

	if raw.Errors.Kind == 0 || raw.Errors.Tag == "!!null" {
		// Missing `errors` key; Validate reports the empty set.
		return cfg, nil
	}
	if raw.Errors.Kind != yaml.MappingNode {
		return nil, NewSyntaxError(fmt.Errorf("line %d: errors must be a mapping of key to definition", raw.Errors.Line))
	}

	// Mapping nodes store keys and values as alternating children.
	for i := 0; i+1 < len(raw.Errors.Content); i += 2 {
		keyNode := raw.Errors.Content[i]
		valNode := raw.Errors.Content[i+1]

		if keyNode.Kind != yaml.ScalarNode {
			return nil, NewSyntaxError(fmt.Errorf("line %d: error key must be a string", keyNode.Line))
		}
		key := keyNode.Value

		def, err := parseDefinition(key, valNode)
		if err != nil {
			return nil, err
		}
		def.Line = keyNode.Line
		cfg.Definitions = append(cfg.Definitions, def)
	}

	return cfg, nil
}

func parseDefinition(key string, node *yaml.Node) (Definition, error) {
	var raw rawDefinition
	if err := node.Decode(&raw); err != nil {
		return Definition{}, NewDefinitionError(key, fmt.Errorf("line %d: %w", node.Line, err))
	}

	if raw.Code == nil {
		return Definition{}, NewDefinitionError(key, fmt.Errorf("line %d: missing required field 'code'", node.Line))
	}

	def := Definition{
		Key:        key,
		Code:       *raw.Code,
		HTTPStatus: DefaultHTTPStatus,
		Messages:   make(map[string]string),
	}
	if raw.HTTPStatus != nil {
		def.HTTPStatus = *raw.HTTPStatus
	}

	if raw.Message.Kind == 0 || raw.Message.Tag == "!!null" {
		return Definition{}, NewDefinitionError(key, fmt.Errorf("line %d: missing required field 'message'", node.Line))
	}
	if raw.Message.Kind != yaml.MappingNode {
		return Definition{}, NewDefinitionError(key, fmt.Errorf("line %d: message must be a mapping of language tag to string", raw.Message.Line))
	}

	for i := 0; i+1 < len(raw.Message.Content); i += 2 {
		langNode := raw.Message.Content[i]
		msgNode := raw.Message.Content[i+1]

		if langNode.Kind != yaml.ScalarNode || msgNode.Kind != yaml.ScalarNode {
			return Definition{}, NewDefinitionError(key, fmt.Errorf("line %d: message entries must map a language tag to a string", langNode.Line))
		}

		lang := langNode.Value
		if _, dup := def.Messages[lang]; !dup {
			def.Languages = append(def.Languages, lang)
		}
		def.Messages[lang] = msgNode.Value
	}

	return def, nil
}
