package config

// Validate checks the semantic rules a parsed configuration must satisfy
// before code generation:
//
//   - default_language is present
//   - at least one error is defined
//   - every definition carries a message for the default language
//   - no two definitions share a numeric code
//
// Validation is all-or-nothing: the first violation aborts with a
// descriptive error and nothing is generated from an invalid configuration.
//
// As a side effect, Validate fills in SupportedLanguages when the file omits
// it: the default language first, then every other tag in first-appearance
// order across the definitions.
func (c *Config) Validate() error {
	if c.DefaultLanguage == "" {
		return NewMissingDefaultLangError()
	}
	if len(c.Definitions) == 0 {
		return NewEmptyErrorSetError()
	}

	codesSeen := make(map[int]string, len(c.Definitions))
	keysSeen := make(map[string]bool, len(c.Definitions))
	for i := range c.Definitions {
		def := &c.Definitions[i]

		if keysSeen[def.Key] {
			return NewDuplicateKeyError(def.Key)
		}
		keysSeen[def.Key] = true

		if _, ok := def.Messages[c.DefaultLanguage]; !ok {
			return NewMissingMessageError(def.Key, c.DefaultLanguage)
		}

		if firstKey, dup := codesSeen[def.Code]; dup {
			return NewDuplicateCodeError(def.Code, firstKey, def.Key)
		}
		codesSeen[def.Code] = def.Key
	}

	if len(c.SupportedLanguages) == 0 {
		c.SupportedLanguages = c.inferLanguages()
	}

	return nil
}

// inferLanguages builds the supported-language list from the union of all
// per-definition message tags, default language first.
func (c *Config) inferLanguages() []string {
	langs := []string{c.DefaultLanguage}
	seen := map[string]bool{c.DefaultLanguage: true}

	for i := range c.Definitions {
		for _, lang := range c.Definitions[i].Languages {
			if !seen[lang] {
				seen[lang] = true
				langs = append(langs, lang)
			}
		}
	}

	return langs
}
