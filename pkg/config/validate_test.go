package config_test

import (
	"strings"
	"testing"

	"github.com/bizerr/bizerr/pkg/config"
)

func mustParse(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg, err := config.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return cfg
}

func TestValidateOK(t *testing.T) {
	cfg := mustParse(t, sampleConfig)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
}

func TestValidateMissingDefaultLanguage(t *testing.T) {
	cfg := mustParse(t, `
errors:
  invalid_param:
    code: 4000
    message:
      en: "bad input"
`)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !config.IsMissingDefaultLang(err) {
		t.Errorf("error %v should be a missing-default-language error", err)
	}
}

func TestValidateEmptyErrorSet(t *testing.T) {
	cfg := mustParse(t, "default_language: en\n")
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !config.IsEmptyErrorSet(err) {
		t.Errorf("error %v should be an empty-error-set error", err)
	}
}

func TestValidateMissingDefaultLanguageMessage(t *testing.T) {
	// default_language is zh-CN but one definition only carries en.
	cfg := mustParse(t, `
default_language: zh-CN
errors:
  invalid_param:
    code: 4000
    message:
      zh-CN: "参数错误"
  user_not_found:
    code: 4004
    message:
      en: "user not found"
`)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !config.IsMissingMessage(err) {
		t.Errorf("error %v should be a missing-message error", err)
	}
	if !strings.Contains(err.Error(), "user_not_found") {
		t.Errorf("error should name the offending key: %v", err)
	}
	if !strings.Contains(err.Error(), "zh-CN") {
		t.Errorf("error should name the default language: %v", err)
	}
}

func TestValidateDuplicateCode(t *testing.T) {
	cfg := mustParse(t, `
default_language: en
errors:
  invalid_param:
    code: 4000
    message:
      en: "bad input"
  bad_request:
    code: 4000
    message:
      en: "bad request"
`)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !config.IsDuplicateCode(err) {
		t.Errorf("error %v should be a duplicate-code error", err)
	}
	// Both keys must be identifiable from the failure.
	for _, key := range []string{"invalid_param", "bad_request"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should name key %q: %v", key, err)
		}
	}
}

func TestValidateDuplicateKey(t *testing.T) {
	cfg := mustParse(t, `
default_language: en
errors:
  invalid_param:
    code: 4000
    message:
      en: "bad input"
  invalid_param:
    code: 4001
    message:
      en: "bad input again"
`)
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "invalid_param") {
		t.Errorf("error should name the duplicated key: %v", err)
	}
}

func TestValidateInfersSupportedLanguages(t *testing.T) {
	cfg := mustParse(t, `
default_language: en
errors:
  invalid_param:
    code: 4000
    message:
      en: "bad input"
      zh-CN: "参数错误"
  user_not_found:
    code: 4004
    message:
      fr: "utilisateur introuvable"
      en: "user not found"
`)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	want := []string{"en", "zh-CN", "fr"}
	if len(cfg.SupportedLanguages) != len(want) {
		t.Fatalf("SupportedLanguages = %v, want %v", cfg.SupportedLanguages, want)
	}
	for i, lang := range want {
		if cfg.SupportedLanguages[i] != lang {
			t.Errorf("SupportedLanguages[%d] = %q, want %q", i, cfg.SupportedLanguages[i], lang)
		}
	}
}

func TestValidateKeepsExplicitSupportedLanguages(t *testing.T) {
	cfg := mustParse(t, `
default_language: en
supported_languages:
  - en
  - ja
errors:
  invalid_param:
    code: 4000
    message:
      en: "bad input"
`)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if len(cfg.SupportedLanguages) != 2 || cfg.SupportedLanguages[1] != "ja" {
		t.Errorf("SupportedLanguages = %v, want [en ja]", cfg.SupportedLanguages)
	}
}
