package main

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGenerateCommand(t *testing.T) {
	th := NewTestHelper(t)
	configPath := th.WriteConfig("biz_errors.yaml", validSampleConfig)
	outputPath := filepath.Join(th.TempDir(), "errcodes.go")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{configPath, "-o", outputPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}

	src := string(out)
	if !strings.Contains(src, "type ErrorCode int") {
		t.Error("output should declare the enumeration type")
	}
	if !strings.Contains(src, "InvalidParam") || !strings.Contains(src, "UserNotFound") {
		t.Error("output should declare one constant per configured error")
	}

	fset := token.NewFileSet()
	if _, err := parser.ParseFile(fset, "errcodes.go", out, parser.AllErrors); err != nil {
		t.Errorf("output should be valid Go: %v", err)
	}
}

func TestGenerateCommandDerivedOutput(t *testing.T) {
	th := NewTestHelper(t)
	configPath := th.WriteConfig("biz_errors.yaml", validSampleConfig)

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	derived := filepath.Join(th.TempDir(), "biz_errors.go")
	if _, err := os.Stat(derived); err != nil {
		t.Errorf("derived output file should exist: %v", err)
	}
}

func TestGenerateCommandCustomNames(t *testing.T) {
	th := NewTestHelper(t)
	configPath := th.WriteConfig("biz_errors.yaml", validSampleConfig)
	outputPath := filepath.Join(th.TempDir(), "codes.go")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{configPath, "-o", outputPath, "--package", "apperrors", "--type", "BizCode"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output file was not written: %v", err)
	}
	if !strings.Contains(string(out), "package apperrors") {
		t.Error("output should use the custom package name")
	}
	if !strings.Contains(string(out), "type BizCode int") {
		t.Error("output should use the custom type name")
	}
}

func TestGenerateCommandMultipleConfigs(t *testing.T) {
	th := NewTestHelper(t)
	first := th.WriteConfig("user_errors.yaml", validSampleConfig)
	second := th.WriteConfig("order_errors.yaml", `
default_language: en
errors:
  order_expired:
    code: 6000
    message:
      en: "order expired"
`)

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{first, second})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate command failed: %v", err)
	}

	for _, name := range []string{"user_errors.go", "order_errors.go"} {
		if _, err := os.Stat(filepath.Join(th.TempDir(), name)); err != nil {
			t.Errorf("output %s should exist: %v", name, err)
		}
	}
}

func TestGenerateCommandOutputWithMultipleConfigs(t *testing.T) {
	th := NewTestHelper(t)
	first := th.WriteConfig("a.yaml", validSampleConfig)
	second := th.WriteConfig("b.yaml", validSampleConfig)

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{first, second, "-o", "out.go"})

	if err := cmd.Execute(); err == nil {
		t.Error("expected error when --output is combined with multiple configs")
	}
}

func TestGenerateCommandInvalidConfig(t *testing.T) {
	th := NewTestHelper(t)
	configPath := th.WriteConfig("biz_errors.yaml", `
default_language: en
errors:
  a:
    code: 1
    message:
      en: "a"
  b:
    code: 1
    message:
      en: "b"
`)
	outputPath := filepath.Join(th.TempDir(), "errcodes.go")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{configPath, "-o", outputPath})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for duplicate codes")
	}

	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("no output file may exist after a failed generation")
	}
}
