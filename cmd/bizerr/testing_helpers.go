package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestHelper provides utilities for CLI command testing
type TestHelper struct {
	t       *testing.T
	tempDir string
}

// NewTestHelper creates a new test helper with automatic cleanup
func NewTestHelper(t *testing.T) *TestHelper {
	t.Helper()

	return &TestHelper{
		t:       t,
		tempDir: t.TempDir(),
	}
}

// TempDir returns the temporary directory path
func (th *TestHelper) TempDir() string {
	return th.tempDir
}

// WriteConfig creates a configuration file with the given content and
// returns its path
func (th *TestHelper) WriteConfig(name, content string) string {
	th.t.Helper()

	path := filepath.Join(th.tempDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		th.t.Fatalf("failed to write config %s: %v", path, err)
	}
	return path
}

// validSampleConfig is a minimal valid configuration shared by command tests
const validSampleConfig = `
default_language: en
errors:
  invalid_param:
    code: 4000
    http_status: 400
    message:
      en: "bad input"
      zh-CN: "参数错误"
  user_not_found:
    code: 4004
    message:
      en: "user not found"
`
