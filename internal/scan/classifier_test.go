package scan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/codefeedhq/codefeed/internal/scan"
)

// writeClassifierFixture creates a file with the given bytes under a fresh
// temporary directory and returns its path.
func writeClassifierFixture(testingHandle *testing.T, fileName string, content []byte) string {
	testingHandle.Helper()
	fixturePath := filepath.Join(testingHandle.TempDir(), fileName)
	if writeError := os.WriteFile(fixturePath, content, 0o644); writeError != nil {
		testingHandle.Fatalf("writing fixture %s: %v", fileName, writeError)
	}
	return fixturePath
}

// TestIsTextFile verifies the leading-byte heuristic: control characters
// below 0x20 mark a file binary unless they are tab, line feed, or carriage
// return, and bytes past the first 1024 never influence the outcome.
func TestIsTextFile(testingInstance *testing.T) {
	testCases := []struct {
		testName   string
		content    []byte
		expectText bool
	}{
		{
			testName:   "plain ascii is text",
			content:    []byte("package main\n\nfunc main() {}\n"),
			expectText: true,
		},
		{
			testName:   "tab newline and carriage return are text",
			content:    []byte("a\tb\r\nc"),
			expectText: true,
		},
		{
			testName:   "empty file is text",
			content:    nil,
			expectText: true,
		},
		{
			testName:   "high-bit bytes are accepted as text",
			content:    []byte("caf\xc3\xa9 \xf0\x9f\x92\xbe"),
			expectText: true,
		},
		{
			testName:   "nul byte marks the file binary",
			content:    []byte{'P', 'N', 'G', 0x00, 0x0D, 0x0A},
			expectText: false,
		},
		{
			testName:   "escape control byte marks the file binary",
			content:    []byte{'h', 'i', 0x1B, '[', 'm'},
			expectText: false,
		},
		{
			testName:   "control byte beyond the sampled window is invisible",
			content:    append(bytes.Repeat([]byte{'a'}, 1024), 0x00),
			expectText: true,
		},
		{
			testName:   "control byte at the end of the sampled window is seen",
			content:    append(bytes.Repeat([]byte{'a'}, 1023), 0x00),
			expectText: false,
		},
	}

	for testCaseIndex, testCase := range testCases {
		fixturePath := writeClassifierFixture(testingInstance, "sample.bin", testCase.content)
		isText, classifyError := scan.IsTextFile(fixturePath)
		if classifyError != nil {
			testingInstance.Fatalf("case %d (%s): unexpected error: %v", testCaseIndex, testCase.testName, classifyError)
		}
		if isText != testCase.expectText {
			testingInstance.Errorf("case %d (%s): expected text %t, got %t", testCaseIndex, testCase.testName, testCase.expectText, isText)
		}
	}
}

// TestIsTextFileMissingFile verifies the probe surfaces open failures to the
// caller instead of guessing a classification.
func TestIsTextFileMissingFile(testingInstance *testing.T) {
	missingPath := filepath.Join(testingInstance.TempDir(), "absent.txt")
	if _, classifyError := scan.IsTextFile(missingPath); classifyError == nil {
		testingInstance.Fatal("expected an error for a missing file")
	}
}
