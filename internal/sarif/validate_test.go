package sarif

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/gosectools/sariffix/internal/testutil"
)

const validGosecReport = `{
	"version": "2.1.0",
	"$schema": "https://json.schemastore.org/sarif-2.1.0.json",
	"runs": [{
		"tool": {"driver": {"name": "gosec", "version": "2.21.4"}},
		"results": [{
			"ruleId": "G101",
			"level": "warning",
			"message": {"text": "Potential hardcoded credentials"},
			"locations": [{"physicalLocation": {"artifactLocation": {"uri": "main.go"}}}]
		}]
	}]
}`

func TestValidateAcceptsFixedReport(t *testing.T) {
	if err := Validate([]byte(validGosecReport)); err != nil {
		t.Fatalf("expected valid report, got %v", err)
	}
}

func TestValidateRejectsFixesField(t *testing.T) {
	raw := strings.Replace(
		validGosecReport,
		`"ruleId": "G101",`,
		`"ruleId": "G101", "fixes": [{"description": {"text": "x"}}],`,
		1,
	)

	err := Validate([]byte(raw))
	if err == nil {
		t.Fatal("expected validation error for fixes field, got nil")
	}
	if !strings.Contains(err.Error(), "failed upload validation") {
		t.Fatalf(unexpectedErrFmt, err)
	}
}

func TestValidateRejectsMissingVersion(t *testing.T) {
	err := Validate([]byte(`{"runs": []}`))
	if err == nil {
		t.Fatal("expected validation error for missing version, got nil")
	}
}

func TestValidateRejectsNonJSON(t *testing.T) {
	err := Validate([]byte("not json"))
	if err == nil {
		t.Fatal("expected error for non-JSON document, got nil")
	}
}

func TestValidateFileReadsAndValidates(t *testing.T) {
	path := testutil.WriteTempFile(t, "gosec.sarif", validGosecReport)

	if err := ValidateFile(path); err != nil {
		t.Fatalf("expected valid file, got %v", err)
	}
}

func TestValidateFileMissingPath(t *testing.T) {
	err := ValidateFile(filepath.Join(t.TempDir(), "missing.sarif"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestFixThenValidateRoundTrip(t *testing.T) {
	raw := strings.Replace(
		validGosecReport,
		`"ruleId": "G101",`,
		`"ruleId": "G101", "fixes": [{"description": {"text": "x"}}],`,
		1,
	)
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "gosec-raw.sarif")
	outputPath := filepath.Join(dir, "gosec.sarif")
	testutil.MustWriteFile(t, inputPath, raw)

	if err := Validate([]byte(raw)); err == nil {
		t.Fatal("expected raw report to fail validation")
	}

	removed, err := FixFile(inputPath, outputPath)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if err := ValidateFile(outputPath); err != nil {
		t.Fatalf("expected fixed report to pass validation, got %v", err)
	}
}
