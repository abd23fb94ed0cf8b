package sarif

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gosectools/sariffix/internal/safeio"
	"github.com/xeipuuv/gojsonschema"
)

// uploadSchema captures the subset of SARIF 2.1.0 the code scanning upload
// endpoint enforces, including the rejection of the "fixes" field gosec emits.
//
//go:embed schema/upload.schema.json
var uploadSchema []byte

// Validate checks a serialized SARIF document against the embedded upload
// schema. Schema violations are collected into a single error.
func Validate(document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(uploadSchema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return fmt.Errorf("validate sarif: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, item := range result.Errors() {
		messages = append(messages, item.String())
	}
	return fmt.Errorf("sarif document failed upload validation: %s", strings.Join(messages, "; "))
}

// ValidateFile reads the file at path and validates it as a SARIF document.
func ValidateFile(path string) error {
	data, err := safeio.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return Validate(data)
}
