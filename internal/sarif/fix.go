package sarif

import (
	"encoding/json"
	"fmt"

	"github.com/gosectools/sariffix/internal/safeio"
)

const fixesKey = "fixes"

// StripFixes removes the "fixes" key from every result object in the
// document, in place, and returns the number of keys removed. Only the
// presence of the key matters; its value is never inspected. The document is
// otherwise left untouched.
func StripFixes(doc map[string]interface{}) (int, error) {
	runsValue, ok := doc["runs"]
	if !ok {
		return 0, nil
	}
	runs, ok := runsValue.([]interface{})
	if !ok {
		return 0, fmt.Errorf("runs: expected an array, got %T", runsValue)
	}

	removed := 0
	for i, runValue := range runs {
		run, ok := runValue.(map[string]interface{})
		if !ok {
			return removed, fmt.Errorf("runs[%d]: expected an object, got %T", i, runValue)
		}
		resultsValue, ok := run["results"]
		if !ok {
			continue
		}
		results, ok := resultsValue.([]interface{})
		if !ok {
			return removed, fmt.Errorf("runs[%d].results: expected an array, got %T", i, resultsValue)
		}
		for j, resultValue := range results {
			result, ok := resultValue.(map[string]interface{})
			if !ok {
				return removed, fmt.Errorf("runs[%d].results[%d]: expected an object, got %T", i, j, resultValue)
			}
			if _, ok := result[fixesKey]; ok {
				delete(result, fixesKey)
				removed++
			}
		}
	}
	return removed, nil
}

// FixFile reads a SARIF report from inputPath, strips the "fixes" key from
// every result, and writes the document pretty-printed to outputPath. It
// returns the number of keys removed.
func FixFile(inputPath, outputPath string) (int, error) {
	data, err := safeio.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", inputPath, err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse %s: %w", inputPath, err)
	}

	removed, err := StripFixes(doc)
	if err != nil {
		return 0, fmt.Errorf("fix %s: %w", inputPath, err)
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("serialize %s: %w", outputPath, err)
	}
	if err := safeio.WriteFile(outputPath, append(payload, '\n')); err != nil {
		return 0, fmt.Errorf("write %s: %w", outputPath, err)
	}
	return removed, nil
}
