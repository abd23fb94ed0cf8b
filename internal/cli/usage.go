package cli

const usage = `Usage:
  sariffix [--input PATH] [--output PATH] [--validate] [--config PATH]

Removes the invalid "fixes" field gosec emits into SARIF results so the
report passes code scanning upload.

Options:
  --input PATH   Raw gosec SARIF report (default: gosec-raw.sarif)
  --output PATH  Fixed report destination (default: gosec.sarif)
  --validate     Validate the fixed report against the upload schema
  --config PATH  Config file (default: .sariffix.yml, .sariffix.yaml, sariffix.toml)
  -h, --help     Show this help text
`

func Usage() string {
	return usage
}
