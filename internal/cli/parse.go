package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gosectools/sariffix/internal/app"
	"github.com/gosectools/sariffix/internal/config"
)

var ErrHelpRequested = errors.New("help requested")

func ParseArgs(args []string) (app.Request, error) {
	req := app.DefaultRequest()
	if len(args) > 0 && isHelpArg(args[0]) {
		return req, ErrHelpRequested
	}

	fs := flag.NewFlagSet("sariffix", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	inputPath := fs.String("input", "", "raw gosec SARIF report path")
	outputPath := fs.String("output", "", "fixed report destination path")
	validate := fs.Bool("validate", false, "validate the fixed report against the upload schema")
	configPath := fs.String("config", "", "config file path")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return req, ErrHelpRequested
		}
		return req, err
	}
	if fs.NArg() > 0 {
		return req, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	visited := visitedFlags(fs)

	overrides, resolvedConfigPath, err := config.Load(".", strings.TrimSpace(*configPath))
	if err != nil {
		return req, err
	}
	settings := overrides.Apply(config.Defaults())

	if visited["input"] {
		settings.InputPath = strings.TrimSpace(*inputPath)
	}
	if visited["output"] {
		settings.OutputPath = strings.TrimSpace(*outputPath)
	}
	if visited["validate"] {
		settings.Validate = *validate
	}
	if err := settings.Check(); err != nil {
		return req, err
	}

	req.InputPath = settings.InputPath
	req.OutputPath = settings.OutputPath
	req.Validate = settings.Validate
	req.ConfigPath = resolvedConfigPath

	return req, nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func visitedFlags(fs *flag.FlagSet) map[string]bool {
	visited := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		visited[f.Name] = true
	})
	return visited
}
