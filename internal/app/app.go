package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gosectools/sariffix/internal/safeio"
	"github.com/gosectools/sariffix/internal/sarif"
)

var ErrMissingInput = errors.New("input file not found")

type App struct {
	Err io.Writer
}

func New(errOut io.Writer) *App {
	return &App{Err: errOut}
}

// Execute runs one fix pass and returns the success message for stdout. When
// processing fails after the input was confirmed to exist, a verbatim copy of
// the raw input is attempted at the output path before the original error is
// returned; both the failure and the fallback outcome are reported on Err.
func (a *App) Execute(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := os.Stat(req.InputPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrMissingInput, req.InputPath)
		}
		return "", fmt.Errorf("stat %s: %w", req.InputPath, err)
	}

	removed, err := sarif.FixFile(req.InputPath, req.OutputPath)
	if err != nil {
		fmt.Fprintf(a.Err, "error fixing sarif: %v\n", err)
		if copyErr := safeio.CopyFile(req.InputPath, req.OutputPath); copyErr != nil {
			fmt.Fprintf(a.Err, "failed to copy raw file: %v\n", copyErr)
		} else {
			fmt.Fprintf(a.Err, "copied raw file to %s (may fail upload)\n", req.OutputPath)
		}
		return "", err
	}

	if req.Validate {
		if err := sarif.ValidateFile(req.OutputPath); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("Fixed %s (removed %d invalid fixes fields)", req.OutputPath, removed), nil
}
