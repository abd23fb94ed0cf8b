package app

import "github.com/gosectools/sariffix/internal/config"

type Request struct {
	InputPath  string
	OutputPath string
	Validate   bool
	ConfigPath string
}

func DefaultRequest() Request {
	settings := config.Defaults()
	return Request{
		InputPath:  settings.InputPath,
		OutputPath: settings.OutputPath,
	}
}
