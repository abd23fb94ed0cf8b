package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosectools/sariffix/internal/safeio"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	DefaultInputPath  = "gosec-raw.sarif"
	DefaultOutputPath = "gosec.sarif"

	readConfigFileErrFmt = "read config file %s: %w"
	parseConfigErrFmt    = "parse config file %s: %w"
)

var configFileNames = []string{".sariffix.yml", ".sariffix.yaml", "sariffix.toml"}

type Settings struct {
	InputPath  string
	OutputPath string
	Validate   bool
}

type Overrides struct {
	InputPath  *string `yaml:"input" toml:"input"`
	OutputPath *string `yaml:"output" toml:"output"`
	Validate   *bool   `yaml:"validate" toml:"validate"`
}

func Defaults() Settings {
	return Settings{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

func (o Overrides) Apply(base Settings) Settings {
	resolved := base
	if o.InputPath != nil {
		resolved.InputPath = strings.TrimSpace(*o.InputPath)
	}
	if o.OutputPath != nil {
		resolved.OutputPath = strings.TrimSpace(*o.OutputPath)
	}
	if o.Validate != nil {
		resolved.Validate = *o.Validate
	}
	return resolved
}

func (s Settings) Check() error {
	if s.InputPath == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if s.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}

// Load resolves and parses the config file for workDir. An explicitPath must
// exist; otherwise the well-known file names are probed and a missing config
// is not an error. The returned path is empty when no config was found.
func Load(workDir, explicitPath string) (Overrides, string, error) {
	configPath, found, err := resolveConfigPath(workDir, strings.TrimSpace(explicitPath))
	if err != nil {
		return Overrides{}, "", err
	}
	if !found {
		return Overrides{}, "", nil
	}

	data, err := safeio.ReadFile(configPath)
	if err != nil {
		return Overrides{}, "", fmt.Errorf(readConfigFileErrFmt, configPath, err)
	}

	overrides, err := parseOverrides(configPath, data)
	if err != nil {
		return Overrides{}, "", err
	}
	return overrides, configPath, nil
}

func resolveConfigPath(workDir, explicitPath string) (string, bool, error) {
	if explicitPath != "" {
		candidate := explicitPath
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(workDir, candidate)
		}
		candidate = filepath.Clean(candidate)
		if _, err := os.Stat(candidate); err != nil {
			if os.IsNotExist(err) {
				return "", false, fmt.Errorf("config file not found: %s", candidate)
			}
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
		return candidate, true, nil
	}

	for _, name := range configFileNames {
		candidate := filepath.Join(workDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, fmt.Errorf(readConfigFileErrFmt, candidate, err)
		}
	}

	return "", false, nil
}

func parseOverrides(configPath string, data []byte) (Overrides, error) {
	var overrides Overrides
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		if err := toml.Unmarshal(data, &overrides); err != nil {
			return Overrides{}, fmt.Errorf(parseConfigErrFmt, configPath, err)
		}
	default:
		if err := yaml.Unmarshal(data, &overrides); err != nil {
			return Overrides{}, fmt.Errorf(parseConfigErrFmt, configPath, err)
		}
	}
	return overrides, nil
}
