// Package config resolves run settings from defaults, an optional YAML
// file, SEQDATES_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/roach88/seqdates/internal/render"
)

// EnvPrefix prefixes every environment override, e.g. SEQDATES_OUTPUT_FORMAT.
const EnvPrefix = "SEQDATES"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings for one run.
type Config struct {
	OutputPath      string `yaml:"output_filepath" envconfig:"OUTPUT_FILEPATH"`
	OutputFormat    string `yaml:"output_format" envconfig:"OUTPUT_FORMAT" validate:"required,oneof=json csv tsv"`
	SummarizePrefix string `yaml:"summarize" envconfig:"SUMMARIZE"`
	SummarizeFormat string `yaml:"summarize_format" envconfig:"SUMMARIZE_FORMAT" validate:"omitempty,oneof=json csv tsv"`
	WorkbookPath    string `yaml:"workbook" envconfig:"WORKBOOK" validate:"omitempty,endswith=.xlsx"`
	DatabasePath    string `yaml:"database" envconfig:"DATABASE"`
	Verbose         bool   `yaml:"verbose" envconfig:"VERBOSE"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{OutputFormat: render.JSON.String()}
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from
// the file keep their current value; unknown keys are an error.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// LoadEnv overlays SEQDATES_* variables onto cfg. Unset variables leave
// the field untouched.
func LoadEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// Resolve fills derived defaults: the summary format follows the output
// format unless set.
func (c *Config) Resolve() {
	if c.SummarizeFormat == "" {
		c.SummarizeFormat = c.OutputFormat
	}
}

var validate = validator.New()

// Validate checks every field. Format errors also match
// render.ErrUnsupportedFormat.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	unsupported := false
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "oneof":
			unsupported = true
			msgs = append(msgs, fmt.Sprintf("%s %q: must be one of %s",
				flagName(fe.Field()), fe.Value(), strings.Join(render.Formats(), ", ")))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", flagName(fe.Field())))
		case "endswith":
			msgs = append(msgs, fmt.Sprintf("%s %q: must end with %s", flagName(fe.Field()), fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s", flagName(fe.Field()), fe.Tag()))
		}
	}

	err = fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	if unsupported {
		err = fmt.Errorf("%w: %w", render.ErrUnsupportedFormat, err)
	}
	return err
}

// flagName maps a struct field to the command-line flag that sets it.
func flagName(field string) string {
	switch field {
	case "OutputPath":
		return "--output-filepath"
	case "OutputFormat":
		return "--output-format"
	case "SummarizePrefix":
		return "--summarize"
	case "SummarizeFormat":
		return "--summarize-format"
	case "WorkbookPath":
		return "--workbook"
	case "DatabasePath":
		return "--database"
	}
	return field
}

// PrimaryFormat returns the parsed primary format. Call after Validate.
func (c *Config) PrimaryFormat() (render.Format, error) {
	return render.ParseFormat(c.OutputFormat)
}

// SummaryFormat returns the parsed summary format. Call after Resolve and Validate.
func (c *Config) SummaryFormat() (render.Format, error) {
	return render.ParseFormat(c.SummarizeFormat)
}
