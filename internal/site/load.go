package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/DukeRupert/frontdoor/internal/domain"
)

//go:embed default.yaml
var defaultContent []byte

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Default returns the embedded site content.
func Default() (*Config, error) {
	return Parse(defaultContent)
}

// Load reads site content from path. An empty path loads the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("site config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML content and validates it. Unknown keys are rejected so
// typos in the content file fail loudly instead of rendering empty sections.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.Invalid("site.parse", "site config is empty")
		}
		return nil, domain.Wrap(err, domain.EINVALID, "site.parse", "site config is not valid YAML")
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required content. Field errors are keyed by their YAML
// path, e.g. "business.email".
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.Internal(err, "site.validate", "site config validation failed")
	}

	ve := &domain.ValidationError{Op: "site.validate", Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		ve.Fields[fieldPath(fe.Namespace())] = fieldMessage(fe)
	}
	return ve
}

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// fieldPath drops the root struct name: "Config.business.email" -> "business.email".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be an email address"
	case "url":
		return "must be an absolute URL"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
