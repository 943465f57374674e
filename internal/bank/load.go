package bank

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank format major version this build reads.
const SupportedMajor = "v1"

// Format is a bank file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnsupportedFormat is returned for unknown file types or bank format
	// versions this build cannot read.
	ErrUnsupportedFormat = errors.New("unsupported bank format")

	// ErrSchema is returned when a bank document fails schema validation.
	ErrSchema = errors.New("bank does not match schema")
)

// FormatOf infers the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads and validates the bank at path.
func Load(path string) (*Bank, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank: %w", err)
	}
	b, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// LoadOrDefault loads path, or the embedded bank when path is empty.
func LoadOrDefault(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Parse decodes, schema-validates and checks a bank document.
func Parse(data []byte, format Format) (*Bank, error) {
	doc, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var b Bank
	if err := json.Unmarshal(doc, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if err := checkFormat(b.Format); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Save writes the bank to path in the encoding implied by its extension.
func (b *Bank) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(b, "", "  ")
		data = append(data, '\n')
	default:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(b)
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("encode bank: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write bank: %w", err)
	}
	return nil
}

// toJSON normalizes a YAML or JSON document to JSON bytes.
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// checkFormat accepts an empty format (treated as the supported major) or
// any semantic version with the supported major.
func checkFormat(format string) error {
	if format == "" {
		return nil
	}
	if !semver.IsValid(format) {
		return fmt.Errorf("%w: invalid version %q", ErrUnsupportedFormat, format)
	}
	if semver.Major(format) != SupportedMajor {
		return fmt.Errorf("%w: version %s, this build reads %s", ErrUnsupportedFormat, format, SupportedMajor)
	}
	return nil
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

const schemaURL = "schema://quizbook/bank.schema.json"

func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := dataFS.ReadFile("data/bank.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read bank schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse bank schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

func validateDocument(doc []byte) error {
	sch, err := bankSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parse bank: %w", err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return nil
}
