package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported settings format")

type Decoder interface {
	Decode(v any) error
}

type Encoder interface {
	Encode(v any) error
}

type DecoderFunc func(r io.Reader) Decoder
type EncoderFunc func(w io.Writer) Encoder

func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

func NewEncoderFunc[T Encoder](f func(w io.Writer) T) EncoderFunc {
	return func(w io.Writer) Encoder { return f(w) }
}

type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
	JSON Format = "json"
)

type codec struct {
	decoder DecoderFunc
	encoder EncoderFunc
}

var codecs = map[Format]codec{
	TOML: {NewDecoderFunc(toml.NewDecoder), NewEncoderFunc(toml.NewEncoder)},
	YAML: {NewDecoderFunc(yaml.NewDecoder), NewEncoderFunc(newYAMLEncoder)},
	JSON: {NewDecoderFunc(json.NewDecoder), NewEncoderFunc(newJSONEncoder)},
}

func newYAMLEncoder(w io.Writer) *yaml.Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return enc
}

func newJSONEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc
}

// FormatOf picks the format from a file extension.
func FormatOf(filename string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func lookup(format Format) (codec, error) {
	c, ok := codecs[format]
	if !ok {
		return codec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return c, nil
}
