// Package probe runs the identification queries and prints what they
// report, as text for people or as json/yaml for tools.
package probe

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for an output format other than
// text, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects how results are printed.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%q:%w", s, ErrUnknownFormat)
}

// Hex is a register word that is printed as 0x%08x in every format.
type Hex uint32

func (h Hex) String() string {
	return fmt.Sprintf("0x%08x", uint32(h))
}

func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h Hex) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

// write renders v in the machine formats, or calls text for FormatText.
func write(w io.Writer, format Format, v interface{}, text func(io.Writer) error) error {
	switch format {
	case FormatText:
		return text(w)
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json:%w", err)
		}

		_, err = fmt.Fprintf(w, "%s\n", b)

		return err
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal yaml:%w", err)
		}

		_, err = w.Write(b)

		return err
	}

	return fmt.Errorf("%q:%w", format, ErrUnknownFormat)
}
