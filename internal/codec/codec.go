// Package codec converts between encoded bytes and keyed records.
package codec

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"howett.net/plist"
)

// Format is an on-disk encoding.
type Format string

const (
	Plist Format = "plist"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// ParseFormat accepts a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Plist, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("codec: unknown format %q", s)
	}
}

// FormatForPath picks a format from a file extension, falling back to def.
func FormatForPath(path string, def Format) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}
	return def
}

// Marshal encodes v.
func Marshal(v any, f Format) ([]byte, error) {
	switch f {
	case Plist:
		return plist.MarshalIndent(v, plist.XMLFormat, "\t")
	case JSON:
		return json.MarshalIndent(v, "", "  ")
	case YAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("codec: unknown format %q", f)
	}
}

// Unmarshal decodes data into a keyed record.
func Unmarshal(data []byte, f Format) (map[string]any, error) {
	raw := map[string]any{}
	var err error
	switch f {
	case Plist:
		_, err = plist.Unmarshal(data, &raw)
	case JSON:
		err = json.Unmarshal(data, &raw)
	case YAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("codec: unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("codec: decode %s: %w", f, err)
	}
	return raw, nil
}
