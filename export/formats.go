// Package export serializes a validation schema document.
package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatJSON produces the canonical {"schema.org": {...}} document.
	FormatJSON Format = "json"

	// FormatJSModule produces the class mapping as a frozen JavaScript
	// object assigned to module.jsonldSchemaPropObj.
	FormatJSModule Format = "js"
)

// ErrUnknownFormat is returned for a format missing from FormatRegistry.
var ErrUnknownFormat = errors.New("unknown output format")

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// DefaultFile is the file name written when no output path is set.
	DefaultFile string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		DefaultFile: "jsonldSchema.json",
		Description: "JSON validation schema keyed by schema.org",
	},
	FormatJSModule: {
		Name:        FormatJSModule,
		MIMEType:    "text/javascript",
		Extension:   ".js",
		DefaultFile: "json_ld_schema.js",
		Description: "JavaScript module exposing module.jsonldSchemaPropObj",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "js", "javascript", "module":
		return FormatJSModule, nil
	default:
		return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, name, strings.Join(FormatNames(), ", "))
	}
}

// FormatNames returns the registered format names, sorted.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
