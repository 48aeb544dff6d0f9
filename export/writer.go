package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/c360studio/semschema/schema"
)

// Indent is the indentation used for every JSON output.
const Indent = "    "

// ErrNoRootKey is returned when decoding a document without the
// "schema.org" root key, e.g. a file in the older flat
// {"subclasses", "props"} layout.
var ErrNoRootKey = errors.New(`document has no "` + schema.RootKey + `" root key`)

const jsModuleHeader = `/**
 * Generated by semschema from the schema.org vocabulary. Do not edit.
 *
 * Format:
 * {
 *   SchemaOrgClass: {
 *     "properties": { prop: {"types": [Type, ...]}, ... },
 *     "requiredProperties": [prop, ...],
 *     "parent": SchemaOrgParentClass
 *   }
 * }
 *
 * A class inherits the properties of its parent chain. Details of a class
 * or property are at https://schema.org/<Name>.
 */
`

// Marshal renders doc as JSON with 4-space indentation and a trailing
// newline. HTML characters are left unescaped.
func Marshal(doc *schema.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeJSON(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *schema.Document, format Format) error {
	switch format {
	case FormatJSON:
		return encodeJSON(w, doc)
	case FormatJSModule:
		return encodeJSModule(w, doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes doc to path, truncating any existing file.
func WriteFile(path string, doc *schema.Document, format Format) error {
	if _, ok := GetFormatInfo(format); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := Encode(f, doc, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	return nil
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func encodeJSModule(w io.Writer, doc *schema.Document) error {
	var body bytes.Buffer
	if err := encodeJSON(&body, doc.Classes); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString(jsModuleHeader)
	buf.WriteString("module.jsonldSchemaPropObj = Object.freeze(")
	buf.Write(bytes.TrimRight(body.Bytes(), "\n"))
	buf.WriteString(");\n")

	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads a JSON document.
func Decode(r io.Reader) (*schema.Document, error) {
	var doc schema.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}
	if doc.Classes == nil {
		return nil, ErrNoRootKey
	}
	doc.Normalize()
	return &doc, nil
}

// ReadFile reads a JSON document written by WriteFile with FormatJSON.
func ReadFile(path string) (*schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schema document: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
