package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"

	"github.com/c360studio/semschema/schema"
)

// OutputSchemaID is the $id of the generated JSON Schema.
const OutputSchemaID = "https://semschema.c360.io/schemas/validation-schema.json"

const draft07 = "http://json-schema.org/draft-07/schema#"

// OutputSchema describes the FormatJSON document as a JSON Schema. All
// definitions are inlined.
func OutputSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	s := r.Reflect(&schema.Document{})
	s.Version = draft07
	s.ID = jsonschema.ID(OutputSchemaID)
	s.Title = "schema.org validation schema"
	s.Description = "Class to property mapping generated from the schema.org vocabulary"
	return s
}

// MarshalOutputSchema renders OutputSchema with the standard indentation.
func MarshalOutputSchema() ([]byte, error) {
	data, err := json.MarshalIndent(OutputSchema(), "", Indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// CheckError lists the places where a document departs from OutputSchema.
type CheckError struct {
	Problems []string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("schema document does not match the output schema: %s", strings.Join(e.Problems, "; "))
}

// Check validates raw JSON against OutputSchema. Decode is more lenient:
// it fills in missing collections, so Check is the stricter test for
// hand-edited files.
func Check(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(OutputSchema()),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("check schema document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &CheckError{Problems: problems}
}
