package section

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON Schema every section file must satisfy.
//
//go:embed section.schema.json
var Schema string

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
})

var coordinateField = regexp.MustCompile(`^vertices\.\d+\.[xy]$`)

// ValidateDocument checks a decoded JSON or YAML document against Schema.
func ValidateDocument(doc interface{}) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("loading section schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("validating section: %w", err)
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	verr := &ValidationError{}
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Field()+": "+e.Description())
		if e.Type() == "invalid_type" && coordinateField.MatchString(e.Field()) {
			verr.err = ErrInvalidCoordinate
		}
	}
	if len(errs) == 1 {
		verr.Field = errs[0].Field()
		verr.msg = errs[0].Description()
	} else {
		verr.msg = strings.Join(msgs, "; ")
	}
	return verr
}
