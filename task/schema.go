package task

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema describes the persisted file format. Validation runs
// before decoding so that a corrupt file produces one precise warning
// instead of a cascade of field errors; decoding still proceeds
// tolerantly afterwards.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["nextId", "tasks"],
  "properties": {
    "nextId": {"type": "integer", "minimum": 1},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "status", "priority"],
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "name": {"type": "string", "minLength": 1},
          "status": {"type": "integer", "minimum": 1, "maximum": 3},
          "priority": {"type": "integer", "minimum": 1, "maximum": 3},
          "created_at": {"type": "integer"},
          "description": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "completed_at": {"type": "integer"},
          "due_date": {"type": "integer"}
        }
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func compileDocumentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("taskline://data.schema.json", strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("taskline://data.schema.json")
	})
	return compiledSchema, schemaErr
}

// validateDocument checks raw file contents against the document
// schema and returns the first, most specific violation.
func validateDocument(data []byte) error {
	schema, err := compileDocumentSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse data file: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return firstSchemaViolation(err)
	}
	return nil
}

func firstSchemaViolation(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := ve.InstanceLocation
	if location == "" {
		location = "/"
	}
	return fmt.Errorf("data file schema violation at %s: %s", location, ve.Message)
}
