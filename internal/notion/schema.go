package notion

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrInvalidPayload reports a JSON document that is neither a block list
// nor a page of blocks
var ErrInvalidPayload = errors.New("invalid block payload")

const payloadSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$defs": {
    "block": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "object": {"type": "string"},
        "id": {"type": "string"},
        "type": {"type": "string", "minLength": 1},
        "has_children": {"type": "boolean"}
      }
    },
    "blocks": {
      "type": ["array", "null"],
      "items": {"$ref": "#/$defs/block"}
    }
  },
  "oneOf": [
    {"$ref": "#/$defs/blocks"},
    {
      "type": "object",
      "required": ["children"],
      "properties": {
        "id": {"type": "string"},
        "children": {"$ref": "#/$defs/blocks"}
      }
    }
  ]
}`

var compiledPayloadSchema = jsonschema.MustCompileString("blocks.json", payloadSchema)

// ValidateJSON checks that data is a block list or a page whose top-level
// blocks all name their type
func ValidateJSON(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse json: %w", err)
	}

	if err := compiledPayloadSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}
