// Package strictjson decodes JSON request bodies while rejecting fields
// that the operation does not accept. Mutation contracts declare a closed
// attribute set; sending anything outside it is a validation error, which
// keeps immutable attributes immutable.
package strictjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Decode unmarshals data into v after verifying that every top-level key
// is in the allowed set. The body must be a JSON object.
func Decode(data []byte, v any, allowed ...string) error {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("request body must be a JSON object")
	}

	for key := range raw {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("field %q cannot be set by this operation", key)
		}
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
