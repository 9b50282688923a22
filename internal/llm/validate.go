package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled documents by Schema.Name. The refinement
// pass uses one schema for its whole run, so compilation happens once.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// checkPayload verifies raw against the schema. A nil schema accepts
// anything. Failures come back as bad-payload errors carrying the payload.
func checkPayload(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return badPayload(raw, fmt.Errorf("not JSON: %w", err))
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return badPayload(raw, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return badPayload(raw, err)
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded document, not a Go map with typed
	// values, so round-trip the definition through JSON.
	text, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %q: %w", schema.Name, err)
	}
	var doc any
	if err := json.Unmarshal(text, &doc); err != nil {
		return nil, fmt.Errorf("decode schema %q: %w", schema.Name, err)
	}

	url := fmt.Sprintf("schema://%s.json", schema.Name)
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("register schema %q: %w", schema.Name, err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
