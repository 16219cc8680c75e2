package behavior

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// telemetrySchema constrains raw telemetry payloads before they reach the
// log. Extra fields are tolerated; the four feature fields are required
// and range-checked.
const telemetrySchema = `{
	"type": "object",
	"required": ["pause_count", "rewatch_count", "skip_ratio", "watch_percentage"],
	"properties": {
		"pause_count":      {"type": "integer", "minimum": 0},
		"rewatch_count":    {"type": "integer", "minimum": 0},
		"skip_ratio":       {"type": "number", "minimum": 0, "maximum": 1},
		"watch_percentage": {"type": "number", "minimum": 0, "maximum": 100}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// compiledTelemetrySchema compiles the schema once and caches it.
func compiledTelemetrySchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal([]byte(telemetrySchema), &doc); err != nil {
			schemaErr = fmt.Errorf("parse telemetry schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://telemetry.json"
		if err := c.AddResource(url, doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(url)
	})
	return compiledSchema, schemaErr
}

// LogJSON validates a raw telemetry payload against the schema, then
// appends it to the log. Used by callers that receive telemetry on the
// wire and want it checked before it enters the training corpus.
func (c *Classifier) LogJSON(ctx context.Context, userID, videoID string, raw []byte) error {
	schema, err := compiledTelemetrySchema()
	if err != nil {
		return err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid telemetry JSON: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("telemetry schema validation: %w", err)
	}

	var in Interaction
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("decode telemetry: %w", err)
	}
	return c.Log(ctx, userID, videoID, in)
}
