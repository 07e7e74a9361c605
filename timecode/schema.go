package timecode

import "github.com/invopop/jsonschema"

// Schema reflects the JSON Schema of the annotation sidecar format.
// Exposed through the `schema` CLI command so external annotation producers
// can validate their output.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	return reflector.Reflect(&Entry{})
}
