package filestore

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// collectionSchema describes the only document shape this store accepts: a
// flat array of complete todo objects. Unknown fields are rejected rather
// than silently dropped, since a whole-file rewrite would lose them.
var collectionSchema = jsonschema.MustCompileString("todos.schema.json", `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "title", "completed"],
		"additionalProperties": false,
		"properties": {
			"id": {"type": "integer", "minimum": 1},
			"title": {"type": "string"},
			"completed": {"type": "boolean"}
		}
	}
}`)
