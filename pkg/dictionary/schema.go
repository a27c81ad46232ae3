package dictionary

// manifestSchema is the JSON Schema a dictionary manifest file must satisfy
// before FileProvider will load it (spec §6.3 contract: a manifest describes
// kinds, their word counts, and per-kind tags).
const manifestSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["dictionaries"],
	"properties": {
		"dictionaries": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["kind", "words"],
				"properties": {
					"kind": {"type": "string", "minLength": 1},
					"words": {
						"type": "array",
						"items": {"type": "string"}
					},
					"tags": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["tag"],
							"properties": {
								"tag": {"type": "string", "minLength": 1},
								"description": {"type": "string"},
								"opt_in": {"type": "boolean"},
								"words": {
									"type": "array",
									"items": {"type": "string"}
								}
							}
						}
					}
				}
			}
		}
	}
}`
