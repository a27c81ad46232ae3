package dictionary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestTag is the on-disk shape of one tag entry within a manifest.
type manifestTag struct {
	Tag         string   `json:"tag"`
	Description string   `json:"description"`
	OptIn       bool     `json:"opt_in"`
	Words       []string `json:"words"`
}

// manifestDictionary is the on-disk shape of one dictionary kind.
type manifestDictionary struct {
	Kind  string        `json:"kind"`
	Words []string      `json:"words"`
	Tags  []manifestTag `json:"tags"`
}

// manifest is the top-level on-disk shape FileProvider reads.
type manifest struct {
	Dictionaries []manifestDictionary `json:"dictionaries"`
}

var compiledManifestSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema://dictionary-manifest.json", strings.NewReader(manifestSchema)); err != nil {
		panic(fmt.Sprintf("dictionary: invalid embedded manifest schema: %v", err))
	}
	schema, err := compiler.Compile("schema://dictionary-manifest.json")
	if err != nil {
		panic(fmt.Sprintf("dictionary: failed to compile embedded manifest schema: %v", err))
	}
	return schema
}()

// parseManifest validates raw against the manifest schema and unmarshals it.
func parseManifest(raw []byte) (*manifest, error) {
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("dictionary: invalid JSON: %w", err)
	}
	if err := compiledManifestSchema.Validate(generic); err != nil {
		return nil, fmt.Errorf("dictionary: manifest failed schema validation: %w", err)
	}

	var m manifest
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("dictionary: manifest decode: %w", err)
	}
	return &m, nil
}

// toSnapshot converts a validated manifest into the Info/Tag slices the
// Provider interface serves, plus the word lists Snapshot retains for
// CacheCodec round-tripping.
func (m *manifest) toSnapshot() *Snapshot {
	snap := &Snapshot{}
	for _, d := range m.Dictionaries {
		snap.Infos = append(snap.Infos, Info{Kind: d.Kind, Count: len(d.Words)})
		snap.Words = append(snap.Words, wordSet{Kind: d.Kind, Words: append([]string(nil), d.Words...)})
		for _, t := range d.Tags {
			snap.Tags = append(snap.Tags, Tag{
				Kind:        d.Kind,
				Tag:         t.Tag,
				Description: t.Description,
				OptInOnly:   t.OptIn,
				WordCount:   len(t.Words),
			})
		}
	}
	return snap
}
