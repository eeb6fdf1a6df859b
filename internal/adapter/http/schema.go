package httpadapter

import (
	"strings"

	"github.com/juju/errors"
	"github.com/xeipuuv/gojsonschema"
)

// campaignCreateSchema mirrors domain.CampaignInput. Unknown properties,
// including id and createdAt, are ignored.
const campaignCreateSchema = `{
	"type": "object",
	"required": ["name", "channel", "spend", "roi"],
	"properties": {
		"name":        {"type": "string", "minLength": 1},
		"channel":     {"type": "string"},
		"spend":       {"type": "string", "pattern": "^-?[0-9]+(\\.[0-9]+)?$"},
		"conversions": {"type": "integer", "minimum": 0},
		"roi":         {"type": "string", "pattern": "^-?[0-9]+(\\.[0-9]+)?$"},
		"status":      {"type": "string", "enum": ["active", "paused", "completed"]}
	}
}`

// campaignPatchSchema mirrors domain.CampaignPatch: every field optional,
// null meaning "leave unchanged".
const campaignPatchSchema = `{
	"type": "object",
	"properties": {
		"name":        {"type": ["string", "null"], "minLength": 1},
		"channel":     {"type": ["string", "null"]},
		"spend":       {"type": ["string", "null"], "pattern": "^-?[0-9]+(\\.[0-9]+)?$"},
		"conversions": {"type": ["integer", "null"], "minimum": 0},
		"roi":         {"type": ["string", "null"], "pattern": "^-?[0-9]+(\\.[0-9]+)?$"},
		"status":      {"enum": ["active", "paused", "completed", null]}
	}
}`

var (
	createCampaignSchema = mustSchema(campaignCreateSchema)
	patchCampaignSchema  = mustSchema(campaignPatchSchema)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(err)
	}
	return s
}

// validate checks body against schema. Malformed JSON and schema
// violations are both reported as NotValid.
func validate(schema *gojsonschema.Schema, body []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.NewNotValid(err, "malformed JSON")
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.NotValidf("payload (%s)", strings.Join(msgs, "; "))
}
