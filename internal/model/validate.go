package model

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/profile.schema.json
var profileSchema []byte

// ValidateProfile validates a normalized profile (any value that marshals to
// the profile document) against the embedded profile.schema.json.
func ValidateProfile(v interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(profileSchema)
	docLoader := gojsonschema.NewGoLoader(v)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("profile schema validation failed: %s", msgs)
}
