package contract

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/AssetManifest.v1.json
var manifestSchemaBytes []byte

//go:embed schemas/AssetManifest.media.v1.json
var mediaSchemaBytes []byte

var (
	compileOnce    sync.Once
	manifestSchema *gojsonschema.Schema
	mediaSchema    *gojsonschema.Schema
	compileErr     error
)

func compile() error {
	compileOnce.Do(func() {
		manifestSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(manifestSchemaBytes))
		if compileErr != nil {
			compileErr = fmt.Errorf("compile AssetManifest.v1.json: %w", compileErr)
			return
		}
		mediaSchema, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(mediaSchemaBytes))
		if compileErr != nil {
			compileErr = fmt.Errorf("compile AssetManifest.media.v1.json: %w", compileErr)
		}
	})
	return compileErr
}

// ValidateManifest checks an incoming manifest document against the
// AssetManifest.v1 contract.
func ValidateManifest(data []byte) error {
	return validate("AssetManifest.v1.json", data, func() *gojsonschema.Schema { return manifestSchema })
}

// ValidateEnvelope checks an outgoing media envelope against the
// AssetManifest.media.v1 contract.
func ValidateEnvelope(data []byte) error {
	return validate("AssetManifest.media.v1.json", data, func() *gojsonschema.Schema { return mediaSchema })
}

func validate(contractName string, data []byte, schema func() *gojsonschema.Schema) error {
	if err := compile(); err != nil {
		return err
	}
	result, err := schema().Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate against %s: %w", contractName, err)
	}
	if result.Valid() {
		return nil
	}
	messages := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		messages = append(messages, violation.String())
	}
	return fmt.Errorf("document does not conform to %s: %s", contractName, strings.Join(messages, "; "))
}
