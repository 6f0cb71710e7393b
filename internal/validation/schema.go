package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

var (
	productConfigSchema  = mustCompile("schemas/product_config.schema.json")
	globalSettingsSchema = mustCompile("schemas/global_settings.schema.json")
)

func mustCompile(name string) *jsonschema.Schema {
	raw, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}

	url := "mem:///" + name
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add schema resource %s: %v", name, err))
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return schema
}

// SchemaError lists every schema violation of a payload
type SchemaError struct {
	Violations []string
}

func (e *SchemaError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// ValidateProductConfig checks an admin product config payload
func ValidateProductConfig(raw []byte) error {
	return validate(productConfigSchema, raw)
}

// ValidateGlobalSettings checks a global settings payload
func ValidateGlobalSettings(raw []byte) error {
	return validate(globalSettingsSchema, raw)
}

func validate(schema *jsonschema.Schema, raw []byte) error {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &SchemaError{Violations: []string{"malformed JSON: " + err.Error()}}
	}

	err := schema.Validate(payload)
	if err == nil {
		return nil
	}

	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var violations []string
	for _, unit := range verr.BasicOutput().Errors {
		if unit.Error == "" || strings.HasPrefix(unit.Error, "doesn't validate with") {
			continue
		}
		location := unit.InstanceLocation
		if location == "" {
			location = "/"
		}
		violations = append(violations, location+": "+unit.Error)
	}
	if len(violations) == 0 {
		violations = []string{verr.Error()}
	}
	return &SchemaError{Violations: violations}
}
