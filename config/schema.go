package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/pelletier/go-toml/v2"
)

const redacted = "<redacted>"

// Schema returns the JSON schema of the configuration file
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// mapstructure tags are the file keys
		FieldNameTag:               "mapstructure",
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := r.Reflect(&Config{})
	schema.Title = "aggsandbox config file"

	return json.MarshalIndent(schema, "", "  ")
}

// Dump renders cfg as TOML with the signer secrets redacted
func Dump(cfg *Config) (string, error) {
	cp := *cfg
	if cp.Claimer.Signer.PrivateKey != "" {
		cp.Claimer.Signer.PrivateKey = redacted
	}
	if cp.Claimer.Signer.Keystore.Password != "" {
		cp.Claimer.Signer.Keystore.Password = redacted
	}
	out, err := toml.Marshal(cp)
	if err != nil {
		return "", fmt.Errorf("fail to marshal config to toml. Err: %w", err)
	}

	return string(out), nil
}
