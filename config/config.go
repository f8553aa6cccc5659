package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agglayer/aggsandbox/bridgeservice"
	"github.com/agglayer/aggsandbox/claimer"
	"github.com/agglayer/aggsandbox/journal"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/orchestrator"
	"github.com/agglayer/aggsandbox/resolver"
	"github.com/agglayer/aggsandbox/types"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "AGGSANDBOX"
	ConfigType         = "toml"
	SaveConfigFileName = "aggsandbox_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

// Config represents the configuration of the claim tooling. The file is in
// TOML format; DefaultValues describes the local sandbox.
type Config struct {
	// Log configuration shared by every component
	Log log.Config
	// Networks are the chains of the sandbox, one entry per network id
	Networks []types.NetworkConfig
	// BridgeService is the client of the indexer serving deposits and proofs
	BridgeService bridgeservice.Config
	// Resolver configures the deposit and proof lookups
	Resolver resolver.Config
	// Claimer configures the claim submission engine
	Claimer claimer.Config
	// Journal configures the local record of submitted claims
	Journal journal.Config
	// Orchestrator configures the end to end claim flow
	Orchestrator orchestrator.Config
}

// Network returns the configuration of a network id
func (c *Config) Network(networkID uint32) (types.NetworkConfig, error) {
	for _, n := range c.Networks {
		if n.NetworkID == networkID {
			return n, nil
		}
	}

	return types.NetworkConfig{}, fmt.Errorf("network %d is not configured", networkID)
}

// Validate checks the parts every command relies on
func (c *Config) Validate() error {
	if len(c.Networks) == 0 {
		return errors.New("no network configured")
	}
	seen := make(map[uint32]bool, len(c.Networks))
	for _, n := range c.Networks {
		if seen[n.NetworkID] {
			return fmt.Errorf("network %d configured twice", n.NetworkID)
		}
		seen[n.NetworkID] = true
		if err := n.Validate(); err != nil {
			return err
		}
	}
	if _, err := c.Claimer.Layout(); err != nil {
		return fmt.Errorf("Claimer: %w", err)
	}

	return c.BridgeService.Validate()
}

// Load loads the configuration from the files passed with --cfg on top of the defaults
func Load(ctx *cli.Context) (*Config, error) {
	filesData, err := readFiles(ctx.StringSlice(FlagCfg))
	if err != nil {
		return nil, fmt.Errorf("error reading files:  Err:%w", err)
	}

	return LoadFile(filesData, ctx.String(FlagSaveConfigPath))
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		if fileExtension := getFileExtension(file); fileExtension != ConfigType {
			fileContent, err = convertFileToToml(fileContent, fileExtension)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, fileExtension, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}

	return result, nil
}

func getFileExtension(fileName string) string {
	return strings.TrimPrefix(filepath.Ext(fileName), ".")
}

// LoadFile renders the defaults and files and decodes the result. The
// rendered TOML is written to saveConfigPath when it is not empty.
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2) //nolint:mnd
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	renderedCfg, err := NewRenderer(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		if err := os.WriteFile(fullPath, []byte(renderedCfg), DefaultCreationFilePermissions); err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}

	return LoadFileFromString(renderedCfg, ConfigType)
}

// LoadFileFromString decodes an already rendered configuration
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		replacer := strings.NewReplacer(".", "_")
		v.SetEnvKeyReplacer(replacer)
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}

	return v.Unmarshal(cfg, decodeHooks...)
}
