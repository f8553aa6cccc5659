package main

import (
	"strings"

	"github.com/agglayer/aggsandbox/config"
	"github.com/urfave/cli/v2"
)

const (
	flagSchema = "schema"
	flagDump   = "dump"
)

var (
	schemaFlag = cli.BoolFlag{
		Name:  flagSchema,
		Usage: "Print the JSON schema of the configuration file",
	}
	dumpFlag = cli.BoolFlag{
		Name:  flagDump,
		Usage: "Print the configuration resolved from --cfg, the defaults and the environment",
	}
)

func configCmd(cliCtx *cli.Context) error {
	w := cliCtx.App.Writer
	switch {
	case cliCtx.Bool(flagSchema):
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = w.Write(append(schema, '\n'))
		return err
	case cliCtx.Bool(flagDump):
		cfg, err := config.Load(cliCtx)
		if err != nil {
			return err
		}
		out, err := config.Dump(cfg)
		if err != nil {
			return err
		}
		_, err = w.Write([]byte(out))
		return err
	}

	// String buffer to concatenate all the default config vars
	defaultConfig := strings.Builder{}
	defaultConfig.WriteString(config.DefaultVars)
	defaultConfig.WriteString(config.DefaultValues)
	_, err := w.Write([]byte(defaultConfig.String()))

	return err
}
