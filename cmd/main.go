package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/agglayer/aggsandbox"
	"github.com/agglayer/aggsandbox/config"
	"github.com/agglayer/aggsandbox/types"
	"github.com/urfave/cli/v2"
)

const appName = "aggsandbox"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s) applied on top of the sandbox defaults",
		Required: false,
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: " + config.SaveConfigFileName + ")",
		Required: false,
	}
)

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	app := cli.NewApp()
	app.Name = appName
	app.Usage = "Claim LxLy bridge deposits on the sandbox networks"
	app.Version = aggsandbox.Version
	app.Flags = []cli.Flag{
		&configFileFlag,
		&saveConfigFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:   "version",
			Usage:  "Application version and build",
			Action: versionCmd,
		},
		{
			Name:   "config",
			Usage:  "Print the default configuration",
			Action: configCmd,
			Flags:  []cli.Flag{&schemaFlag, &dumpFlag},
		},
		claimCommand(),
		claimAllCommand(),
		planCommand(),
		proofCommand(),
		utilsCommand(),
		claimsCommand(),
		sponsorClaimCommand(),
		sponsorStatusCommand(),
		journalCommand(),
	}

	return app
}

// printError writes err and, for claim failures, what the user can do about it
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	var claimErr *types.ClaimError
	if errors.As(err, &claimErr) {
		if hint := claimErr.Remediation(); hint != "" {
			fmt.Fprintf(w, "hint: %s\n", hint)
		}
	}
}

func versionCmd(cliCtx *cli.Context) error {
	aggsandbox.PrintVersion(cliCtx.App.Writer)
	return nil
}
