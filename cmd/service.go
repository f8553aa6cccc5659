package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/agglayer/aggsandbox/bridgeservice"
	"github.com/agglayer/aggsandbox/globalindex"
	"github.com/agglayer/aggsandbox/journal"
	"github.com/urfave/cli/v2"
)

const (
	flagPage     = "page"
	flagPageSize = "page-size"
	flagLimit    = "limit"

	defaultJournalLimit = 50
)

func claimsCommand() *cli.Command {
	return &cli.Command{
		Name:   "claims",
		Usage:  "List the claims the bridge service indexed on a network",
		Action: claimsCmd,
		Flags: []cli.Flag{
			&networkFlag,
			&cli.UintFlag{Name: flagPage, Usage: "Page number, 0 uses the bridge service default"},
			&cli.UintFlag{Name: flagPageSize, Usage: "Page size, 0 uses the configured one"},
			&jsonFlag,
		},
	}
}

func sponsorClaimCommand() *cli.Command {
	return &cli.Command{
		Name:   "sponsor-claim",
		Usage:  "Ask the bridge service of the destination network to send the claims of a bridge tx",
		Action: sponsorClaimCmd,
		Flags: []cli.Flag{
			&networkFlag, &sourceNetworkFlag, &txHashFlag, &depositCountFlag, &skipPreflightFlag, &layoutFlag,
		},
	}
}

func sponsorStatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "sponsor-status",
		Usage:  "Print the status of a sponsored claim",
		Action: sponsorStatusCmd,
		Flags:  []cli.Flag{&networkFlag, &globalIndexFlag},
	}
}

func journalCommand() *cli.Command {
	return &cli.Command{
		Name:   "journal",
		Usage:  "List the claim txs submitted from this machine",
		Action: journalCmd,
		Flags: []cli.Flag{
			&networkFlag,
			&cli.IntFlag{Name: flagLimit, Usage: "Number of entries", Value: defaultJournalLimit},
		},
	}
}

func claimsCmd(cliCtx *cli.Context) error {
	network, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	page, err := uint32Flag(cliCtx, flagPage)
	if err != nil {
		return err
	}
	pageSize, err := uint32Flag(cliCtx, flagPageSize)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	res, err := a.bridge.Claims(cliCtx.Context, network, page, pageSize)
	if err != nil {
		return err
	}
	if cliCtx.Bool(flagJSON) {
		return writeJSON(cliCtx.App.Writer, res)
	}
	layout, err := a.cfg.Claimer.Layout()
	if err != nil {
		return err
	}
	printClaims(cliCtx.App.Writer, layout, res)

	return nil
}

func printClaims(w io.Writer, layout globalindex.Layout, res *bridgeservice.ClaimsResponse) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "BLOCK\tGLOBAL INDEX\tDEPOSIT\tSOURCE\tAMOUNT\tDESTINATION ADDRESS\tTX")
	for _, c := range res.Claims {
		deposit, source := "-", "-"
		if gi, err := c.GlobalIndexInt(); err == nil {
			if count, src, _, err := layout.Decode(gi); err == nil {
				deposit, source = fmt.Sprintf("%d", count), fmt.Sprintf("%d", src)
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", c.BlockNum, c.GlobalIndex, deposit, source,
			c.Amount, c.DestinationAddress.Hex(), c.TxHash.Hex())
	}
	fmt.Fprintf(tw, "%d claim(s) in total\n", res.Count)
	_ = tw.Flush()
}

func sponsorClaimCmd(cliCtx *cli.Context) error {
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	args, payloads, err := sponsorRequests(cliCtx, a)
	if err != nil {
		return err
	}
	// sponsored claims are sent in plan order, the service keeps the order
	for _, p := range payloads {
		if err := a.bridge.SponsorClaim(cliCtx.Context, args.DestinationNetwork, p); err != nil {
			return fmt.Errorf("sponsor claim with global index %s: %w", p.GlobalIndex, err)
		}
		fmt.Fprintf(cliCtx.App.Writer, "sponsored claim with global index %s\n", p.GlobalIndex)
	}

	return nil
}

func sponsorStatusCmd(cliCtx *cli.Context) error {
	network, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	globalIndex, err := bigIntFlag(cliCtx, flagGlobalIndex)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	status, err := a.bridge.SponsoredClaimStatus(cliCtx.Context, network, globalIndex)
	if err != nil {
		return err
	}
	fmt.Fprintln(cliCtx.App.Writer, status)

	return nil
}

func journalCmd(cliCtx *cli.Context) error {
	network, err := uint32Flag(cliCtx, flagNetwork)
	if err != nil {
		return err
	}
	a, err := newApp(cliCtx)
	if err != nil {
		return err
	}
	defer a.close()
	if a.journal == nil {
		return fmt.Errorf("the journal is disabled, set Journal.DBPath")
	}
	entries, err := a.journal.List(cliCtx.Context, network, cliCtx.Int(flagLimit))
	if err != nil {
		return err
	}
	printJournal(cliCtx.App.Writer, entries)

	return nil
}

func printJournal(w io.Writer, entries []*journal.Entry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	fmt.Fprintln(tw, "UPDATED\tGLOBAL INDEX\tDEPOSIT\tSOURCE\tNONCE\tSTATUS\tTX\tREASON")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			time.Unix(e.UpdatedAt, 0).UTC().Format(time.RFC3339), e.GlobalIndex.String(),
			e.DepositCount, e.SourceNetwork, e.Nonce, e.Status, e.TxHash.Hex(), e.Reason)
	}
	_ = tw.Flush()
}
