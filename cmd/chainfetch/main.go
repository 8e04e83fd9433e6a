// chainfetch fetches one block or transaction record from a public Bitcoin
// explorer API and prints it as labeled terminal output.
//
// Usage examples:
//
//	chainfetch block 840000
//	chainfetch blockhash 000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f
//	chainfetch transaction b6f6991d03df0e2e04dafffcd6bc418aac66049e2cd74b80f14ac86db1e3f0da
//	chainfetch tx 1 2 3 --concurrency 3
//	chainfetch block 840000 --raw --limit 0
//	chainfetch --api simple block 0x1a2b
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmagro/chainfetch/internal/config"
	"github.com/dmagro/chainfetch/internal/env"
)

const (
	usageLine      = "Usage: chainfetch <block|blockhash|transaction> <id> [id...]"
	invalidCommand = "Invalid command. Use 'block', 'blockhash' or 'transaction'."
)

// Process exit statuses. Fetch failures only change the status when
// --exit-codes is set; otherwise a printed failure still exits 0.
const (
	exitOK         = 0
	exitConfig     = 1
	exitIdentifier = 2
	exitTransport  = 3
	exitStatus     = 4
	exitDecode     = 5
)

func main() {
	if _, err := env.Load(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root := rootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	return a.code
}

func rootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chainfetch <block|blockhash|transaction> <id> [id...]",
		Short: "Fetch and print Bitcoin blocks and transactions",
		Long: `Fetch a block or transaction from blockchain.info (explorer flavor)
or api.blockchain.com (simple flavor) and print its fields.

Examples:
  chainfetch block 840000
  chainfetch blockhash 000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f
  chainfetch transaction <hash>
  chainfetch --api simple transaction 0x5c504ed4
  chainfetch block 840000 --raw`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Known commands never reach here; anything else with an
			// identifier is a misspelled command.
			if len(args) < 2 {
				a.usage()
				return nil
			}
			fmt.Fprintln(a.stdout, invalidCommand)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	f := cmd.PersistentFlags()
	f.StringVar(&a.opts.cfgPath, "config", config.DefaultPath, "Config file path (.yaml, .yml or .toml)")
	f.StringVar(&a.opts.api, "api", "", "API flavor: explorer|simple (default from config)")
	f.BoolVar(&a.opts.raw, "raw", false, "Print the raw JSON response before the formatted output")
	f.IntVar(&a.opts.limit, "limit", 0, "Embedded transactions listed per block, 0 lists all (default from config)")
	f.DurationVar(&a.opts.timeout, "timeout", 0, "HTTP request timeout (default from config)")
	f.IntVar(&a.opts.concurrency, "concurrency", 0, "Parallel fetches when several ids are given (default from config)")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Log requests and decoded records to stderr")
	f.BoolVar(&a.opts.noColor, "no-color", false, "Disable colored output")
	f.BoolVar(&a.opts.exitCodes, "exit-codes", false, "Exit non-zero when a fetch fails")

	cmd.AddCommand(blockCmd(a), blockHashCmd(a), transactionCmd(a))
	return cmd
}
