package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmagro/chainfetch/internal/api"
	"github.com/dmagro/chainfetch/internal/config"
	"github.com/dmagro/chainfetch/internal/output"
)

func transactionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "transaction <hash|index> [id...]",
		Aliases: []string{"tx"},
		Short:   "Fetch and display transaction details",
		Long: `Fetch a transaction by hash or transaction index.

Examples:
  chainfetch transaction b6f6991d03df0e2e04dafffcd6bc418aac66049e2cd74b80f14ac86db1e3f0da
  chainfetch tx 6500 7002
  chainfetch --api simple transaction 0x5c504ed4`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usage()
				return nil
			}
			return a.runFetch(cmd, "transaction", args, transactionFetcher)
		},
	}
}

func transactionFetcher(c *api.Client, _ *config.Config) fetchFunc {
	if c.Flavor() == api.FlavorSimple {
		return func(ctx context.Context, id string) (fetched, error) {
			resp, err := c.SimpleTransaction(ctx, id)
			f := newFetched(resp)
			if err != nil {
				return f, err
			}
			f.formatter = &output.SimpleTransactionFormatter{Tx: resp.Record, Latency: f.latency}
			return f, nil
		}
	}

	return func(ctx context.Context, id string) (fetched, error) {
		resp, err := c.Transaction(ctx, id)
		f := newFetched(resp)
		if err != nil {
			return f, err
		}
		f.formatter = &output.TransactionFormatter{Tx: resp.Record, Latency: f.latency}
		return f, nil
	}
}
