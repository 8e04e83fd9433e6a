package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmagro/chainfetch/internal/api"
	"github.com/dmagro/chainfetch/internal/config"
	"github.com/dmagro/chainfetch/internal/output"
)

func blockCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "block <height|hash> [id...]",
		Short: "Fetch and display block details",
		Long: `Fetch a block by height, block index or hash.

Examples:
  chainfetch block 840000
  chainfetch block 0000000000000000000320283a032748cef8227873ff4872689bf23f1cda83a5
  chainfetch block 840000 840001 --limit 10
  chainfetch block 840000 --raw`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usage()
				return nil
			}
			return a.runFetch(cmd, "block", args, blockFetcher)
		},
	}
}

func blockHashCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blockhash <hash> [hash...]",
		Short: "Fetch and display a block by its hash",
		Long: `Like block, but every identifier must be a 64-character block hash.

Examples:
  chainfetch blockhash 000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				a.usage()
				return nil
			}
			return a.runFetch(cmd, "block", args, func(c *api.Client, cfg *config.Config) fetchFunc {
				fetch := blockFetcher(c, cfg)
				return func(ctx context.Context, id string) (fetched, error) {
					hash, err := api.NormalizeHash(id)
					if err != nil {
						return fetched{}, err
					}
					return fetch(ctx, hash)
				}
			})
		},
	}
}

// blockFetcher picks the decode shape from the client's flavor.
func blockFetcher(c *api.Client, cfg *config.Config) fetchFunc {
	limit := cfg.Defaults.TxLimit

	if c.Flavor() == api.FlavorSimple {
		return func(ctx context.Context, id string) (fetched, error) {
			resp, err := c.SimpleBlock(ctx, id)
			f := newFetched(resp)
			if err != nil {
				return f, err
			}
			f.formatter = &output.SimpleBlockFormatter{Block: resp.Record, Limit: limit, Latency: f.latency}
			return f, nil
		}
	}

	return func(ctx context.Context, id string) (fetched, error) {
		resp, err := c.Block(ctx, id)
		f := newFetched(resp)
		if err != nil {
			return f, err
		}
		f.formatter = &output.BlockFormatter{Block: resp.Record, Limit: limit, Latency: f.latency}
		return f, nil
	}
}
