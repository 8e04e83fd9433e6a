package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dmagro/chainfetch/internal/api"
	"github.com/dmagro/chainfetch/internal/batch"
	"github.com/dmagro/chainfetch/internal/config"
	"github.com/dmagro/chainfetch/internal/logging"
	"github.com/dmagro/chainfetch/internal/output"
	"github.com/dmagro/chainfetch/internal/stats"
)

type options struct {
	cfgPath     string
	api         string
	raw         bool
	limit       int
	timeout     time.Duration
	concurrency int
	verbose     bool
	noColor     bool
	exitCodes   bool
}

// app carries flag values and the writers of one invocation. code is the
// exit status decided by the command that ran.
type app struct {
	opts   options
	stdout io.Writer
	stderr io.Writer
	code   int
}

// fetched is one identifier's outcome: the formatter on success and the raw
// body whenever one was received.
type fetched struct {
	formatter output.Formatter
	url       string
	raw       []byte
	latency   time.Duration
}

type fetchFunc func(ctx context.Context, id string) (fetched, error)

func (a *app) usage() {
	fmt.Fprintln(a.stdout, usageLine)
}

// loadConfig reads the config file and applies flag overrides on top.
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("api") {
		cfg.API = api.Flavor(a.opts.api)
	}
	if flags.Changed("timeout") {
		cfg.Defaults.Timeout = a.opts.timeout
	}
	if flags.Changed("limit") {
		cfg.Defaults.TxLimit = a.opts.limit
	}
	if flags.Changed("concurrency") {
		cfg.Defaults.Concurrency = a.opts.concurrency
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (a *app) newClient(cfg *config.Config, logger *logrus.Logger) *api.Client {
	cc := cfg.ClientConfig()
	cc.Logger = logger
	return api.NewClient(cc)
}

// runFetch loads config, fetches every id and prints the results in argument
// order. record names the kind for failure lines ("block", "transaction").
func (a *app) runFetch(cmd *cobra.Command, record string, ids []string, build func(*api.Client, *config.Config) fetchFunc) error {
	if a.opts.noColor || !output.IsTerminal() {
		output.DisableColors()
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.New(a.stderr, a.opts.verbose)
	client := a.newClient(cfg, logger)
	fetch := build(client, cfg)

	logger.WithFields(logrus.Fields{
		"api":         cfg.API,
		"ids":         len(ids),
		"concurrency": cfg.Defaults.Concurrency,
	}).Debugf("fetching %s", record)

	results := batch.ExecuteAll[fetched](cmd.Context(), ids, cfg.Defaults.Concurrency, fetch)

	logLatency(logger, results)

	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(a.stdout)
		}
		if a.opts.raw && r.Value.raw != nil {
			output.RenderRaw(a.stdout, r.Value.raw)
		}
		log := logger.WithField("id", r.ID)
		if r.Value.url != "" {
			log = log.WithField("url", r.Value.url)
		}
		if r.Err != nil {
			log.WithError(r.Err).Debug("fetch failed")
			output.RenderFailure(a.stdout, record, r.Err)
			a.fail(r.Err)
			continue
		}
		log.Debug("fetched")
		if err := r.Value.formatter.Format(a.stdout); err != nil {
			return fmt.Errorf("render %s %s: %w", record, r.ID, err)
		}
	}
	return nil
}

// fail records the exit status of the first failed identifier.
func (a *app) fail(err error) {
	if !a.opts.exitCodes || a.code != exitOK {
		return
	}
	a.code = exitCodeFor(api.Classify(err))
}

func exitCodeFor(kind api.ErrorKind) int {
	switch kind {
	case api.ErrorKindNone:
		return exitOK
	case api.ErrorKindIdentifier:
		return exitIdentifier
	case api.ErrorKindTransport:
		return exitTransport
	case api.ErrorKindStatus:
		return exitStatus
	case api.ErrorKindDecode:
		return exitDecode
	default:
		return exitConfig
	}
}

func logLatency(logger *logrus.Logger, results []batch.Result[fetched]) {
	if len(results) < 2 || !logger.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	samples := make([]time.Duration, 0, len(results))
	for _, r := range results {
		if r.Value.latency > 0 {
			samples = append(samples, r.Value.latency)
		}
	}
	l := stats.Summarize(samples)
	logger.WithFields(logrus.Fields{
		"responses": l.Count,
		"min":       l.Min,
		"p50":       l.P50,
		"p95":       l.P95,
		"max":       l.Max,
	}).Debug("request latency")
}

// newFetched keeps what a response carried, even when its decode failed.
// resp is nil when no body was received.
func newFetched[T any](resp *api.Response[T]) fetched {
	if resp == nil {
		return fetched{}
	}
	return fetched{url: resp.URL, raw: resp.Raw, latency: resp.Latency}
}
