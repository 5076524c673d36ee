// Package cli implements the ytscraper command tree.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go_ytscraper/ytscraper"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	apiKey  string
	timeout time.Duration
	baseURL string
	compact bool
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "ytscraper",
		Short: "Query the YouTube scraper API and print raw JSON",
		Long: `ytscraper calls the YouTube scraper API on RapidAPI and prints the response payload.

Optional flags that are not given are not sent at all. Pagination is manual:
copy the continuation token from one response into --continuation.

Examples:
  ytscraper search "lofi" --type VIDEO
  ytscraper video replies <token>
  ytscraper channel videos UCxxxx --continuation <token>
  ytscraper trending top-video --period WEEKLY --date 20260105 --country US`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.apiKey, "api-key", env.Str("RAPIDAPI_KEY", ""), "RapidAPI key (default $RAPIDAPI_KEY)")
	pf.DurationVar(&g.timeout, "timeout", env.Duration("YT_TIMEOUT", ytscraper.DefaultTimeout), "Per-request timeout")
	pf.StringVar(&g.baseURL, "base-url", ytscraper.DefaultBaseURL, "API base URL")
	pf.BoolVar(&g.compact, "compact", false, "Print the payload exactly as received")
	pf.String("gl", "", "Geography code (e.g. US)")
	pf.String("hl", "", "Language code (e.g. en)")
	_ = pf.MarkHidden("base-url")

	root.AddCommand(
		newSearchCmd(g),
		newSuggestCmd(g),
		newVideoCmd(g),
		newChannelCmd(g),
		newTrendingCmd(g),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (g *globalFlags) client() (*ytscraper.Client, error) {
	return ytscraper.New(
		ytscraper.Config{APIKey: g.apiKey, Timeout: g.timeout},
		ytscraper.WithBaseURL(g.baseURL),
	)
}

type fetchFunc func(ctx context.Context, c *ytscraper.Client) (json.RawMessage, error)

// runFetch builds the client, runs fetch and prints the payload.
func (g *globalFlags) runFetch(cmd *cobra.Command, fetch fetchFunc) error {
	c, err := g.client()
	if err != nil {
		return err
	}
	payload, err := fetch(cmd.Context(), c)
	if err != nil {
		return err
	}
	return g.print(cmd, payload)
}

func (g *globalFlags) print(cmd *cobra.Command, payload json.RawMessage) error {
	out := cmd.OutOrStdout()
	if g.compact {
		_, err := fmt.Fprintln(out, string(payload))
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		_, err = fmt.Fprintln(out, string(payload))
		return err
	}
	_, err := fmt.Fprintln(out, buf.String())
	return err
}

// optFlag returns nil unless the flag was given on the command line.
func optFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

func optEnum[T ~string](cmd *cobra.Command, name string) *T {
	v := optFlag(cmd, name)
	if v == nil {
		return nil
	}
	e := T(strings.ToUpper(*v))
	return &e
}

func locale(cmd *cobra.Command) ytscraper.Locale {
	return ytscraper.Locale{GL: optFlag(cmd, "gl"), HL: optFlag(cmd, "hl")}
}
