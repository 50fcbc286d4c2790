// Package adsctl implements the adsd control CLI: a cobra command tree over
// the daemon's HTTP surface.
package adsctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"adsd/pkg/types"
)

// Config carries the persistent CLI options.
type Config struct {
	Addr    string
	Timeout time.Duration
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Execute runs the CLI with os.Args.
func Execute() error {
	cfg := &Config{
		Addr:    envStr("ADSD_ADDR", "http://127.0.0.1:8080"),
		Timeout: 10 * time.Second,
	}
	return buildRootCmdWith(cfg).Execute()
}

// buildRootCmdWith constructs the cobra command tree wired to a Client.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "adsctl",
		Short:         "Control and inspect a running adsd daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Addr, "addr", cfg.Addr, "Base URL of the adsd daemon (defaults ADSD_ADDR)")
	root.PersistentFlags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Request timeout")

	client := func() (*Client, context.Context, context.CancelFunc) {
		c := NewClient(cfg.Addr)
		c.HTTP.Timeout = cfg.Timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
		return c, ctx, cancel
	}

	statusCmd := &cobra.Command{
		Use:     "status",
		Short:   "Print the daemon's ad lifecycle status",
		Example: "  adsctl status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel := client()
			defer cancel()
			st, err := c.Status(ctx)
			if err != nil {
				return err
			}
			return printJSON(cmd, st)
		},
	}

	initCmd := &cobra.Command{
		Use:     "init",
		Short:   "Initialize the ad backend",
		Example: "  adsctl init",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ctx, cancel := client()
			defer cancel()
			ok, err := c.Initialize(ctx)
			if err != nil {
				return err
			}
			return printOK(cmd, ok)
		},
	}

	var adID string
	loadCmd := &cobra.Command{
		Use:     "load <kind>",
		Short:   "Start loading an ad (banner|interstitial|rewarded)",
		Example: "  adsctl load rewarded --id rewarded-main-menu",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			c, ctx, cancel := client()
			defer cancel()
			ok, err := c.Load(ctx, kind, adID)
			if err != nil {
				return err
			}
			return printOK(cmd, ok)
		},
	}
	loadCmd.Flags().StringVar(&adID, "id", "", "Placement identifier forwarded to the backend")

	showCmd := &cobra.Command{
		Use:     "show <kind>",
		Short:   "Show a loaded ad",
		Example: "  adsctl show interstitial",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			c, ctx, cancel := client()
			defer cancel()
			ok, err := c.Show(ctx, kind)
			if err != nil {
				return err
			}
			return printOK(cmd, ok)
		},
	}

	hideCmd := &cobra.Command{
		Use:     "hide <kind>",
		Short:   "Hide an active ad presentation",
		Example: "  adsctl hide banner",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKindArg(args[0])
			if err != nil {
				return err
			}
			c, ctx, cancel := client()
			defer cancel()
			ok, err := c.Hide(ctx, kind)
			if err != nil {
				return err
			}
			return printOK(cmd, ok)
		},
	}

	var (
		evKind    string
		evError   string
		evAmount  int
		evReward  string
		evSuccess bool
	)
	injectCmd := &cobra.Command{
		Use:     "inject <type>",
		Short:   "Inject a backend lifecycle event (simulates an SDK callback)",
		Example: "  adsctl inject ad_failed_to_load --kind rewarded --error \"no fill\"",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ev := types.Event{
				Type:       types.EventType(args[0]),
				Success:    evSuccess,
				Error:      evError,
				Kind:       types.AdKind(evKind),
				Amount:     evAmount,
				RewardKind: evReward,
			}
			if !types.KnownEventType(ev.Type) {
				return fmt.Errorf("unknown event type: %s", args[0])
			}
			c, ctx, cancel := client()
			defer cancel()
			if err := c.Inject(ctx, ev); err != nil {
				return err
			}
			return printOK(cmd, true)
		},
	}
	injectCmd.Flags().StringVar(&evKind, "kind", "", "Ad kind payload field")
	injectCmd.Flags().StringVar(&evError, "error", "", "Error text payload field")
	injectCmd.Flags().IntVar(&evAmount, "amount", 0, "Reward amount payload field")
	injectCmd.Flags().StringVar(&evReward, "reward-kind", "", "Reward kind payload field")
	injectCmd.Flags().BoolVar(&evSuccess, "success", false, "Success payload field")

	root.AddCommand(statusCmd, initCmd, loadCmd, showCmd, hideCmd, injectCmd)
	return root
}

func parseKindArg(s string) (types.AdKind, error) {
	kind, ok := types.ParseAdKind(s)
	if !ok {
		return "", fmt.Errorf("unknown ad kind: %s (want banner|interstitial|rewarded)", s)
	}
	return kind, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}

func printOK(cmd *cobra.Command, ok bool) error {
	fmt.Fprintf(cmd.OutOrStdout(), "ok=%v\n", ok)
	return nil
}
