package show

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ihorchekh/sonic-utilities/internal/conf"
	"github.com/ihorchekh/sonic-utilities/internal/counters"
	"github.com/ihorchekh/sonic-utilities/internal/flog"
	"github.com/ihorchekh/sonic-utilities/internal/render"
	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

var (
	configPath string
	typeFilter string
	tag        string
	jsonOut    bool
	wait       int
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file.")
	Cmd.Flags().StringVarP(&typeFilter, "type", "T", "", "Only show tunnels of this type (ipinip, gre, vxlan, mpls).")
	Cmd.Flags().StringVarP(&tag, "tag", "t", "", "Diff against the baseline saved under this tag.")
	Cmd.Flags().BoolVarP(&jsonOut, "json", "j", false, "Emit JSON instead of a table.")
	Cmd.Flags().IntVarP(&wait, "wait", "w", 0, "Sample over N seconds instead of diffing against a saved baseline.")
}

var Cmd = &cobra.Command{
	Use:   "show [TUNNEL]",
	Short: "Show per-tunnel traffic counters, diffed against a saved baseline.",
	Long: `The 'show' command reads the current tunnel counters and rates.

With a baseline saved via 'tunnelstat save' the counters are shown as deltas
since the baseline; without one the raw counters are shown. With --wait N the
tool samples twice N seconds apart and shows the difference, ignoring any
saved baseline.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tunnel := ""
		if len(args) == 1 {
			tunnel = args[0]
		}
		runShow(tunnel)
	},
}

func runShow(tunnel string) {
	cfg, err := conf.Load(configPath)
	if err != nil {
		flog.Fatalf("%v", err)
	}

	ctx := context.Background()
	src, err := counters.Connect(ctx, &cfg.DB)
	if err != nil {
		flog.Fatalf("%v", err)
	}
	defer src.Close()
	builder := counters.NewBuilder(src)

	cur, err := builder.Build(ctx, tunnel, typeFilter)
	if err != nil {
		flog.Fatalf("%v", err)
	}

	var prev *snapshot.Snapshot
	if wait > 0 {
		prev = cur
		flog.Debugf("sampling again in %d seconds", wait)
		time.Sleep(time.Duration(wait) * time.Second)
		if cur, err = builder.Build(ctx, tunnel, typeFilter); err != nil {
			flog.Fatalf("%v", err)
		}
	} else {
		store := snapshot.NewFileStore(afero.NewOsFs(), cfg.Cache.Dir)
		handle := snapshot.Handle{UID: os.Getuid(), Tag: tag}
		prev, err = store.Load(handle)
		switch {
		case err == nil:
		case errors.Is(err, snapshot.ErrNotFound):
			if tag != "" {
				flog.Warnf("no baseline saved under tag %q; run 'tunnelstat save --tag %s' first", tag, tag)
			}
		default:
			flog.Errorf("could not load saved baseline: %v", err)
			flog.Infof("showing raw counters; save a fresh baseline with 'tunnelstat save'")
			prev = nil
		}
	}

	if tunnel != "" && !jsonOut {
		render.Single(os.Stdout, tunnel, cur, prev)
		return
	}
	entries := snapshot.Diff(cur, prev)
	if jsonOut {
		if err := render.JSON(os.Stdout, entries); err != nil {
			flog.Fatalf("%v", err)
		}
		return
	}
	render.Table(os.Stdout, entries)
}
