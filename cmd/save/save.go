package save

import (
	"context"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ihorchekh/sonic-utilities/internal/conf"
	"github.com/ihorchekh/sonic-utilities/internal/counters"
	"github.com/ihorchekh/sonic-utilities/internal/flog"
	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

var (
	configPath string
	tag        string
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file.")
	Cmd.Flags().StringVarP(&tag, "tag", "t", "", "Save the baseline under this tag.")
}

var Cmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current counters as a baseline for later diffing.",
	Long: `The 'save' command captures the counters of every tunnel and stores
them as this user's baseline. A later 'tunnelstat show' reports deltas against
it. Saving again overwrites the baseline; --tag keeps several baselines side
by side.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSave()
	},
}

func runSave() {
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

	snap, err := counters.NewBuilder(src).Build(ctx, "", "")
	if err != nil {
		flog.Fatalf("%v", err)
	}

	store := snapshot.NewFileStore(afero.NewOsFs(), cfg.Cache.Dir)
	handle := snapshot.Handle{UID: os.Getuid(), Tag: tag}
	if err := store.Save(handle, snap); err != nil {
		flog.Errorf("could not save baseline: %v", err)
		os.Exit(2)
	}
	flog.Infof("saved baseline of %d tunnels", len(snap.Names))
}
