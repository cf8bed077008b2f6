package clear

import (
	"errors"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ihorchekh/sonic-utilities/internal/conf"
	"github.com/ihorchekh/sonic-utilities/internal/flog"
	"github.com/ihorchekh/sonic-utilities/internal/snapshot"
)

var (
	configPath string
	tag        string
	all        bool
)

func init() {
	Cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the configuration file.")
	Cmd.Flags().StringVarP(&tag, "tag", "t", "", "Delete the baseline saved under this tag.")
	Cmd.Flags().BoolVarP(&all, "all", "a", false, "Delete every baseline of this user.")
}

var Cmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete saved baselines.",
	Long: `The 'clear' command deletes this user's saved baseline, the one under
--tag, or with --all every baseline the user has saved.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runClear()
	},
}

func runClear() {
	cfg, err := conf.Load(configPath)
	if err != nil {
		flog.Fatalf("%v", err)
	}

	store := snapshot.NewFileStore(afero.NewOsFs(), cfg.Cache.Dir)
	uid := os.Getuid()

	if all {
		if err := store.DeleteAll(uid); err != nil {
			flog.Errorf("could not clear baselines: %v", err)
			os.Exit(2)
		}
		flog.Infof("cleared all saved baselines")
		return
	}

	handle := snapshot.Handle{UID: uid, Tag: tag}
	switch err := store.DeleteOne(handle); {
	case err == nil:
		flog.Infof("cleared saved baseline")
	case errors.Is(err, snapshot.ErrNotFound):
		flog.Fatalf("no baseline saved%s", tagSuffix())
	default:
		flog.Errorf("could not clear baseline: %v", err)
		os.Exit(2)
	}
}

func tagSuffix() string {
	if tag == "" {
		return ""
	}
	return " under tag " + tag
}
