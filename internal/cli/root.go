package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

// Config carries the persistent flag values shared by all subcommands.
type Config struct {
	Server    string
	ModelsDir string
}

func defaultConfig() *Config {
	server := os.Getenv("PRICED_SERVER")
	if server == "" {
		server = "http://localhost:8080"
	}
	dir := os.Getenv("PRICED_MODELS_DIR")
	if dir == "" {
		dir = "saved_models"
	}
	return &Config{Server: server, ModelsDir: dir}
}

// Execute runs the pricectl command tree and returns a process exit code.
func Execute(args []string) int {
	root := buildRootCmd(defaultConfig())
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

// buildRootCmd constructs the Cobra command tree wired to the fn* actions.
func buildRootCmd(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "pricectl",
		Short:         "Scaffolding and API client for the priced daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Server, "server", cfg.Server, "Base URL of the priced daemon (defaults PRICED_SERVER)")
	root.PersistentFlags().StringVar(&cfg.ModelsDir, "models-dir", cfg.ModelsDir, "Models directory (defaults PRICED_MODELS_DIR or saved_models)")

	initCmd := &cobra.Command{
		Use:     "init [dir]",
		Short:   "Scaffold the working directory: models dir, sample config, README",
		Args:    cobra.MaximumNArgs(1),
		Example: "  pricectl init\n  pricectl init ./workdir",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return fnInit(cmd.OutOrStdout(), dir, cfg.ModelsDir)
		},
	}

	sampleCmd := &cobra.Command{
		Use:     "sample-model [name]",
		Short:   "Write a demo linear regression artifact with a metadata sidecar",
		Args:    cobra.MaximumNArgs(1),
		Example: "  pricectl sample-model\n  pricectl sample-model demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "house_price_model"
			if len(args) == 1 {
				name = args[0]
			}
			return fnSampleModel(cmd.OutOrStdout(), cfg.ModelsDir, name)
		},
	}

	loadCmd := &cobra.Command{
		Use:     "load <model_path> [metadata_path]",
		Short:   "Load a model into the running daemon",
		Args:    cobra.RangeArgs(1, 2),
		Example: "  pricectl load saved_models/house_price_model.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			metadataPath := ""
			if len(args) == 2 {
				metadataPath = args[1]
			}
			return fnLoad(cmd.OutOrStdout(), cfg.Server, args[0], metadataPath)
		},
	}

	predictCmd := &cobra.Command{
		Use:     "predict <square_footage> <bedrooms> <total_bathrooms>",
		Short:   "Request a price prediction from the running daemon",
		Args:    cobra.ExactArgs(3),
		Example: "  pricectl predict 2100 3 2",
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]float64, 3)
			for i, a := range args {
				v, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q", a)
				}
				vals[i] = v
			}
			return fnPredict(cmd.OutOrStdout(), cfg.Server, vals[0], vals[1], vals[2])
		},
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Show info about the currently loaded model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnInfo(cmd.OutOrStdout(), cfg.Server)
		},
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "List discoverable model artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fnModels(cmd.OutOrStdout(), cfg.Server)
		},
	}

	root.AddCommand(initCmd, sampleCmd, loadCmd, predictCmd, infoCmd, modelsCmd)
	return root
}
