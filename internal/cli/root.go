package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/astros/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "astros",
	Short: "Astros - who is in space right now",
	Long: `Astros lists the people currently in space and resolves each person's
Wikipedia profile.

When a name lands on a disambiguation page, astros looks through the
related pages for the first one described as an astronaut, cosmonaut,
NASA or space subject. People it cannot resolve are listed with a link
to the disambiguation page instead.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("astros v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := model.DefaultConfig()
	flags := rootCmd.PersistentFlags()

	// Global flags
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.astros/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// HTTP flags
	flags.Duration("timeout", defaults.HTTP.Timeout, "HTTP client timeout per request")
	flags.String("ua", defaults.HTTP.UserAgent, "HTTP User-Agent")
	flags.String("http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	flags.String("https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")
	flags.String("no-proxy", "", "hosts that bypass the proxy (overrides NO_PROXY env var)")

	// Resolver flags
	flags.Int("concurrency", defaults.Resolver.Concurrency, "max concurrent lookups (0 = unbounded)")
	flags.Int("related-pages", defaults.Resolver.RelatedPages, "related pages requested per disambiguation")
	flags.String("default-vehicle", defaults.Output.DefaultVehicle, "vehicle shown when none is known")

	// Bind flags to viper
	bindings := map[string]string{
		"output.verbose":         "verbose",
		"http.timeout":           "timeout",
		"http.user_agent":        "ua",
		"http.http_proxy":        "http-proxy",
		"http.https_proxy":       "https-proxy",
		"http.no_proxy":          "no-proxy",
		"resolver.concurrency":   "concurrency",
		"resolver.related_pages": "related-pages",
		"output.default_vehicle": "default-vehicle",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.astros")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ASTROS_*
	configureEnv(viper.GetViper())

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
