package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	verbose    bool
	jobCount   int
	jsonOutput bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "swc",
	Short: "swg compiler frontend",
	Long: `swc drives the swg compiler's frontend: lexing, parsing, and the
two-pass semantic analyzer, across as many files as the job scheduler
has workers for.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().IntVar(&jobCount, "jobs", 0, "worker count for the job scheduler (default: the config file's jobs, else one per CPU)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "render diagnostics as JSON instead of text")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".swcconfig.yaml", "path to the project config file")
}
