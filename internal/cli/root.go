// Package cli provides the command-line interface for schemawatch.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/commands"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/cli/config"
	"github.com/AnasAshrafGit/Sirge-impact-analysis/pkg/sqlparse"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "schemawatch",
		Short: "schemawatch - schema change impact suggestions",
		Long: `schemawatch watches a SQL schema file and, whenever it changes, reports
the tables that were created or altered and the source files that mention
those changes.

It is a suggestion tool: matching is textual, and files it lists are
candidates for review, not confirmed breakages.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help, completion and version commands
			switch cmd.Name() {
			case "help", "completion", "__complete", "version":
				return nil
			}

			cfg, err := config.LoadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Verbose {
				cfg.LogLevel = "debug"
			}
			level, err := config.ParseLogLevel(cfg.LogLevel)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			ctx := config.WithConfig(cmd.Context(), cfg)
			ctx = config.WithLogger(ctx, logger)
			cmd.SetContext(ctx)

			if configFile := config.GetConfigFileUsed(); configFile != "" {
				logger.Debug("using config file", "path", configFile)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set version template
	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: schemawatch.yaml, searched upward)")
	rootCmd.PersistentFlags().String("schema", "", "Path to the schema file to watch")
	rootCmd.PersistentFlags().String("dialect", "", "SQL dialect of the schema file")
	rootCmd.PersistentFlags().String("workspace", "", "Root directory scanned for affected files")
	rootCmd.PersistentFlags().String("include", "", "Glob of candidate files, relative to the workspace")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format (auto|text|json|yaml)")

	// Register completion for output flag
	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Register completion for dialect flag
	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return sqlparse.Dialects(), cobra.ShellCompDirectiveNoFileComp
	})

	_ = rootCmd.MarkPersistentFlagFilename("schema", "sql")
	_ = rootCmd.MarkPersistentFlagDirname("workspace")

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewWatchCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for schemawatch.

To load completions:

Bash:
  $ source <(schemawatch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ schemawatch completion bash > /etc/bash_completion.d/schemawatch
  # macOS:
  $ schemawatch completion bash > $(brew --prefix)/etc/bash_completion.d/schemawatch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. Execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ schemawatch completion zsh > "${fpath[1]}/_schemawatch"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ schemawatch completion fish | source

  # To load completions for each session, execute once:
  $ schemawatch completion fish > ~/.config/fish/completions/schemawatch.fish

PowerShell:
  PS> schemawatch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> schemawatch completion powershell > schemawatch.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
	return cmd
}
