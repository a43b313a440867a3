package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/repoclone-go/internal/app"
	"github.com/quantmind-br/repoclone-go/internal/config"
	"github.com/quantmind-br/repoclone-go/internal/utils"
	"github.com/quantmind-br/repoclone-go/pkg/version"
)

var (
	cfgFile string
	verbose bool

	// Dependencies for testing
	execLookPath = exec.LookPath
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "repoclone <git-url>",
	Short: "Clone git repositories into a structured directory tree",
	Long: `RepoClone clones a git repository into <base-path>/<domain>/<author>/<repo>,
creating any missing directories along the way.

The URL may be an https form (https://github.com/user/repo.git) or an
ssh form (git@github.com:user/repo.git). With --dry-run the commands are
printed instead of executed.`,
	Version:      version.Short(),
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.repoclone/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().StringP("base-path", "b", "", "Base path for the clone tree (default: current directory)")
	rootCmd.Flags().Bool("dry-run", false, "Print the commands without executing them")
	rootCmd.Flags().String("backend", "", "Clone backend: system or go-git")
	rootCmd.Flags().Int("depth", 0, "Shallow clone depth (0=full history)")

	// Bind flags to viper
	_ = viper.BindPFlag("clone.base_path", rootCmd.Flags().Lookup("base-path"))
	_ = viper.BindPFlag("clone.backend", rootCmd.Flags().Lookup("backend"))
	_ = viper.BindPFlag("clone.depth", rootCmd.Flags().Lookup("depth"))

	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Interrupted, stopping clone...")
		cancel()
	}()

	cloner, err := app.New(app.Options{
		BasePath: cfg.Clone.BasePath,
		DryRun:   dryRun,
		Backend:  cfg.Clone.Backend,
		Depth:    cfg.Clone.Depth,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	_, err = cloner.Run(ctx, args[0])
	return err
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  "Verifies that the git executable, base path and config file are usable.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking system dependencies...")
		allPassed := true

		// Check 1: git executable
		fmt.Print("  git executable: ")
		if gitPath := checkGit(); gitPath != "" {
			fmt.Printf("OK (%s)\n", gitPath)
		} else {
			fmt.Println("NOT FOUND (only the go-git backend will work)")
		}

		// Check 2: write permissions for the base path
		fmt.Print("  Write permissions: ")
		if checkWritePermissions() {
			fmt.Println("OK")
		} else {
			fmt.Println("FAILED")
			allPassed = false
		}

		// Check 3: config file
		fmt.Print("  Config file: ")
		if _, err := config.Load(); err != nil {
			fmt.Printf("WARN (%v)\n", err)
		} else {
			fmt.Println("OK")
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkGit returns the path of the git executable, or "" if missing
func checkGit() string {
	path, err := execLookPath("git")
	if err != nil {
		return ""
	}
	return path
}

// checkWritePermissions checks if we can write to the configured base
// path (or the current directory when unset)
func checkWritePermissions() bool {
	base := utils.ExpandPath(viper.GetString("clone.base_path"))
	if base == "" {
		base = "."
	}
	tmpFile := filepath.Join(base, ".repoclone_test_write")
	f, err := os.Create(tmpFile)
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(tmpFile)
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
