package main

import (
	"fmt"
	"os"

	"github.com/Shopify/go-lua"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/logandonley/font-engine/internal/config"
	"github.com/logandonley/font-engine/internal/platform"
	"github.com/logandonley/font-engine/pkg/bridge"
	"github.com/logandonley/font-engine/pkg/engine"
)

var (
	cfg    config.Config
	logger *zap.Logger
	eng    *engine.Engine
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func main() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err = newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	engine.SetLogger(logger)
	eng = engine.Default()

	if err := preload(); err != nil {
		fmt.Fprintf(os.Stderr, "Error preloading fonts: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	return zcfg.Build()
}

// preload registers the directories named by the environment
func preload() error {
	dirs := cfg.Dirs
	if cfg.System {
		paths, err := platform.New().GetFontPaths()
		if err != nil {
			return fmt.Errorf("getting font paths: %w", err)
		}
		dirs = append(dirs, paths.All()...)
	}

	for _, dir := range dirs {
		if _, err := eng.RegisterFonts(dir, cfg.Recurse); err != nil {
			// Missing platform directories are common
			logger.Warn("skipping font directory", zap.String("path", dir), zap.Error(err))
		}
	}
	return nil
}

var rootCmd = &cobra.Command{
	Use:   "fontreg",
	Short: "fontreg registers fonts and lists the faces they provide",
	Long: `A font registry that reads TrueType and OpenType files, including collections.

Directories listed in FONTREG_DIRS (and the platform font directories when
FONTREG_SYSTEM=true) are registered before each command runs.

Examples:
  # Register a single font file
  fontreg register ./fonts/Inter-Regular.ttf

  # Register every font below a directory
  fontreg register-dir -r ./fonts

  # List registered faces
  fontreg faces

  # Run a Lua script with the FontEngine table available
  fontreg run setup.lua`,
	SilenceUsage: true,
}

var registerCmd = &cobra.Command{
	Use:   "register [font files...]",
	Short: "Register one or more font files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed []string
		var empty []string
		successful := 0

		for _, path := range args {
			ok, err := eng.RegisterFont(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %s: %v\n", failStyle.Render("Error registering"), path, err)
				failed = append(failed, path)
				continue
			}
			if !ok {
				empty = append(empty, path)
				continue
			}
			successful++
		}

		return printSummary(successful, empty, failed)
	},
}

var registerDirCmd = &cobra.Command{
	Use:   "register-dir [directories...]",
	Short: "Register the font files inside one or more directories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recurse, _ := cmd.Flags().GetBool("recurse")

		var failed []string
		var empty []string
		successful := 0

		for _, dir := range args {
			ok, err := eng.RegisterFonts(dir, recurse)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %s: %v\n", failStyle.Render("Error registering"), dir, err)
				failed = append(failed, dir)
				continue
			}
			if !ok {
				empty = append(empty, dir)
				continue
			}
			successful++
		}

		return printSummary(successful, empty, failed)
	},
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Register the platform font directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := platform.New().GetFontPaths()
		if err != nil {
			return fmt.Errorf("getting font paths: %w", err)
		}

		var missing []string
		successful := 0
		for _, dir := range paths.All() {
			ok, err := eng.RegisterFonts(dir, true)
			if err != nil {
				logger.Debug("skipping font directory", zap.String("path", dir), zap.Error(err))
				missing = append(missing, dir)
				continue
			}
			if ok {
				successful++
			}
		}

		fmt.Println(headingStyle.Render("System fonts:"))
		fmt.Printf("Directories with fonts: %d\n", successful)
		if len(missing) > 0 {
			fmt.Printf("%s %d\n", skipStyle.Render("Unavailable directories:"), len(missing))
			for _, dir := range missing {
				fmt.Printf("  - %s\n", dir)
			}
		}
		fmt.Printf("Registered faces: %d\n", len(eng.FaceNames()))
		return nil
	},
}

var facesCmd = &cobra.Command{
	Use:   "faces",
	Short: "List registered font faces",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs, _ := cmd.Flags().GetStringSlice("dir")
		recurse, _ := cmd.Flags().GetBool("recurse")
		for _, dir := range dirs {
			if _, err := eng.RegisterFonts(dir, recurse); err != nil {
				return fmt.Errorf("registering %s: %w", dir, err)
			}
		}

		names := eng.FaceNames()
		if len(names) == 0 {
			fmt.Println("No font faces registered")
			return nil
		}

		verbose, _ := cmd.Flags().GetBool("verbose")
		fmt.Println(headingStyle.Render("Registered faces:"))
		for _, name := range names {
			if !verbose {
				fmt.Printf("  - %s\n", name)
				continue
			}
			face, _ := eng.Lookup(name)
			fmt.Printf("  - %s (%s#%d)\n", name, face.Path, face.Index)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run [script.lua]",
	Short: "Run a Lua script with the FontEngine table available",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state := lua.NewState()
		lua.OpenLibraries(state)
		bridge.Open(state, eng)

		if err := lua.DoFile(state, args[0]); err != nil {
			return fmt.Errorf("running %s: %w", args[0], err)
		}
		return nil
	},
}

func printSummary(successful int, empty, failed []string) error {
	fmt.Printf("\n%s\n", headingStyle.Render("Registration Summary:"))
	fmt.Printf("Registered: %d\n", successful)
	if len(empty) > 0 {
		fmt.Printf("%s %d\n", skipStyle.Render("No faces found:"), len(empty))
		for _, path := range empty {
			fmt.Printf("  - %s\n", path)
		}
	}
	if len(failed) > 0 {
		fmt.Printf("%s %d\n", failStyle.Render("Failed to register:"), len(failed))
		for _, path := range failed {
			fmt.Printf("  - %s\n", path)
		}
		return fmt.Errorf("some fonts failed to register")
	}
	fmt.Printf("Registered faces: %d\n", len(eng.FaceNames()))
	return nil
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(registerDirCmd)
	rootCmd.AddCommand(systemCmd)
	rootCmd.AddCommand(facesCmd)
	rootCmd.AddCommand(runCmd)

	registerDirCmd.Flags().BoolP("recurse", "r", false, "Scan subdirectories")
	facesCmd.Flags().StringSliceP("dir", "d", nil, "Register a directory before listing")
	facesCmd.Flags().BoolP("recurse", "r", false, "Scan subdirectories of --dir")
	facesCmd.Flags().BoolP("verbose", "v", false, "Show the file each face came from")
}
