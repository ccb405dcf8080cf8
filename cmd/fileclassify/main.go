package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/paketo-buildpacks/packit/v2/chronos"
	"github.com/paketo-buildpacks/packit/v2/fs"
	"github.com/paketo-buildpacks/packit/v2/pexec"
	"github.com/paketo-buildpacks/packit/v2/scribe"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	fileclassify "github.com/fileclassify/fileclassify"
	"github.com/fileclassify/fileclassify/bundler"
	"github.com/fileclassify/fileclassify/extract"
	"github.com/fileclassify/fileclassify/llm"
)

var (
	configPath string
	logFile    string

	targetDir string
	ruleFlag  string
	planOut   string
	applyDir  string

	manifestFlag   string
	entryPointFlag string
	nameFlag       string
	outputDirFlag  string
	windowedFlag   bool
	oneFileFlag    bool
	noPause        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fileclassify",
		Short: "Classifies files with a local LLM and organizes them into folders",
		Long:  "FileClassify extracts text from documents, asks a local LLM for structured fields (category, year, month, ...), and moves files into a folder hierarchy derived from a rule string such as \"Category [Contract, Invoice] >> Year\".",
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "fileclassify.toml", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Duplicate output into a rotating log file")

	scanCmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Count folders and files under a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}

	planCmd := &cobra.Command{
		Use:   "plan <dir>",
		Short: "Classify files and produce a move plan without touching anything",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlan,
	}
	planCmd.Flags().StringVarP(&targetDir, "target", "t", "", "Target directory for the organized files (required)")
	planCmd.Flags().StringVarP(&ruleFlag, "rule", "r", "", "Classification rule string (overrides config)")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "Write the plan to this file instead of stdout")
	_ = planCmd.MarkFlagRequired("target")

	applyCmd := &cobra.Command{
		Use:   "apply [plan.yaml]",
		Short: "Execute a previously generated move plan",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runApply,
	}
	applyCmd.Flags().StringVar(&applyDir, "dir", "", "Plan and apply this directory in one step")
	applyCmd.Flags().StringVarP(&targetDir, "target", "t", "", "Target directory when --dir is used")
	applyCmd.Flags().StringVarP(&ruleFlag, "rule", "r", "", "Classification rule string (overrides config)")

	packageCmd := &cobra.Command{
		Use:   "package",
		Short: "Install declared dependencies and bundle the application into a standalone executable",
		Args:  cobra.NoArgs,
		RunE:  runPackage,
	}
	packageCmd.Flags().StringVar(&manifestFlag, "manifest", "", "Dependency manifest path (overrides config)")
	packageCmd.Flags().StringVar(&entryPointFlag, "entrypoint", "", "Entry-point script path (overrides config)")
	packageCmd.Flags().StringVar(&nameFlag, "name", "", "Output executable name (overrides config)")
	packageCmd.Flags().StringVar(&outputDirFlag, "output", "", "Output directory (overrides config)")
	packageCmd.Flags().BoolVar(&windowedFlag, "windowed", true, "Build a windowed (no console) executable")
	packageCmd.Flags().BoolVar(&oneFileFlag, "onefile", true, "Bundle into a single file")
	packageCmd.Flags().BoolVar(&noPause, "no-pause", false, "Do not wait for Enter before exiting")

	rootCmd.AddCommand(scanCmd, planCmd, applyCmd, packageCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() scribe.Logger {
	var w io.Writer = os.Stdout
	if logFile != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10,
			MaxBackups: 3,
		})
	}
	return scribe.NewLogger(w)
}

func runScan(cmd *cobra.Command, args []string) error {
	counts, err := fileclassify.NewScanner().Count(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Folders: %d  Files: %d\n", counts.Folders, counts.Files)
	return nil
}

func newPlanner(ctx context.Context, config fileclassify.Config, logger scribe.Logger) (fileclassify.Planner, error) {
	rule := config.Classify.Rule
	if ruleFlag != "" {
		rule = ruleFlag
	}

	client := llm.NewLlamaClient(config.LLM.BaseURL, config.LLM.Model, config.LLM.Timeout.Duration)
	if !client.Available(ctx) {
		return fileclassify.Planner{}, fmt.Errorf("llm server at %s is not reachable", config.LLM.BaseURL)
	}

	classifier := fileclassify.NewClassifier(
		extract.NewRegistry(),
		client,
		fileclassify.ParseRuleString(rule),
		config.Classify.MaxSnippet,
		logger,
	)

	return fileclassify.NewPlanner(classifier, rule, config.Classify.Workers, logger), nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	config, err := fileclassify.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger := newLogger()
	planner, err := newPlanner(cmd.Context(), config, logger)
	if err != nil {
		return err
	}

	plan, err := planner.Plan(cmd.Context(), args[0], targetDir)
	if err != nil {
		return err
	}

	out := os.Stdout
	if planOut != "" {
		out, err = os.Create(planOut)
		if err != nil {
			return fmt.Errorf("creating plan file: %w", err)
		}
		defer out.Close()
	}

	return plan.Write(out)
}

func runApply(cmd *cobra.Command, args []string) error {
	config, err := fileclassify.LoadConfig(configPath)
	if err != nil {
		return err
	}
	logger := newLogger()

	var plan fileclassify.Plan
	switch {
	case applyDir != "":
		if targetDir == "" {
			return fmt.Errorf("--target is required with --dir")
		}

		planner, err := newPlanner(cmd.Context(), config, logger)
		if err != nil {
			return err
		}

		plan, err = planner.Plan(cmd.Context(), applyDir, targetDir)
		if err != nil {
			return err
		}

	case len(args) == 1:
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening plan: %w", err)
		}
		defer file.Close()

		plan, err = fileclassify.ReadPlan(file)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("provide a plan file or --dir")
	}

	applied, err := fileclassify.NewMover(logger).Apply(plan)
	if err != nil {
		return fmt.Errorf("applied %d of %d moves: %w", applied, len(plan.Moves), err)
	}

	fmt.Printf("Moved %d files\n", applied)
	return nil
}

func runPackage(cmd *cobra.Command, _ []string) error {
	err := runPipeline(cmd)
	pauseForAcknowledgment(err)
	return err
}

// resolveBool prefers an explicitly passed flag over the configured value.
func resolveBool(configured, flag, flagPassed bool) bool {
	if flagPassed {
		return flag
	}
	return configured
}

func runPipeline(cmd *cobra.Command) error {
	config, err := fileclassify.LoadConfig(configPath)
	if err != nil {
		return err
	}
	bundle := config.Bundle

	if manifestFlag != "" {
		bundle.Manifest = manifestFlag
	}
	if entryPointFlag != "" {
		bundle.EntryPoint = entryPointFlag
	}
	if nameFlag != "" {
		bundle.Name = nameFlag
	}
	if outputDirFlag != "" {
		bundle.OutputDir = outputDirFlag
	}

	workingDir, err := os.Getwd()
	if err != nil {
		return err
	}

	logger := newLogger()
	environment := bundler.NewEnvironment()
	calculator := fs.NewChecksumCalculator()

	pipeline := bundler.NewPipeline(
		bundler.NewRequirementsParser(),
		bundler.NewInstallProcess(pexec.NewExecutable(bundle.Pip), calculator, environment, logger),
		bundler.NewBundleProcess(pexec.NewExecutable(bundle.Bundler), logger),
		chronos.DefaultClock,
		logger,
	)

	_, err = pipeline.Run(workingDir, bundler.Options{
		ManifestPath: bundle.Manifest,
		Bundle: bundler.BundleOptions{
			EntryPoint: bundle.EntryPoint,
			OutputDir:  bundle.OutputDir,
			Name:       bundle.Name,
			Windowed:   resolveBool(bundle.Windowed, windowedFlag, cmd.Flags().Changed("windowed")),
			OneFile:    resolveBool(bundle.OneFile, oneFileFlag, cmd.Flags().Changed("onefile")),
		},
	})
	return err
}

func pauseForAcknowledgment(runErr error) {
	if noPause || !isatty.IsTerminal(os.Stdin.Fd()) {
		return
	}

	if runErr != nil {
		fmt.Println("Build failed.")
	}
	fmt.Print("Press enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}
