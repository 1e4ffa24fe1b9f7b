package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/manager"
	"todo/internal/output"
	"todo/internal/storage"
)

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	verbose    bool
	dataDir    string
	formatter  output.Formatter
)

func main() {
	// Boundary guard: unexpected failures become a generic message instead
	// of a crash with internals in it.
	defer func() {
		if r := recover(); r != nil {
			os.Stderr.WriteString("Error: an unexpected error occurred\n")
			os.Exit(1)
		}
	}()

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A simple, file-based to-do list",
		Long:  "todo - A single-user to-do tracker with durable, crash-safe local storage.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Directory for task storage (default ~/.todo)")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		completeCmd(),
		statsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getManager builds an initialized manager from the resolved configuration.
// Degraded load outcomes (backup recovery, unrecoverable corruption) are
// reported on stderr and the manager stays usable.
func getManager() (*manager.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}

	var logger *slog.Logger
	if verbose || cfg.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	store := storage.NewStore(cfg.DataDir, logger)
	m := manager.New(store, logger)

	status, err := m.Initialize()
	switch {
	case status.DataLost:
		var corruption storage.CorruptionError
		if !errors.As(err, &corruption) {
			return nil, err
		}
		printWarning("Warning: task data was corrupted and could not be recovered; starting with an empty list")
	case err != nil:
		return nil, err
	case status.RecoveredFromBackup:
		printWarning("Warning: task data was corrupted; recovered from backup")
	}
	return m, nil
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printWarning(msg string) {
	os.Stderr.WriteString(msg + "\n") //nolint:gosec // stderr write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// addCmd implements 'todo add'.
func addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <description>",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			m, err := getManager()
			if err != nil {
				printError(err)
			}

			t, err := m.Add(args[0])
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// listCmd implements 'todo list'.
func listCmd() *cobra.Command {
	var showPending, showCompleted bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Run: func(_ *cobra.Command, _ []string) {
			m, err := getManager()
			if err != nil {
				printError(err)
			}

			filter := manager.FilterAll
			switch {
			case showPending && !showCompleted:
				filter = manager.FilterPending
			case showCompleted && !showPending:
				filter = manager.FilterCompleted
			}

			printOutput(formatter.FormatTaskList(slices.Collect(m.Tasks(filter))))
		},
	}
	cmd.Flags().BoolVar(&showPending, "pending", false, "Show only pending tasks")
	cmd.Flags().BoolVar(&showCompleted, "completed", false, "Show only completed tasks")
	return cmd
}

// completeCmd implements 'todo complete'.
func completeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <number>",
		Short: "Mark a task as completed by its list position",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			m, err := getManager()
			if err != nil {
				printError(err)
			}

			number, err := strconv.Atoi(args[0])
			if err != nil {
				printError(fmt.Errorf("invalid task number: %q", args[0]))
			}

			t, err := m.Complete(number)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
}

// statsCmd implements 'todo stats'.
func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show task counts by status",
		Run: func(_ *cobra.Command, _ []string) {
			m, err := getManager()
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatStats(m.Stats()))
		},
	}
}
