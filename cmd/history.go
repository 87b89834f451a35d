package cmd

import (
	"fmt"

	"github.com/beaconlabs/beacon/internal/contract"
	"github.com/beaconlabs/beacon/internal/history"
	"github.com/beaconlabs/beacon/internal/outwriter"
	"github.com/beaconlabs/beacon/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historyStore is opened by historySetup for the history subcommands.
var historyStore contract.HistoryStore

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need store access without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by list/export commands)
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	cfg.OutputFile = viper.GetString("output-file")
	cfg.ResultLimit = viper.GetInt("limit")
	cfg.Precision = viper.GetInt("precision")
	cfg.Width = viper.GetInt("width")

	store, err := history.NewStore(backend, connStr)
	if err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}
	historyStore = store

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This specialized setup does NOT open the store or create tables, allowing
// migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend := schema.DatabaseBackend(viper.GetString("history-backend"))
	connStr := viper.GetString("history-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on render-history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by render commands. This avoids report path
// validation for simple store operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded render runs and exports",
	Long: `Manage the render history used for tracking score and savings movement.

Every render run stores:
- Run metadata (URL, category, score, fetch time)
- Section counts (opportunities, diagnostics, passed)
- The ranked opportunities with their estimated savings

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recorded runs, newest first
  status  - Show store statistics and connection info
  export  - Export runs and opportunities to Parquet
  clear   - Remove all recorded runs
  migrate - Run database schema migrations

Examples:
  # Show the latest runs
  beacon history list

  # Export for analysis in pandas/DuckDB
  beacon history export --output-file beacon-history`,
}

// historyListCmd lists recorded render runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recorded render runs, newest first",
	Long: `List the most recent render runs from the history store.

Each row shows the run id, URL, category, score, opportunity count, and
the total estimated savings at the time of the run. Use --limit to bound
the listing and --output for machine-readable formats.

Examples:
  # Latest runs as a table
  beacon history list

  # Latest 5 runs as JSON
  beacon history list --limit 5 --output json`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = historyStore.Close() }()
		runs, err := historyStore.ListRuns(cfg.ResultLimit)
		if err != nil {
			contract.LogFatal("Failed to list render runs", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WriteHistoryRuns(runs, cfg); err != nil {
			contract.LogFatal("Cannot write render runs", err)
		}
	},
}

// historyClearCmd clears the history store.
var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all recorded render runs",
	Long: `Delete all recorded render runs and their opportunities.

WARNING: This action cannot be undone. Consider exporting data first.

Use this when:
- Resetting trend tracking for a new measurement baseline
- The tracked URLs changed significantly
- Testing history features

Examples:
  # Export before clearing
  beacon history export --output-file backup
  beacon history clear`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = historyStore.Close() }()
		if err := historyStore.Clear(); err != nil {
			contract.LogFatal("Failed to clear render history", err)
		}
		fmt.Println("Render history cleared successfully.")
	},
}

// historyStatusCmd shows history store status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display history store statistics and connection details",
	Long: `Show detailed information about the render history store.

Displays:
- Backend type and connection status
- Total number of recorded runs
- Last and oldest run timestamps

Use this to:
- Verify history tracking is enabled and working
- Monitor data accumulation over time
- Debug store connection issues

Examples:
  # Check history status
  beacon history status`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = historyStore.Close() }()
		status, err := historyStore.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get history status", err)
		}
		history.PrintHistoryStatus(status)
	},
}

// historyExportCmd exports history data to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded runs to Parquet for BI tools and analytics",
	Long: `Export all recorded render history to Parquet format.

Exports two datasets next to the given output prefix:
- <prefix>.render_runs.parquet    - one row per render run
- <prefix>.opportunities.parquet  - the ranked opportunities of each run

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools

Requires: --output-file parameter

Examples:
  # Export all data
  beacon history export --output-file beacon-history

  # Query with DuckDB
  duckdb -c "SELECT * FROM read_parquet('beacon-history.render_runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		defer func() { _ = historyStore.Close() }()
		if err := history.ExecuteHistoryExport(historyStore, cfg.OutputFile, cfg.ResultLimit); err != nil {
			contract.LogFatal("Failed to export render history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the render history store.

Migrations allow:
- Upgrading to new schema versions when Beacon is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  beacon history migrate

  # Migrate to specific version
  beacon history migrate --target-version 1

  # Rollback to initial state
  beacon history migrate --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := history.Migrate(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
