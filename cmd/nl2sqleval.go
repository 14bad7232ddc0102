package cmd

import (
	"context"
	"time"

	"github.com/ErikJBerg/NL2SQLEval/pkg/db"
	"github.com/ErikJBerg/NL2SQLEval/pkg/eval"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "nl2sqleval",
		Short: "A tool used to evaluate machine-generated SQL queries against human-authored references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return eval.Run(cmd.Context(), &eval.Config{
				ExpectedFile:  expectedFile,
				GeneratedFile: generatedFile,
				DB: db.Config{
					Driver:       driver,
					Path:         dbPath,
					Host:         host,
					Port:         port,
					User:         user,
					Password:     password,
					Database:     database,
					QueryTimeout: queryTimeout,
				},
				IgnoreRowOrder:    ignoreRowOrder,
				IgnoreColumnOrder: ignoreColumnOrder,
				Optimize:          optimize,
				HTMLReport:        htmlReport,
				WorkDir:           workDir,
				Log: eval.Log{
					Filename: logFile,
				},
			})
		},
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

var (
	expectedFile      string
	generatedFile     string
	driver            string
	dbPath            string
	host              string
	port              int
	user              string
	password          string
	database          string
	workDir           string
	ignoreRowOrder    bool
	ignoreColumnOrder bool
	optimize          bool
	queryTimeout      time.Duration
	htmlReport        string
	logFile           string
)

func init() {
	cobra.OnInitialize()

	rootCmd.PersistentFlags().StringVarP(&expectedFile, "expected", "e", "", "JSON file of expected queries")
	rootCmd.PersistentFlags().StringVarP(&generatedFile, "generated", "g", "", "JSON file of generated queries")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", db.DriverSQLite, "database driver (sqlite or mysql)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database file")
	rootCmd.PersistentFlags().StringVar(&host, "host", "127.0.0.1", "mysql host")
	rootCmd.PersistentFlags().IntVar(&port, "port", 3306, "mysql port")
	rootCmd.PersistentFlags().StringVar(&user, "user", "root", "mysql user")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "mysql password")
	rootCmd.PersistentFlags().StringVar(&database, "database", "", "mysql database name")
	rootCmd.PersistentFlags().StringVarP(&workDir, "work-dir", "w", "", "work directory")
	rootCmd.PersistentFlags().BoolVar(&ignoreRowOrder, "ignore-row-order", true, "compare result sets ignoring row order")
	rootCmd.PersistentFlags().BoolVar(&ignoreColumnOrder, "ignore-column-order", true, "compare rows ignoring column order")
	rootCmd.PersistentFlags().BoolVar(&optimize, "optimize", false, "canonicalize queries before similarity scoring")
	rootCmd.PersistentFlags().DurationVar(&queryTimeout, "query-timeout", 0, "per-query execution deadline, 0 disables it")
	rootCmd.PersistentFlags().StringVar(&htmlReport, "html-report", "", "write an HTML report to this file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stdout")
	_ = rootCmd.MarkPersistentFlagRequired("expected")
	_ = rootCmd.MarkPersistentFlagRequired("generated")
}
