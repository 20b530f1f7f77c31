package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/strandhq/strand/internal/config"
	"github.com/strandhq/strand/internal/errors"
	"github.com/strandhq/strand/internal/ops"
	"github.com/strandhq/strand/internal/query"
	"github.com/strandhq/strand/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "strand",
		Usage:   "String analysis store",
		Version: Version,
		Commands: []*cli.Command{
			addCmd(db, cfg),
			getCmd(db),
			deleteCmd(db),
			listCmd(db),
			askCmd(db),
			analyzeCmd(cfg),
			exportCmd(db, cfg),
			importCmd(db, cfg),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// addCmd creates the add command.
func addCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Analyze a string and store it (argument or stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := valueFromArgsOrStdin(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Create(c.Context, db, cfg, ops.CreateInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// getCmd creates the get command.
func getCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Fetch a stored string by its exact value",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			value, err := valueFromArgsOrStdin(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Fetch(c.Context, db, ops.FetchInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Remove a stored string by its exact value",
		ArgsUsage: "<value>",
		Action: func(c *cli.Context) error {
			value, err := valueFromArgsOrStdin(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Delete(c.Context, db, ops.DeleteInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored strings, optionally filtered by properties",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "palindrome", Usage: "Only palindromes (or --palindrome=false for the rest)"},
			&cli.IntFlag{Name: "min-length", Usage: "Minimum length in characters"},
			&cli.IntFlag{Name: "max-length", Usage: "Maximum length in characters"},
			&cli.IntFlag{Name: "word-count", Usage: "Exact word count"},
			&cli.StringFlag{Name: "contains", Aliases: []string{"c"}, Usage: "Single character that must appear"},
		},
		Action: func(c *cli.Context) error {
			filters := query.Filters{
				ContainsChar: c.String("contains"),
			}
			if c.IsSet("palindrome") {
				v := c.Bool("palindrome")
				filters.IsPalindrome = &v
			}
			if c.IsSet("min-length") {
				v := c.Int("min-length")
				filters.MinLength = &v
			}
			if c.IsSet("max-length") {
				v := c.Int("max-length")
				filters.MaxLength = &v
			}
			if c.IsSet("word-count") {
				v := c.Int("word-count")
				filters.WordCount = &v
			}

			output, err := ops.List(c.Context, db, ops.ListInput{Filters: filters})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// askCmd creates the ask command.
func askCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "Filter stored strings with a plain-English sentence",
		ArgsUsage: "<sentence>",
		Action: func(c *cli.Context) error {
			sentence := strings.Join(c.Args().Slice(), " ")

			output, err := ops.Ask(c.Context, db, ops.AskInput{Query: sentence})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// analyzeCmd creates the analyze command.
func analyzeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Compute string properties without storing (argument or stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := valueFromArgsOrStdin(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Analyze(cfg, ops.AnalyzeInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// exportCmd creates the export command.
func exportCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all stored strings to a JSONL file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Usage: "Export file path (default: ~/.strand/exports/strings-<timestamp>.jsonl)"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Export(c.Context, db, cfg, ops.ExportInput{
				Path: c.String("path"),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// importCmd creates the import command.
func importCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import strings from a JSONL export file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "path", Aliases: []string{"p"}, Required: true, Usage: "Import file path"},
			&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "skip", Usage: "Duplicate mode: skip|error"},
		},
		Action: func(c *cli.Context) error {
			output, err := ops.Import(c.Context, db, cfg, ops.ImportInput{
				Path: c.String("path"),
				Mode: ops.ImportMode(c.String("mode")),
			})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP JSON API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Address to bind"},
			&cli.IntFlag{Name: "port", Value: 8484, Usage: "Port to listen on"},
		},
		Action: func(c *cli.Context) error {
			srv := web.NewServer(db, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// valueFromArgsOrStdin takes the value from the first positional argument,
// falling back to piped stdin. A bare trailing newline from echo is
// stripped; other whitespace is part of the value.
func valueFromArgsOrStdin(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	if !stdinHasData() {
		return "", errors.NewInvalidRequest("value is required (argument or stdin)")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	value := string(data)
	value = strings.TrimSuffix(value, "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.StrandError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
