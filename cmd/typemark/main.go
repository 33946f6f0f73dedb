// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Typemark Authors
// Source: github.com/typemark/typemark

// typemark generates markdown type reference docs from JSON Schema.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/typemark/typemark"
)

// cliOptions describes typemark CLI flags and positional arguments.
type cliOptions struct {
	Output string `short:"o" long:"output" description:"Output markdown file path (stdout when omitted)"`
	Title  string `short:"T" long:"title" description:"Optional document title heading"`
	Full   bool   `long:"full" description:"Include generated example blocks in class sections"`
	Args   struct {
		SchemaName string `positional-arg-name:"SCHEMA_NAME" description:"Display name for the schema root type"`
		SchemaFile string `positional-arg-name:"SCHEMA_FILE" description:"Path to the schema document"`
	} `positional-args:"yes"`
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "typemark"
	}

	runner := cliRunner{
		programName: filepath.Base(programName),
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes. Anything other
// than exactly two positional arguments is a usage error: the usage line goes
// to the error stream and nothing is written to stdout.
func (runner *cliRunner) run(args []string) int {
	options := &cliOptions{}
	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	parser.Usage = "SCHEMA_NAME SCHEMA_FILE [OPTIONS]"

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagErr *flags.Error
		if errors.As(err, &flagErr) && flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	if options.Args.SchemaName == "" || options.Args.SchemaFile == "" || len(rest) > 0 {
		_, _ = fmt.Fprintf(runner.stderr, "Usage: %s SCHEMA_NAME SCHEMA_FILE\n", runner.programName)
		return 1
	}

	if err := runner.render(options); err != nil {
		writeCLIError(runner.stderr, err)
		return 1
	}

	return 0
}

// render executes the resolve-and-render flow and writes the document to
// stdout or the selected output file.
func (runner *cliRunner) render(options *cliOptions) error {
	renderOptions := typemark.Options{Title: options.Title}
	if options.Full {
		declarationsOnly := false
		renderOptions.DeclarationsOnly = &declarationsOnly
	}

	rendered, err := typemark.RenderSchemaFile(options.Args.SchemaFile, options.Args.SchemaName, renderOptions)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	if strings.TrimSpace(options.Output) == "" {
		if _, err := io.WriteString(runner.stdout, rendered); err != nil {
			return fmt.Errorf("write markdown to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(options.Output, []byte(rendered), 0o600); err != nil {
		return fmt.Errorf("write markdown file %q: %w", options.Output, err)
	}

	return nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	_, _ = fmt.Fprintln(output, err.Error())
}
