// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

// Command lzokay compresses, decompresses, inspects and benchmarks LZO1X data.
//
//	lzokay compress   [-level N] [-raw] [-in FILE] [-out FILE]
//	lzokay decompress [-size N]  [-raw] [-in FILE] [-out FILE]
//	lzokay inspect    [-size N]  [-raw] [-in FILE]
//	lzokay bench      [-n ITER] [-codecs LIST] [-in FILE]
//
// Input defaults to stdin and output to stdout. Without -raw, compress writes
// the lzokay container (size and checksum included) and decompress/inspect
// read it; with -raw they work on a bare LZO1X stream and -size is the
// output capacity.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/woozymasta/lzokay"
)

var errUsage = errors.New("usage: lzokay <compress|decompress|inspect|bench> [flags]")

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		attrs := []any{"err", err}
		if kind, ok := lzokay.KindOf(err); ok {
			attrs = append(attrs, "kind", kind.String())
		}

		logger.Error("lzokay failed", attrs...)
		os.Exit(1)
	}
}

// run executes one subcommand. Diagnostics and -v logs go to stderr.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "compress":
		return runCompress(rest, stdin, stdout, stderr)
	case "decompress":
		return runDecompress(rest, stdin, stdout, stderr)
	case "inspect":
		return runInspect(rest, stdin, stdout, stderr)
	case "bench":
		return runBench(rest, stdin, stdout, stderr)
	case "help", "-h", "-help", "--help":
		_, err := fmt.Fprintln(stdout, errUsage.Error())
		return err
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// newLogger returns the per-command logger; verbose enables debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// readInput reads all of path, or of stdin when path is empty or "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // G306: regular output file
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
