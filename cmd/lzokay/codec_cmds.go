// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/woozymasta/lzokay"
	"github.com/woozymasta/lzokay/internal/container"
)

var errSizeRequired = errors.New("-size is required with -raw")

func runCompress(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("compress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	level := fs.Int("level", lzokay.DefaultCompressionLevel, "compression level 1-9")
	raw := fs.Bool("raw", false, "write a bare LZO1X stream without the container")
	in := fs.String("in", "", "input file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	verbose := fs.Bool("v", false, "log details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	var encoded []byte
	if *raw {
		encoded = lzokay.CompressLevel(data, *level)
	} else {
		encoded = container.Encode(data, *level)
	}

	logger.Debug("compressed",
		"level", *level,
		"raw", *raw,
		"in_bytes", len(data),
		"out_bytes", len(encoded),
	)

	return writeOutput(*out, encoded, stdout)
}

func runDecompress(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("decompress", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", -1, "output capacity in bytes (required with -raw)")
	raw := fs.Bool("raw", false, "read a bare LZO1X stream without the container")
	in := fs.String("in", "", "input file (default stdin)")
	out := fs.String("out", "", "output file (default stdout)")
	verbose := fs.Bool("v", false, "log details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	var decoded []byte
	if *raw {
		if *size < 0 {
			return errSizeRequired
		}

		decoded, err = lzokay.Decompress(data, lzokay.DefaultDecompressOptions(*size))
	} else {
		decoded, err = container.Decode(data)
	}

	if err != nil {
		return fmt.Errorf("decompress %s: %w", inputName(*in), err)
	}

	logger.Debug("decompressed",
		"raw", *raw,
		"in_bytes", len(data),
		"out_bytes", len(decoded),
	)

	return writeOutput(*out, decoded, stdout)
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}

	return path
}
