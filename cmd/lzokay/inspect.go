// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"

	"github.com/woozymasta/lzokay"
	"github.com/woozymasta/lzokay/internal/container"
)

// tokenSummary counts the tokens of one stream.
type tokenSummary struct {
	literals     int
	literalBytes int
	matches      int
	matchBytes   int
	byClass      map[string]int
}

func (s *tokenSummary) add(tok lzokay.Token) {
	switch tok.Kind {
	case lzokay.TokenLiteral:
		s.literals++
		s.literalBytes += tok.Length
	case lzokay.TokenMatch:
		s.matches++
		s.matchBytes += tok.Length
		s.byClass[matchClass(tok)]++
	}
}

// matchClass names the cheapest opcode class that can carry the match.
func matchClass(tok lzokay.Token) string {
	switch {
	case tok.Length == 2:
		return "M1"
	case tok.Length <= 8 && tok.Distance <= 0x800:
		return "M2"
	case tok.Length == 3 && tok.Distance <= 0xc00:
		return "M1"
	case tok.Distance <= 0x4000:
		return "M3"
	default:
		return "M4"
	}
}

func runInspect(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(stderr)
	size := fs.Int("size", -1, "output capacity in bytes (required with -raw)")
	raw := fs.Bool("raw", false, "read a bare LZO1X stream without the container")
	in := fs.String("in", "", "input file (default stdin)")
	quiet := fs.Bool("q", false, "print the summary only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := readInput(*in, stdin)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	defer w.Flush()

	stream, capacity := data, *size
	if !*raw {
		h, err := container.ReadHeader(data)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", inputName(*in), err)
		}

		fmt.Fprintf(w, "container v%d level=%d raw=%d xxh64=%016x\n", h.Version, h.Level, h.RawLen, h.Checksum)
		stream, capacity = data[container.HeaderSize:], int(h.RawLen)
	} else if capacity < 0 {
		return errSizeRequired
	}

	summary := tokenSummary{byClass: make(map[string]int)}
	out, err := lzokay.Inspect(stream, capacity, func(tok lzokay.Token) {
		summary.add(tok)
		if !*quiet {
			fmt.Fprintln(w, tok.String())
		}
	})
	if err != nil {
		return fmt.Errorf("inspect %s: %w", inputName(*in), err)
	}

	fmt.Fprintf(w, "stream=%d output=%d literals=%d (%d bytes) matches=%d (%d bytes) M1=%d M2=%d M3=%d M4=%d\n",
		len(stream), len(out),
		summary.literals, summary.literalBytes,
		summary.matches, summary.matchBytes,
		summary.byClass["M1"], summary.byClass["M2"], summary.byClass["M3"], summary.byClass["M4"],
	)

	return w.Flush()
}
