// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/woozymasta/lzokay/internal/codec"
)

// benchSample is used when bench runs without -in.
func benchSample() []byte {
	var buf bytes.Buffer
	for i := range 4096 {
		fmt.Fprintf(&buf, "record=%d name=sensor-%03d value=%d status=ok\n", i, i%128, (i*7919)%1000)
	}

	return buf.Bytes()
}

func runBench(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	iterations := fs.Int("n", 10, "iterations per codec")
	in := fs.String("in", "", "input file (default: built-in sample)")
	names := fs.String("codecs", "", "comma-separated codec names (default: all)")
	verbose := fs.Bool("v", false, "log details")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, *verbose)

	data := benchSample()
	if *in != "" {
		var err error
		if data, err = readInput(*in, stdin); err != nil {
			return err
		}
	}

	codecs, err := selectCodecs(*names)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "codec\tsize\tratio\tsavings\tcompress MB/s\tdecompress MB/s\t")

	for _, c := range codecs {
		stats, err := codec.Measure(c, data, *iterations)
		if err != nil {
			return err
		}

		logger.Debug("measured", "codec", stats.Codec, "compress_ns", stats.CompressNs, "decompress_ns", stats.DecompressNs)
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.1f%%\t%.1f\t%.1f\t\n",
			stats.Codec, stats.CompressedSize, stats.Ratio(), stats.SpaceSavings(),
			stats.CompressMBps(), stats.DecompressMBps(),
		)
	}

	return tw.Flush()
}

func selectCodecs(names string) ([]codec.Codec, error) {
	if strings.TrimSpace(names) == "" {
		return codec.All(), nil
	}

	var out []codec.Codec
	for name := range strings.SplitSeq(names, ",") {
		c, err := codec.ByName(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}
