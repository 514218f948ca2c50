// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bzbench compares bz2enc's encode speed and compression ratio
// against zstd and xz on the same input files.
package main

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/cpuid/v2"
	"github.com/sirupsen/logrus"
	"github.com/ulikunitz/xz"
	"github.com/urfave/cli/v2"

	"github.com/go-bzip/bz2enc/bzip2"
	"github.com/go-bzip/bz2enc/internal/benchmark"
)

var log = logrus.New()

type codec struct {
	name   string
	encode func(w io.Writer) (io.WriteCloser, error)
}

func codecs(level int) []codec {
	return []codec{
		{
			name: "bz2enc",
			encode: func(w io.Writer) (io.WriteCloser, error) {
				return bzip2.NewWriterLevel(w, level)
			},
		},
		{
			name: "zstd",
			encode: func(w io.Writer) (io.WriteCloser, error) {
				return zstd.NewWriter(w, zstd.WithEncoderLevel(zstdLevel(level)))
			},
		},
		{
			name: "xz",
			encode: func(w io.Writer) (io.WriteCloser, error) {
				return xz.NewWriter(w)
			},
		},
	}
}

// zstdLevel maps a bzip2-style 1..9 level onto zstd's coarser speed/ratio
// tiers, so both codecs can be driven from the same --level flag.
func zstdLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 2:
		return zstd.SpeedFastest
	case level <= 5:
		return zstd.SpeedDefault
	case level <= 7:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	app := &cli.App{
		Name:  "bzbench",
		Usage: "compare bz2enc against other compressors",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "level", Aliases: []string{"l"}, Value: 9},
			&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Value: 1 << 20, Usage: "input size in bytes"},
			&cli.StringSliceFlag{
				Name:  "file",
				Value: cli.NewStringSlice("testdata/twain.txt", "testdata/digits.txt", "testdata/repeats.bin"),
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	log.Infof("cpu: %s (%d logical cores, features: AVX2=%v)",
		cpuid.CPU.BrandName, cpuid.CPU.LogicalCores, cpuid.CPU.Supports(cpuid.AVX2))

	level := c.Int("level")
	size := c.Int("size")

	for _, file := range c.StringSlice("file") {
		input, err := benchmark.LoadFile(file, size)
		if err != nil {
			log.Warnf("%s: %v", file, err)
			continue
		}
		for _, cd := range codecs(level) {
			var buf bytes.Buffer
			wc, err := cd.encode(&buf)
			if err != nil {
				log.Errorf("%s/%s: %v", file, cd.name, err)
				continue
			}

			start := time.Now()
			if _, err := wc.Write(input); err != nil {
				log.Errorf("%s/%s: %v", file, cd.name, err)
				continue
			}
			if err := wc.Close(); err != nil {
				log.Errorf("%s/%s: %v", file, cd.name, err)
				continue
			}
			elapsed := time.Since(start)

			ratio := float64(len(input)) / float64(buf.Len())
			mbPerSec := float64(len(input)) / elapsed.Seconds() / (1 << 20)
			log.WithFields(logrus.Fields{
				"file":  file,
				"codec": cd.name,
			}).Infof("%d -> %d bytes (%.2fx), %.1f MB/s", len(input), buf.Len(), ratio, mbPerSec)
		}
	}
	return nil
}
