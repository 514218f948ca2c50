// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command bz2enc compresses a single file to bzip2 format.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/go-bzip/bz2enc/bzip2"
)

const (
	exitArgs       = 1
	exitFilesystem = 2
	exitOutput     = 3
)

func main() {
	app := &cli.App{
		Name:      "bz2enc",
		Usage:     "compress a file to bzip2 format",
		UsageText: "bz2enc [options] file_to_encode",
		ArgsUsage: "file_to_encode",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "level",
				Aliases: []string{"l"},
				Value:   9,
				Usage:   "compression level, 1 (fastest) through 9 (best ratio)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		if ec, ok := err.(cli.ExitCoder); ok {
			os.Exit(ec.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "[output error] %v\n", err)
		os.Exit(exitOutput)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("expected exactly one file to encode", exitArgs)
	}
	path := c.Args().Get(0)

	in, err := os.Open(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("[filesystem error] %v", err), exitFilesystem)
	}
	defer in.Close()

	out, err := os.Create(path + ".bz2")
	if err != nil {
		return cli.Exit(fmt.Sprintf("[filesystem error] %v", err), exitFilesystem)
	}
	defer out.Close()

	bw := bufio.NewWriter(out)
	wr, err := bzip2.NewWriterLevel(bw, c.Int("level"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("[output error] %v", err), exitOutput)
	}

	if _, err := io.Copy(wr, in); err != nil {
		return cli.Exit(fmt.Sprintf("[output error] %v", err), exitOutput)
	}
	if err := wr.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("[output error] %v", err), exitOutput)
	}
	if err := bw.Flush(); err != nil {
		return cli.Exit(fmt.Sprintf("[output error] %v", err), exitOutput)
	}
	return nil
}
