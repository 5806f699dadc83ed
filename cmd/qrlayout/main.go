// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrlayout renders the structural skeleton of the QR code that
// would hold its input: finder and alignment patterns, timing
// placeholders and the mode indicator.  No data is encoded.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/gogpu/gg"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"

	"github.com/unixdj/qrlayout"
	"github.com/unixdj/qrlayout/ggcanvas"
	"github.com/unixdj/qrlayout/version"
)

var formats = []string{"png", "pbm", "utf8", "ascii"}

var g = struct {
	width  int           // surface width in pixels
	fn     string        // output filename
	lev    version.Level // error correction level
	format int           // output format index in formats
	debug  bool          // grid overlay
	est    bool          // allow estimated versions
	latin1 bool          // Latin-1 capacity
}{}

func usage() {
	fmt.Fprint(os.Stderr, `QR structural layout renderer
If no string is given, data is read from standard input and the final
newline is stripped.  No data is encoded: the output is the fixed
pattern skeleton of the symbol that would hold the input.

`)
	getopt.PrintUsage(os.Stderr)
	os.Exit(2)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("[string ...]")
	getopt.Flag(&g.debug, 'g', "draw the module grid")
	getopt.Flag(&g.est, 'e', "allow estimated versions above "+
		version.MaxExact.String()+"; their capacity is approximate")
	getopt.Flag(&g.latin1, '1', "measure capacity as Latin-1")
	getopt.Flag(&g.fn, 'o', `output file, or "-" for standard output`,
		"file")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	width := getopt.Unsigned('w', 256,
		&getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 21, Max: 1 << 14},
		"surface width in pixels", "width")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	g.width = int(*width)
	g.lev, _ = version.ParseLevel(*lev)
	if g.fn == "-" {
		g.fn = ""
	}
	if *ff == "" {
		if !getopt.IsSet('o') &&
			isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	for i, v := range formats {
		if *ff == v {
			g.format = i
			break
		}
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}

	opts := qrlayout.Options{
		Debug:     g.debug,
		Level:     g.lev,
		Estimated: g.est,
		Latin1:    g.latin1,
	}

	w := os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	var err error
	if g.format == 0 {
		err = writePNG(w, s, opts)
	} else {
		err = writeRaster(w, s, opts)
	}
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func writePNG(w io.Writer, s string, opts qrlayout.Options) error {
	dc := gg.NewContext(g.width, g.width)
	defer dc.Close()
	dc.ClearWithColor(gg.White)
	dc.SetColor(gg.Black.Color())
	c := ggcanvas.New(dc)
	if err := qrlayout.Render(c, s, opts); err != nil {
		return err
	}
	if err := c.Err(); err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func writeRaster(w io.Writer, s string, opts qrlayout.Options) error {
	r := qrlayout.NewRaster(g.width)
	if err := qrlayout.Render(r, s, opts); err != nil {
		return err
	}
	switch g.format {
	case 1:
		return r.EncodePBM(w)
	case 2:
		_, err := io.WriteString(w, r.String())
		return err
	default:
		return r.EncodeASCII(w)
	}
}
