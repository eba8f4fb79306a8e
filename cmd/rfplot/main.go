// SPDX-License-Identifier: MIT

// Command rfplot renders |S_ij| in dB versus frequency from a
// Touchstone file to a PNG.
//
// Usage:
//
//	rfplot -in filter.s2p -pairs 1,1;2,1 -out filter.png
//
// The port count is inferred from the .sNp extension and can be
// overridden with -ports.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/cmplx"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/rfnet/touchstone"
)

var extPorts = regexp.MustCompile(`(?i)\.s(\d+)p$`)

func main() {
	var (
		in      = flag.String("in", "", "input Touchstone file (.sNp)")
		out     = flag.String("out", "sparams.png", "output PNG file")
		pairs   = flag.String("pairs", "1,1", "semicolon-separated 1-based i,j pairs to plot")
		ports   = flag.Int("ports", 0, "port count (default: inferred from the extension)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	if err := run(*in, *out, *pairs, *ports); err != nil {
		slog.Error("rfplot failed", "err", err)
		os.Exit(1)
	}
}

func run(in, out, pairSpec string, ports int) error {
	if in == "" {
		return fmt.Errorf("missing -in file")
	}
	if ports == 0 {
		m := extPorts.FindStringSubmatch(in)
		if m == nil {
			return fmt.Errorf("cannot infer port count from %q; pass -ports", in)
		}
		ports, _ = strconv.Atoi(m[1])
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()

	net, err := touchstone.Read(f, ports)
	if err != nil {
		return err
	}
	slog.Debug("loaded network", "file", in, "ports", net.NumPorts(), "points", net.NumFreqs())

	sel, err := parsePairs(pairSpec, net.NumPorts())
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = in
	p.X.Label.Text = fmt.Sprintf("frequency, %s", net.Frequency().Unit())
	p.Y.Label.Text = "|S|, dB"

	scaled := net.Frequency().ScaledPoints()
	for _, pr := range sel {
		xys := make(plotter.XYs, 0, net.NumFreqs())
		for fi := 0; fi < net.NumFreqs(); fi++ {
			v, serr := net.SAt(fi, pr[0], pr[1])
			if serr != nil {
				return serr
			}
			mag := cmplx.Abs(v)
			if math.IsNaN(mag) || mag == 0 {
				continue // resonant or blocked points have no dB value
			}
			xys = append(xys, plotter.XY{X: scaled[fi], Y: 20 * math.Log10(mag)})
		}
		line, lerr := plotter.NewLine(xys)
		if lerr != nil {
			return lerr
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("S%d%d", pr[0]+1, pr[1]+1), line)
	}

	if err = p.Save(8*vg.Inch, 5*vg.Inch, out); err != nil {
		return err
	}
	slog.Info("wrote plot", "file", out, "traces", len(sel))

	return nil
}

// parsePairs decodes "i,j;i,j" (1-based) into 0-based index pairs.
func parsePairs(spec string, n int) ([][2]int, error) {
	var sel [][2]int
	for _, part := range strings.Split(spec, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ij := strings.SplitN(part, ",", 2)
		if len(ij) != 2 {
			return nil, fmt.Errorf("bad pair %q", part)
		}
		i, err := strconv.Atoi(strings.TrimSpace(ij[0]))
		if err != nil {
			return nil, fmt.Errorf("bad pair %q: %w", part, err)
		}
		j, err := strconv.Atoi(strings.TrimSpace(ij[1]))
		if err != nil {
			return nil, fmt.Errorf("bad pair %q: %w", part, err)
		}
		if i < 1 || i > n || j < 1 || j > n {
			return nil, fmt.Errorf("pair %q out of range for %d ports", part, n)
		}
		sel = append(sel, [2]int{i - 1, j - 1})
	}
	if len(sel) == 0 {
		return nil, fmt.Errorf("no pairs selected")
	}

	return sel, nil
}
