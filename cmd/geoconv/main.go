// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	m "github.com/mkhts/geoconv"
)

var modes = []string{"lla2ecef", "ecef2lla", "ecef2ned", "ecef2enu", "track"}

// Reference point flag ("lat lon alt"), remembers whether it was given
type refOpt struct {
	pos m.PosLLA
	ok  bool
}

func (p *refOpt) Set(s string) error {
	p.ok = true
	return p.pos.Set(s)
}

func (p *refOpt) String() string {
	return p.pos.String()
}

type cmdOpt struct {
	mode    string
	ref     refOpt
	digits  int
	verbose bool
}

func parseArgs() (cmdOpt, error) {
	args := cmdOpt{}
	flag.StringVar(&args.mode, "m", "lla2ecef", "conversion mode ("+strings.Join(modes, ", ")+")")
	flag.Var(&args.ref, "ref", "reference point \"lat lon alt\" for tangent-frame modes")
	flag.IntVar(&args.digits, "r", -1, "round output to N decimal digits (negative: raw)")
	flag.BoolVar(&args.verbose, "v", false, "print diagnostics to stderr")
	flag.Parse()

	if !slices.Contains(modes, args.mode) {
		return args, fmt.Errorf("unknown mode %q", args.mode)
	}
	if (args.mode == "ecef2ned" || args.mode == "ecef2enu") && !args.ref.ok {
		return args, fmt.Errorf("mode %s needs -ref", args.mode)
	}
	return args, nil
}

func main() {

	// Parse command line arguments
	args, err := parseArgs()
	if err != nil {
		m.PrintE(err)
		flag.Usage()
		os.Exit(1)
	}

	// Run the main application
	if err := runApplication(args, os.Stdin, os.Stdout); err != nil {
		m.PrintE(err)
		os.Exit(1)
	}
}

// Convert the input line by line. Each line carries three
// whitespace-separated values whose meaning depends on the mode;
// blank lines and lines starting with '#' are skipped.
func runApplication(args cmdOpt, in io.Reader, out io.Writer) error {
	if args.verbose {
		m.PrintA("mode=%s ref=%s digits=%d\n", args.mode, args.ref.String(), args.digits)
	}

	sc := bufio.NewScanner(in)
	for ln := 1; sc.Scan(); ln++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		v, err := parseFields(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		fmt.Fprintln(out, convert(args, v))
	}
	return sc.Err()
}

func parseFields(line string) ([3]float64, error) {
	var v [3]float64
	f := strings.Fields(line)
	if len(f) != 3 {
		return v, fmt.Errorf("want 3 fields, got %d", len(f))
	}
	for i, s := range f {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return v, err
		}
		v[i] = x
	}
	return v, nil
}

func convert(args cmdOpt, v [3]float64) string {
	ref := args.ref.pos
	switch args.mode {
	case "lla2ecef":
		p := m.NewPosLLA(v[0], v[1], v[2]).ToECEF()
		if args.digits >= 0 {
			p = p.Rounded(args.digits)
		}
		return p.String()
	case "ecef2lla":
		p := m.NewPosECEF(v[0], v[1], v[2]).ToLLA()
		if args.digits >= 0 {
			p = p.Rounded(args.digits)
		}
		return p.String()
	case "ecef2ned":
		w := m.NewVelECEF(v[0], v[1], v[2]).ToNED(ref.Lat, ref.Lon)
		if args.digits >= 0 {
			w = w.Rounded(args.digits)
		}
		return w.String()
	case "ecef2enu":
		w := m.NewVelECEF(v[0], v[1], v[2]).ToENU(ref.Lat, ref.Lon)
		if args.digits >= 0 {
			w = w.Rounded(args.digits)
		}
		return w.String()
	case "track":
		// Input is a NED velocity; output is ground speed and heading.
		w := m.NewVelNED(v[0], v[1], v[2])
		speed := m.GroundSpeed(w)
		heading := m.Heading(w)
		if args.digits >= 0 {
			speed = m.RoundN(speed, args.digits)
			heading = m.RoundN(heading, args.digits)
		}
		return fmt.Sprintf("%.4f %.4f", speed, heading)
	}
	return ""
}
