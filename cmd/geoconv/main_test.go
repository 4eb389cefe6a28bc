// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mkhts/geoconv"
)

func TestRunLLA2ECEF(t *testing.T) {
	args := cmdOpt{mode: "lla2ecef", digits: 1}
	in := strings.NewReader("# comment line\n28.4187 -81.5812 33.0\n\n")
	var out bytes.Buffer

	require.NoError(t, runApplication(args, in, &out))
	assert.Equal(t, "821905.3000 -5553322.7000 3017411.1000\n", out.String())
}

func TestRunECEF2NED(t *testing.T) {
	args := cmdOpt{mode: "ecef2ned", digits: -1}
	require.NoError(t, args.ref.Set("28.4187 -81.5812 0"))

	in := strings.NewReader("82.34 -554.45 301.32\n")
	var out bytes.Buffer
	require.NoError(t, runApplication(args, in, &out))

	n, err := splitFloats(out.String())
	require.NoError(t, err)
	got := m.VelNED{Vn: n[0], Ve: n[1], Vd: n[2]}
	assert.InDelta(t, -1.7539, got.Vn, 1e-3)
	assert.InDelta(t, 0.277, got.Ve, 1e-3)
	assert.InDelta(t, -636.3845, got.Vd, 1e-3)
}

func TestRunTrack(t *testing.T) {
	args := cmdOpt{mode: "track", digits: -1}
	in := strings.NewReader("34.39 123.876 -636.3845\n")
	var out bytes.Buffer

	require.NoError(t, runApplication(args, in, &out))
	n, err := splitFloats(out.String())
	require.NoError(t, err)
	assert.InDelta(t, 128.561, n[0], 1e-3)
	assert.InDelta(t, 74.4845, n[1], 1e-3)
}

func TestRunBadInput(t *testing.T) {
	args := cmdOpt{mode: "ecef2lla", digits: -1}
	var out bytes.Buffer

	err := runApplication(args, strings.NewReader("1 2\n"), &out)
	assert.ErrorContains(t, err, "line 1")

	err = runApplication(args, strings.NewReader("1 2 x\n"), &out)
	assert.Error(t, err)
}

func TestParseFields(t *testing.T) {
	v, err := parseFields("1.5  -2 3e3")
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1.5, -2, 3000}, v)

	_, err = parseFields("1 2 3 4")
	assert.Error(t, err)
}

func splitFloats(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Fields(s) {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}
