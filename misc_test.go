// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.16
//

package geoconv

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundN(t *testing.T) {
	data := []struct {
		v    float64
		n    int
		want float64
	}{
		{1.23456, 2, 1.23},
		{1.23556, 2, 1.24},
		{-1.23556, 2, -1.24},
		{1.5, 0, 2},
		{1.4, -3, 1},
		{123456.789, 1, 123456.8},
		{0, 5, 0},
	}

	for _, d := range data {
		assert.InDelta(t, d.want, RoundN(d.v, d.n), 1e-12, "RoundN(%v, %d)", d.v, d.n)
	}
}

func TestDegRad(t *testing.T) {
	assert.InDelta(t, PI, ToRad(180), 1e-15)
	assert.InDelta(t, 90.0, ToDeg(PI/2), 1e-12)
	assert.InDelta(t, -45.5, ToDeg(ToRad(-45.5)), 1e-12)
}

func TestPrintA(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	old := os.Stderr
	os.Stderr = w
	PrintA("mode=%s digits=%d\n", "track", 2)
	os.Stderr = old
	require.NoError(t, w.Close())

	b, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "mode=track digits=2\n", string(b))
}

func TestEucDist(t *testing.T) {
	a := NewPosECEF(1, 2, 3)
	b := NewPosECEF(4, 6, 3)
	assert.InDelta(t, 5.0, EucDist(a, b), 1e-12)
}
