// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.16
//

package geoconv

import (
	"fmt"
	"math"
	"os"
)

// ------------------------------------
// Mini functions
// ------------------------------------

func SQ(x float64) float64 {
	return x * x
}

func ToDeg(rad float64) float64 {
	return rad / PI * 180.0
}

func ToRad(deg float64) float64 {
	return deg / 180.0 * PI
}

func EucDist(a, b *PosECEF) float64 {
	return math.Sqrt(SQ(a.X-b.X) + SQ(a.Y-b.Y) + SQ(a.Z-b.Z))
}

// RoundN rounds v to n decimal digits. A non-positive n rounds to the
// nearest integer. Intended for presentation only; the conversion
// functions never round internally.
func RoundN(v float64, n int) float64 {
	if n <= 0 {
		return math.Round(v)
	}
	s := math.Pow(10, float64(n))
	return math.Round(v*s) / s
}

// ------------------------------------
// Debug print function
// ------------------------------------

func PrintA(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
}

func PrintE(err error) {
	fmt.Fprintf(os.Stderr, "err=%s\n", err.Error())
}
