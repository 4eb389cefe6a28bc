// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.24
//

package geoconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//-------------------------------------------------------------------
// PosLLA
//-------------------------------------------------------------------

// PosLLA is a geodetic position on the WGS84 ellipsoid.
// Lat and Lon are in degrees, Alt in meters above the ellipsoid.
// Lat must be within [-90, 90]; Lon is not normalized.
type PosLLA struct {
	Lat float64
	Lon float64
	Alt float64
}

func NewPosLLA(lat, lon, alt float64) *PosLLA {
	return &PosLLA{
		Lat: lat,
		Lon: lon,
		Alt: alt,
	}
}

// primeVertical computes the radius of curvature in the prime vertical
// N(phi) = Re / sqrt(1 - e^2 sin^2 phi), with phi in radians.
func primeVertical(phi float64) float64 {
	return Re / math.Sqrt(1-SQ(Ec)*SQ(math.Sin(phi)))
}

// ToECEF converts the geodetic position to Cartesian ECEF coordinates
// in meters. Valid for all latitudes including the poles.
func (llh *PosLLA) ToECEF() PosECEF {
	lat := ToRad(llh.Lat)
	lon := ToRad(llh.Lon)

	n := primeVertical(lat)
	return PosECEF{
		X: (n + llh.Alt) * math.Cos(lat) * math.Cos(lon),
		Y: (n + llh.Alt) * math.Cos(lat) * math.Sin(lon),
		Z: (n*(1-SQ(Ec)) + llh.Alt) * math.Sin(lat),
	}
}

// ToENU returns the position relative to base, expressed in the local
// east-north-up frame at base.
func (llh *PosLLA) ToENU(base PosECEF) PosENU {
	xyz := llh.ToECEF()
	return xyz.ToENU(base)
}

// Elevation returns the elevation angle of tgt above the local horizon
// at the observer, in degrees.
func (usr *PosLLA) Elevation(tgt PosECEF) float64 {
	xyz := usr.ToECEF()
	enu := tgt.ToENU(xyz)
	return enu.Elevation()
}

// Azimuth returns the azimuth of tgt as seen from the observer, in
// degrees clockwise from north, in [0, 360).
func (usr *PosLLA) Azimuth(tgt PosECEF) float64 {
	xyz := usr.ToECEF()
	enu := tgt.ToENU(xyz)
	return enu.Azimuth()
}

// Rounded returns a copy with every component rounded to n decimal
// digits.
func (llh *PosLLA) Rounded(n int) PosLLA {
	return PosLLA{
		Lat: RoundN(llh.Lat, n),
		Lon: RoundN(llh.Lon, n),
		Alt: RoundN(llh.Alt, n),
	}
}

// Read from string ("lat lon alt" in degrees and meters)
func (llh *PosLLA) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("want 3 fields, got %d", len(f))
	}
	var err error
	llh.Lat, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	llh.Lon, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	llh.Alt, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return err
	}
	return nil
}

// Convert to string
func (llh *PosLLA) String() string {
	return fmt.Sprintf("%.8f %.8f %.4f", llh.Lat, llh.Lon, llh.Alt)
}

//-------------------------------------------------------------------
// PosECEF
//-------------------------------------------------------------------

// PosECEF is a Cartesian earth-centered earth-fixed position in meters.
// The origin is Earth's center of mass, Z points to the north pole and
// X pierces the equator at the prime meridian.
type PosECEF struct {
	X float64
	Y float64
	Z float64
}

func NewPosECEF(x, y, z float64) *PosECEF {
	return &PosECEF{
		X: x,
		Y: y,
		Z: z,
	}
}

// ToLLA converts the ECEF position to geodetic coordinates using the
// closed-form approximation. Accurate to sub-meter level from the
// surface through low-Earth-orbit altitudes. A point at or near the
// geocenter is outside the valid domain and yields NaN/Inf components.
func (pos *PosECEF) ToLLA() PosLLA {
	p := math.Hypot(pos.X, pos.Y)
	t := math.Atan2(pos.Z*Re, p*Rp)
	sint := math.Sin(t)
	cost := math.Cos(t)

	lat := math.Atan2(pos.Z+SQ(Ec2)*Rp*sint*sint*sint, p-SQ(Ec)*Re*cost*cost*cost)
	lon := math.Atan2(pos.Y, pos.X)
	alt := p/math.Cos(lat) - primeVertical(lat)
	return PosLLA{Lat: ToDeg(lat), Lon: ToDeg(lon), Alt: alt}
}

// ToENU returns the position relative to base, expressed in the local
// east-north-up frame at base.
func (pos *PosECEF) ToENU(base PosECEF) PosENU {
	llh := base.ToLLA()
	e, n, u := rotate(enuDCM(ToRad(llh.Lat), ToRad(llh.Lon)),
		pos.X-base.X, pos.Y-base.Y, pos.Z-base.Z)
	return PosENU{E: e, N: n, U: u}
}

func (usr *PosECEF) Elevation(tgt PosECEF) float64 {
	enu := tgt.ToENU(*usr)
	return enu.Elevation()
}

func (usr *PosECEF) Azimuth(tgt PosECEF) float64 {
	enu := tgt.ToENU(*usr)
	return enu.Azimuth()
}

func (pos *PosECEF) Rounded(n int) PosECEF {
	return PosECEF{
		X: RoundN(pos.X, n),
		Y: RoundN(pos.Y, n),
		Z: RoundN(pos.Z, n),
	}
}

// Read from string ("x y z" in meters)
func (pos *PosECEF) Set(s string) error {
	f := strings.Fields(s)
	if len(f) != 3 {
		return fmt.Errorf("want 3 fields, got %d", len(f))
	}
	var err error
	pos.X, err = strconv.ParseFloat(f[0], 64)
	if err != nil {
		return err
	}
	pos.Y, err = strconv.ParseFloat(f[1], 64)
	if err != nil {
		return err
	}
	pos.Z, err = strconv.ParseFloat(f[2], 64)
	if err != nil {
		return err
	}
	return nil
}

// Convert to string
func (pos *PosECEF) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", pos.X, pos.Y, pos.Z)
}

//-------------------------------------------------------------------
// PosENU
//-------------------------------------------------------------------

// PosENU is a position offset in a local east-north-up tangent frame,
// in meters.
type PosENU struct {
	E float64
	N float64
	U float64
}

func NewPosENU(e, n, u float64) *PosENU {
	return &PosENU{
		E: e,
		N: n,
		U: u,
	}
}

// ToECEF rotates the offset back to ECEF axes and adds base.
func (enu *PosENU) ToECEF(base PosECEF) PosECEF {
	llh := base.ToLLA()
	x, y, z := rotate(enuDCM(ToRad(llh.Lat), ToRad(llh.Lon)).T(),
		enu.E, enu.N, enu.U)
	return PosECEF{
		X: x + base.X,
		Y: y + base.Y,
		Z: z + base.Z,
	}
}

// Elevation returns the angle of the offset above the local horizon,
// in degrees.
func (enu *PosENU) Elevation() float64 {
	return ToDeg(math.Atan2(enu.U, math.Hypot(enu.E, enu.N)))
}

// Azimuth returns the direction of the offset in degrees clockwise
// from north, in [0, 360).
func (enu *PosENU) Azimuth() float64 {
	az := ToDeg(math.Atan2(enu.E, enu.N))
	if az < 0 {
		az += 360
	}
	return az
}
