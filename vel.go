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

	"gonum.org/v1/gonum/mat"
)

//-------------------------------------------------------------------
// Direction cosine matrices
//-------------------------------------------------------------------

// nedDCM returns the rotation from ECEF axes to the local
// north-east-down axes at geodetic latitude phi, longitude lam (radians).
func nedDCM(phi, lam float64) *mat.Dense {
	sp, cp := math.Sincos(phi)
	sl, cl := math.Sincos(lam)
	return mat.NewDense(3, 3, []float64{
		-sp * cl, -sp * sl, cp,
		-sl, cl, 0,
		-cp * cl, -cp * sl, -sp,
	})
}

// enuDCM returns the rotation from ECEF axes to the local
// east-north-up axes at geodetic latitude phi, longitude lam (radians).
func enuDCM(phi, lam float64) *mat.Dense {
	sp, cp := math.Sincos(phi)
	sl, cl := math.Sincos(lam)
	return mat.NewDense(3, 3, []float64{
		-sl, cl, 0,
		-sp * cl, -sp * sl, cp,
		cp * cl, cp * sl, sp,
	})
}

// rotate applies a 3x3 rotation to the vector (x, y, z).
func rotate(r mat.Matrix, x, y, z float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(r, mat.NewVecDense(3, []float64{x, y, z}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

//-------------------------------------------------------------------
// VelECEF
//-------------------------------------------------------------------

// VelECEF is a velocity vector on ECEF axes, in m/s.
type VelECEF struct {
	Vx float64
	Vy float64
	Vz float64
}

func NewVelECEF(vx, vy, vz float64) *VelECEF {
	return &VelECEF{
		Vx: vx,
		Vy: vy,
		Vz: vz,
	}
}

// ToNED rotates the velocity into the north-east-down tangent frame at
// the given geodetic latitude and longitude (degrees). The reference
// point fixes the frame orientation only; no translation is involved.
func (vel *VelECEF) ToNED(lat, lon float64) VelNED {
	vn, ve, vd := rotate(nedDCM(ToRad(lat), ToRad(lon)), vel.Vx, vel.Vy, vel.Vz)
	return VelNED{Vn: vn, Ve: ve, Vd: vd}
}

// ToENU rotates the velocity into the east-north-up tangent frame at
// the given geodetic latitude and longitude (degrees).
func (vel *VelECEF) ToENU(lat, lon float64) VelENU {
	ve, vn, vu := rotate(enuDCM(ToRad(lat), ToRad(lon)), vel.Vx, vel.Vy, vel.Vz)
	return VelENU{Ve: ve, Vn: vn, Vu: vu}
}

func (vel *VelECEF) Rounded(n int) VelECEF {
	return VelECEF{
		Vx: RoundN(vel.Vx, n),
		Vy: RoundN(vel.Vy, n),
		Vz: RoundN(vel.Vz, n),
	}
}

func (vel *VelECEF) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", vel.Vx, vel.Vy, vel.Vz)
}

//-------------------------------------------------------------------
// VelNED / VelENU
//-------------------------------------------------------------------

// Tangent is implemented by velocity vectors expressed in a local
// tangent-plane frame. Horizontal returns the north and east
// components, which both frame conventions share.
type Tangent interface {
	Horizontal() (vn, ve float64)
}

// VelNED is a velocity vector in the north-east-down tangent frame,
// in m/s.
type VelNED struct {
	Vn float64
	Ve float64
	Vd float64
}

func NewVelNED(vn, ve, vd float64) *VelNED {
	return &VelNED{
		Vn: vn,
		Ve: ve,
		Vd: vd,
	}
}

func (vel *VelNED) Horizontal() (float64, float64) {
	return vel.Vn, vel.Ve
}

// ToECEF applies the inverse rotation of VelECEF.ToNED at the same
// reference latitude and longitude (degrees).
func (vel *VelNED) ToECEF(lat, lon float64) VelECEF {
	vx, vy, vz := rotate(nedDCM(ToRad(lat), ToRad(lon)).T(), vel.Vn, vel.Ve, vel.Vd)
	return VelECEF{Vx: vx, Vy: vy, Vz: vz}
}

// ToENU flips the vertical axis; the horizontal components are shared.
func (vel *VelNED) ToENU() VelENU {
	return VelENU{Ve: vel.Ve, Vn: vel.Vn, Vu: -vel.Vd}
}

func (vel *VelNED) Rounded(n int) VelNED {
	return VelNED{
		Vn: RoundN(vel.Vn, n),
		Ve: RoundN(vel.Ve, n),
		Vd: RoundN(vel.Vd, n),
	}
}

func (vel *VelNED) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", vel.Vn, vel.Ve, vel.Vd)
}

// VelENU is a velocity vector in the east-north-up tangent frame,
// in m/s.
type VelENU struct {
	Ve float64
	Vn float64
	Vu float64
}

func NewVelENU(ve, vn, vu float64) *VelENU {
	return &VelENU{
		Ve: ve,
		Vn: vn,
		Vu: vu,
	}
}

func (vel *VelENU) Horizontal() (float64, float64) {
	return vel.Vn, vel.Ve
}

// ToECEF applies the inverse rotation of VelECEF.ToENU at the same
// reference latitude and longitude (degrees).
func (vel *VelENU) ToECEF(lat, lon float64) VelECEF {
	vx, vy, vz := rotate(enuDCM(ToRad(lat), ToRad(lon)).T(), vel.Ve, vel.Vn, vel.Vu)
	return VelECEF{Vx: vx, Vy: vy, Vz: vz}
}

// ToNED flips the vertical axis; the horizontal components are shared.
func (vel *VelENU) ToNED() VelNED {
	return VelNED{Vn: vel.Vn, Ve: vel.Ve, Vd: -vel.Vu}
}

func (vel *VelENU) Rounded(n int) VelENU {
	return VelENU{
		Ve: RoundN(vel.Ve, n),
		Vn: RoundN(vel.Vn, n),
		Vu: RoundN(vel.Vu, n),
	}
}

func (vel *VelENU) String() string {
	return fmt.Sprintf("%.4f %.4f %.4f", vel.Ve, vel.Vn, vel.Vu)
}

//-------------------------------------------------------------------
// Derived kinematics
//-------------------------------------------------------------------

// GroundSpeed returns the horizontal speed in m/s. The vertical
// component does not contribute.
func GroundSpeed(t Tangent) float64 {
	vn, ve := t.Horizontal()
	return math.Hypot(vn, ve)
}

// Heading returns the direction of travel in degrees clockwise from
// north, in [0, 360). Heading is undefined for zero horizontal
// velocity and NaN is returned in that case.
func Heading(t Tangent) float64 {
	vn, ve := t.Horizontal()
	if vn == 0 && ve == 0 {
		return math.NaN()
	}
	h := ToDeg(math.Atan2(ve, vn))
	if h < 0 {
		h += 360
	}
	return h
}
