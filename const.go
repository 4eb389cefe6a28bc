// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.16
//

package geoconv

import "math"

// WGS84 defining parameters
const (
	PI = 3.1415926535897932  // Pi
	Re = 6378137.0           // Equatorial radius [m]
	Fe = 1.0 / 298.257223563 // Flattening
)

// WGS84 derived parameters, computed once at package init.
// Never mutated afterwards, so safe to read from any goroutine.
var (
	Rp  = Re * (1 - Fe)                          // Polar radius [m]
	Ec  = math.Sqrt((Re*Re - Rp*Rp) / (Re * Re)) // First eccentricity
	Ec2 = math.Sqrt((Re*Re - Rp*Rp) / (Rp * Rp)) // Second eccentricity
)
