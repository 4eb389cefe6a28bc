// Copyright (c) 2026 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.8.16
//

package geoconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivedParameters(t *testing.T) {
	// Published WGS84 values
	assert.InDelta(t, 6356752.314245, Rp, 1e-6)
	assert.InDelta(t, 0.0818191908426215, Ec, 1e-12)
	assert.InDelta(t, 0.0820944379496957, Ec2, 1e-12)

	// e' > e > 0 and both well below 1 for an oblate ellipsoid
	assert.Greater(t, Ec, 0.0)
	assert.Greater(t, Ec2, Ec)
	assert.Less(t, Ec2, 1.0)
}
