// SPDX-License-Identifier: MIT
// Package: signedge/builder
//
// sign_fn.go - edge sign distributions for graph constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/signedge/core"
)

// SignFn produces an edge sign given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type SignFn func(rng *rand.Rand) core.Sign

// ConstantSign returns a SignFn that always yields s.
// Panics if s is not a valid sign.
func ConstantSign(s core.Sign) SignFn {
	if !s.Valid() {
		panic(fmt.Sprintf("builder: ConstantSign(%d) is not ±1", s))
	}
	return func(*rand.Rand) core.Sign { return s }
}

// AlternatingSign yields +1, -1, +1, ... in call order, ignoring rng.
// Each call to AlternatingSign starts a fresh sequence.
func AlternatingSign() SignFn {
	next := core.Positive
	return func(*rand.Rand) core.Sign {
		s := next
		next = -next
		return s
	}
}

// BernoulliSign returns Negative with probability p and Positive otherwise.
// With a nil rng it falls back to the deterministic majority sign.
func BernoulliSign(p float64) SignFn {
	return func(rng *rand.Rand) core.Sign {
		if rng == nil {
			if p > 0.5 {
				return core.Negative
			}
			return core.Positive
		}
		if rng.Float64() < p {
			return core.Negative
		}
		return core.Positive
	}
}
