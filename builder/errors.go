// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices is returned when a size parameter is below its minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability is returned when an edge probability is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource is returned when a stochastic constructor runs without WithRand/WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
