package test

import (
	"math/rand"
	"sync"
	"time"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomUserID returns a pseudo-random positive user identifier.
func RandomUserID() int64 {
	return randomInt64(1, 1_000_000)
}

// RandomAmount returns a pseudo-random positive point amount within bounds.
func RandomAmount(min, max int64) int64 {
	if min <= 0 {
		min = 1
	}
	if max < min {
		max = min
	}
	return randomInt64(min, max)
}

func randomInt64(min, max int64) int64 {
	rngMu.Lock()
	defer rngMu.Unlock()
	return min + rng.Int63n(max-min+1)
}
