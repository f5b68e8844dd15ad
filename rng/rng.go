// Package rng - deterministic random streams shared by the resampling routines.
//
// This package centralizes every source of randomness used by roughstat.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across runs and platforms.
//   - Injection: callers pass a *rand.Rand explicitly; there is no package-global generator.
//   - Safety: no panics on user input, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Stream or Derive to create one independent generator per worker or iteration.
package rng

import (
	"errors"
	"math/rand"
)

// DefaultSeed is the seed of the stream returned by Default.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// ErrInvalidSize is returned when a requested permutation or split size is negative
// or a split asks for more items than the population holds.
var ErrInvalidSize = errors.New("rng: invalid size")

// ErrEmptyChoice is returned by Choice on an empty candidate slice.
var ErrEmptyChoice = errors.New("rng: choice from empty slice")

// New returns a deterministic *rand.Rand seeded with seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Default returns a fresh stream seeded with DefaultSeed.
// Used whenever a caller passes a nil *rand.Rand.
func Default() *rand.Rand {
	return New(DefaultSeed)
}

// Or returns r, or a fresh Default stream when r is nil.
func Or(r *rand.Rand) *rand.Rand {
	if r == nil {
		return Default()
	}
	return r
}

// Stream returns the generator for the i-th independent iteration of a
// procedure seeded with seed. The stream seed is seed+i, so iteration i of
// a run is reproducible in isolation and in any execution order.
//
// Complexity: O(1).
func Stream(seed int64, i int) *rand.Rand {
	return New(seed + int64(i))
}

// DeriveSeed maps a parent seed and a stream number to a child seed with
// the SplitMix64 finalizer. Neighbouring stream numbers give unrelated
// seeds, unlike seed+i.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return int64(x ^ (x >> 31))
}

// Derive returns the child stream number stream of base. One Int63 is drawn
// from base, so deriving twice with the same number still yields two
// different children; a nil base stands for DefaultSeed.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return New(DeriveSeed(parent, stream))
}

// Shuffle performs an in-place Fisher–Yates shuffle of a using r.
// If r==nil, the Default stream is used.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle(a []int, r *rand.Rand) {
	var n int
	n = len(a)
	if n <= 1 {
		return
	}

	var (
		src  *rand.Rand
		i, j int
	)
	src = Or(r)
	for i = n - 1; i > 0; i-- {
		j = src.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a permutation of 0..n-1 drawn from r.
// For n<0, returns ErrInvalidSize.
//
// Complexity: O(n) time, O(n) space.
func Perm(n int, r *rand.Rand) ([]int, error) {
	if n < 0 {
		return nil, ErrInvalidSize
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	Shuffle(p, r)
	return p, nil
}

// Split partitions the indices 0..n-1 uniformly at random, without
// replacement, into a first group of size k and a second group of size n-k.
// Both groups are returned in the order the permutation produced them.
//
// Errors: ErrInvalidSize when n<0, k<0 or k>n.
// Complexity: O(n).
func Split(n, k int, r *rand.Rand) (first, second []int, err error) {
	if n < 0 || k < 0 || k > n {
		return nil, nil, ErrInvalidSize
	}
	p, err := Perm(n, r)
	if err != nil {
		return nil, nil, err
	}
	return p[:k:k], p[k:], nil
}

// Choice returns one element of xs drawn uniformly with r.
// If r==nil, the Default stream is used.
func Choice(xs []int, r *rand.Rand) (int, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyChoice
	}
	return xs[Or(r).Intn(len(xs))], nil
}
