// Package geohash encodes geographic points into base-32 geohash strings and
// back. The encoding interleaves one longitude bit then one latitude bit per
// step of a binary search over each axis, and renders the result with the
// standard 32-symbol geohash alphabet, so strings are bit-for-bit compatible
// with external geohash tooling. Longer strings mean finer cells; a prefix
// relationship between two hashes approximates spatial containment.
package geohash

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dpup/geo"
)

// Alphabet is the 32-symbol geohash alphabet. The letters a, i, l and o are
// excluded to avoid visual ambiguity.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// Resolution bounds, in bits per axis. The default yields 60 interleaved
// bits, i.e. twelve characters.
const (
	DefaultBitsPerAxis = 30
	MaxBitsPerAxis     = 32
)

// Codec errors.
var (
	ErrEmptyHash = errors.New("geohash: hash must not be empty")
	ErrBitsRange = errors.New("geohash: bits per axis must be in [1, 32]")
)

// alphabetIndex maps a character to its alphabet position, or -1. Built once
// at process start and never mutated.
var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		alphabetIndex[Alphabet[i]] = int8(i)
	}
}

// GeoHash is an immutable geohash string paired with the center point of the
// cell it denotes.
type GeoHash struct {
	hash  string
	point geo.Point
}

// Encode encodes a point at the default resolution of 30 bits per axis.
func Encode(p geo.Point) GeoHash {
	g, _ := EncodeWithPrecision(p, DefaultBitsPerAxis)
	return g
}

// EncodeWithPrecision encodes a point using the given number of bits per
// axis, between 1 and 32. Each axis is narrowed by binary search: at every
// step the coordinate is compared against the midpoint of the remaining
// interval, emitting 1 and raising the floor when it is greater or equal,
// 0 and lowering the ceiling otherwise. Longitude and latitude bits are
// interleaved, longitude first, and rendered in 5-bit groups; the last group
// is zero-padded so decoding realigns on character boundaries.
func EncodeWithPrecision(p geo.Point, bitsPerAxis int) (GeoHash, error) {
	if bitsPerAxis < 1 || bitsPerAxis > MaxBitsPerAxis {
		return GeoHash{}, ErrBitsRange
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	lat, lon := p.Lat(), p.Lon()

	var bits uint64
	for i := 0; i < bitsPerAxis; i++ {
		bits <<= 1
		if mid := (lonMin + lonMax) / 2; lon >= mid {
			bits |= 1
			lonMin = mid
		} else {
			lonMax = mid
		}
		bits <<= 1
		if mid := (latMin + latMax) / 2; lat >= mid {
			bits |= 1
			latMin = mid
		} else {
			latMax = mid
		}
	}

	hash := renderBits(bits, 2*bitsPerAxis)
	center := geo.NewPointUnsafe((latMin+latMax)/2, (lonMin+lonMax)/2)
	return GeoHash{hash: hash, point: center}, nil
}

// renderBits renders totalBits interleaved bits, most significant first, as
// base-32 characters.
func renderBits(bits uint64, totalBits int) string {
	n := (totalBits + 4) / 5
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		var idx byte
		for j := 0; j < 5; j++ {
			idx <<= 1
			if k := i*5 + j; k < totalBits && bits>>uint(totalBits-1-k)&1 == 1 {
				idx |= 1
			}
		}
		buf[i] = Alphabet[idx]
	}
	return string(buf)
}

// Decode returns the center of the cell denoted by hash. It fails on an
// empty string or any character outside the alphabet.
func Decode(hash string) (geo.Point, error) {
	if hash == "" {
		return geo.Point{}, ErrEmptyHash
	}

	latMin, latMax := -90.0, 90.0
	lonMin, lonMax := -180.0, 180.0
	lonBit := true

	for i := 0; i < len(hash); i++ {
		idx := alphabetIndex[hash[i]]
		if idx < 0 {
			return geo.Point{}, fmt.Errorf("geohash: invalid character %q in %q", hash[i], hash)
		}
		for j := 4; j >= 0; j-- {
			high := idx>>uint(j)&1 == 1
			if lonBit {
				if mid := (lonMin + lonMax) / 2; high {
					lonMin = mid
				} else {
					lonMax = mid
				}
			} else {
				if mid := (latMin + latMax) / 2; high {
					latMin = mid
				} else {
					latMax = mid
				}
			}
			lonBit = !lonBit
		}
	}

	return geo.NewPointUnsafe((latMin+latMax)/2, (lonMin+lonMax)/2), nil
}

// New validates a hash string and pairs it with its decoded cell center.
func New(hash string) (GeoHash, error) {
	p, err := Decode(hash)
	if err != nil {
		return GeoHash{}, err
	}
	return GeoHash{hash: hash, point: p}, nil
}

// Hash returns the geohash string.
func (g GeoHash) Hash() string { return g.hash }

// Point returns the center of the cell the hash denotes.
func (g GeoHash) Point() geo.Point { return g.point }

// Resolution returns the hash length in characters.
func (g GeoHash) Resolution() int { return len(g.hash) }

// Contains reports whether child's cell lies within g's cell. Geohash
// containment is string-prefix containment, which only approximates
// geometric containment near cell edges.
func (g GeoHash) Contains(child GeoHash) bool {
	return strings.HasPrefix(child.hash, g.hash)
}

// DecreaseResolution drops n characters from the end of the hash, widening
// the cell. It reports false when n consumes the whole hash (or more), since
// an empty hash is not a valid cell.
func (g GeoHash) DecreaseResolution(n int) (GeoHash, bool) {
	if n < 0 || n >= len(g.hash) {
		return GeoHash{}, false
	}
	return g.truncate(len(g.hash) - n)
}

// SetResolution truncates the hash to the given number of characters.
// Resolution can only decrease: a target at or beyond the current length
// returns g unchanged, because sharpening a cell would require the original
// point that truncation discarded. Targets below one character report false.
func (g GeoHash) SetResolution(chars int) (GeoHash, bool) {
	if chars < 1 {
		return GeoHash{}, false
	}
	if chars >= len(g.hash) {
		return g, true
	}
	return g.truncate(chars)
}

func (g GeoHash) truncate(chars int) (GeoHash, bool) {
	hash := g.hash[:chars]
	// The prefix is drawn from the same alphabet, so decoding cannot fail.
	p, _ := Decode(hash)
	return GeoHash{hash: hash, point: p}, true
}
