// Copyright (c) 2024 Aaron Anderson
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

package gotupper

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/azanderson/gotupper/binutil"
)

// ErrInvalidInput is returned when a supplied plot number is not a
// valid non-negative base-10 integer literal
var ErrInvalidInput = errors.New("invalid plot number")

// SelfRefK is the vertical position at which Tupper's formula plots a
// picture of its own written form
const SelfRefK = "960939379918958884971672962127852754715004339660129306651505519271702802" +
	"3952664246896428421743507181212671537827706233559932372808741443078913259639413377" +
	"2348785773574982392662971551717371699516523289053822161240323885586618401323558513" +
	"6048828693337902491454229288667081096184496091705183454067827731551705405381627380" +
	"9676025656250169814820834187831638491155902256100036523513703438744618483787372381" +
	"9822484986346503315941005497470059313833922649724946175154572836670236974546101465" +
	"5997933798537483143786841806593422227898388722980000748404719"

var seventeen = big.NewInt(GridHeight)

// bitmapRunes returns the fixed-length binary rendering of m.
// Shorter expansions are left-padded with '0'; for longer ones only
// the least-significant BitmapBits bits are kept.
func bitmapRunes(m *big.Int) []rune {
	bs := []rune(binutil.ParseBigIntToBinString(m))
	if len(bs) > BitmapBits {
		return bs[len(bs)-BitmapBits:]
	}
	return append(binutil.GenerateNLengthZeroPaddingRuneSlice(BitmapBits-len(bs)), bs...)
}

// BitString returns the 1802-character binary rendering of
// floor(k/17) that backs the plot at k
func BitString(k *big.Int) string {
	return string(bitmapRunes(new(big.Int).Div(k, seventeen)))
}

// Decode converts k into the plot drawn at that vertical position:
// the binary expansion of floor(k/17) is laid out with the bit at
// string position 17*i+j landing in grid[105-i][16-j], so the
// most-significant bits fill the grid from its far corner backwards.
// Only the least-significant 1802 bits of floor(k/17) affect the
// output; any higher bits are ignored.
func Decode(k *big.Int) Grid {
	bs := bitmapRunes(new(big.Int).Div(k, seventeen))

	var g Grid
	for i := 0; i < GridWidth; i++ {
		for j := 0; j < GridHeight; j++ {
			if bs[GridHeight*i+j] == '1' {
				g[GridWidth-1-i][GridHeight-1-j] = 1
			}
		}
	}
	return g
}

// ParseK validates s as a non-negative base-10 integer literal and
// returns it. Whitespace is stripped first so the constants can be
// pasted in their written multi-line form.
func ParseK(s string) (*big.Int, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	k, ok := new(big.Int).SetString(s, 10)
	if !ok || k.Sign() < 0 {
		return nil, fmt.Errorf("%w: not a non-negative decimal integer", ErrInvalidInput)
	}
	return k, nil
}

// DecodeString parses and decodes a plot number in one step
func DecodeString(s string) (Grid, error) {
	k, err := ParseK(s)
	if err != nil {
		return Grid{}, err
	}
	return Decode(k), nil
}

// Encode is the inverse of Decode: it returns the smallest k whose
// plot is g, i.e. 17 times the bitmap value read back out of the grid
func Encode(g Grid) *big.Int {
	bs := make([]rune, BitmapBits)
	for i := 0; i < GridWidth; i++ {
		for j := 0; j < GridHeight; j++ {
			if g[GridWidth-1-i][GridHeight-1-j] == 1 {
				bs[GridHeight*i+j] = '1'
			} else {
				bs[GridHeight*i+j] = '0'
			}
		}
	}
	// bs is all '0'/'1' by construction
	m, _ := binutil.ParseBinRuneSliceToBigInt(bs)
	return m.Mul(m, seventeen)
}
