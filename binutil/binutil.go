package binutil

import (
	"encoding/gob"
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"os"
	"time"
)

// GenerateNLengthRandomBinRuneSlice returns n-length random binary string
// max == 0 for no cap limit
func GenerateNLengthRandomBinRuneSlice(n int, max uint) ([]rune, uint) {
	binstr := make([]rune, n)
	sum := uint(0)
	rand.Seed(time.Now().UTC().UnixNano())

	for i := 0; i < n; i++ {
		var b rune
		if max != uint(0) && max < uint(math.Pow(float64(2), float64(n-i))) {
			b = '0'
		} else if rand.Intn(2) == 0 {
			b = '0'
		} else {
			b = '1'
		}
		binstr[i] = b
		if b == '1' {
			sum += uint(math.Pow(float64(2), float64(n-i-1)))
		}
	}

	if max != uint(0) && max < sum {
		binstr, sum = GenerateNLengthRandomBinRuneSlice(n, max)
	}

	return binstr, sum
}

// GenerateNLengthZeroPaddingRuneSlice returns n-length zero padding string
func GenerateNLengthZeroPaddingRuneSlice(n int) []rune {
	binstr := make([]rune, n)

	for i := 0; i < n; i++ {
		binstr[i] = '0'
	}

	return binstr
}

// ParseBigIntToBinString makes binary string from a big integer
func ParseBigIntToBinString(cp *big.Int) string {
	binStr := fmt.Sprintf("%b", cp)
	return binStr
}

// ParseBinRuneSliceToBigInt returns the big integer represented by a
// binary string
func ParseBinRuneSliceToBigInt(bs []rune) (*big.Int, error) {
	if len(bs) == 0 {
		return nil, errors.New("empty binary string passed to ParseBinRuneSliceToBigInt")
	}
	for _, b := range bs {
		if b != '0' && b != '1' {
			return nil, fmt.Errorf("non-binary rune %q passed to ParseBinRuneSliceToBigInt", b)
		}
	}
	cp, _ := new(big.Int).SetString(string(bs), 2)
	return cp, nil
}

// Save takes a file path and a gob-encodable object, and saves it to disk
func Save(path string, object interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewEncoder(file).Encode(object)
}

// Load opens a gob file and decodes its content into object
func Load(path string, object interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return gob.NewDecoder(file).Decode(object)
}
