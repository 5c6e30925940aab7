package gotupper

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

// singleBit returns a grid with exactly one filled cell
func singleBit(x, y int) Grid {
	var g Grid
	g[x][y] = 1
	return g
}

// timesSeventeen returns 17 * 2^exp as a plot number
func timesSeventeen(exp uint) *big.Int {
	k := new(big.Int).Lsh(big.NewInt(1), exp)
	return k.Mul(k, big.NewInt(17))
}

func TestDecode(t *testing.T) {
	type args struct {
		k *big.Int
	}
	tests := []struct {
		name string
		args args
		want Grid
	}{
		{"k = 0", args{big.NewInt(0)}, Grid{}},
		{"k = 16, below one bitmap row", args{big.NewInt(16)}, Grid{}},
		{"k = 17, least-significant bit set", args{big.NewInt(17)}, singleBit(0, 0)},
		{"k = 18, same plot as 17", args{big.NewInt(18)}, singleBit(0, 0)},
		{"k = 34, second bit set", args{big.NewInt(34)}, singleBit(0, 1)},
		{"exactly 1802 bits, most-significant bit set", args{timesSeventeen(1801)}, singleBit(GridWidth - 1, GridHeight - 1)},
		{"1803 bits, high bit ignored", args{timesSeventeen(1802)}, Grid{}},
		{"1803 bits, low bit kept", args{new(big.Int).Add(timesSeventeen(1802), big.NewInt(17))}, singleBit(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.args.k); got != tt.want {
				t.Errorf("Decode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeString(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name    string
		args    args
		want    Grid
		wantErr bool
	}{
		{"zero", args{"0"}, Grid{}, false},
		{"seventeen", args{"17"}, singleBit(0, 0), false},
		{"whitespace is stripped", args{" 1\n7 "}, singleBit(0, 0), false},
		{"empty", args{""}, Grid{}, true},
		{"not a number", args{"abc"}, Grid{}, true},
		{"trailing garbage", args{"12a3"}, Grid{}, true},
		{"negative", args{"-1"}, Grid{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.args.s)
			if (err != nil) != tt.wantErr {
				t.Errorf("DecodeString() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("DecodeString() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("DecodeString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeSelfRef(t *testing.T) {
	g, err := DecodeString(SelfRefK)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}

	// the plot of the formula itself is neither empty nor solid
	filled := 0
	for i := 0; i < GridWidth; i++ {
		for j := 0; j < GridHeight; j++ {
			if g[i][j] == 1 {
				filled++
			}
		}
	}
	if filled == 0 || filled == BitmapBits {
		t.Errorf("self-referential plot is trivial: %v filled cells", filled)
	}

	// pure function: same k, same grid
	gg, err := DecodeString(SelfRefK)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	if g != gg {
		t.Error("DecodeString() is not deterministic")
	}
}

func TestEncode(t *testing.T) {
	if k := Encode(Grid{}); k.Sign() != 0 {
		t.Errorf("Encode(empty) = %v, want 0", k)
	}

	// Encode inverts Decode up to the dropped remainder mod 17
	ms := []*big.Int{
		big.NewInt(1),
		big.NewInt(12345),
		new(big.Int).Lsh(big.NewInt(1), 1000),
	}
	for _, m := range ms {
		k := new(big.Int).Mul(m, big.NewInt(17))
		if got := Encode(Decode(k)); got.Cmp(k) != 0 {
			t.Errorf("Encode(Decode(%v)) = %v, want %v", k, got, k)
		}
	}

	// for arbitrary k the remainder is floored away
	k, err := ParseK(SelfRefK)
	if err != nil {
		t.Fatalf("ParseK() error = %v", err)
	}
	m := new(big.Int).Div(k, big.NewInt(17))
	want := m.Mul(m, big.NewInt(17))
	if got := Encode(Decode(k)); got.Cmp(want) != 0 {
		t.Errorf("Encode(Decode(k)) = %v, want %v", got, want)
	}
}

func TestBitString(t *testing.T) {
	bs := BitString(big.NewInt(17))
	if len(bs) != BitmapBits {
		t.Fatalf("BitString() length = %v, want %v", len(bs), BitmapBits)
	}
	if bs[BitmapBits-1] != '1' {
		t.Error("BitString(17) must end with the single set bit")
	}
	if strings.Count(bs, "1") != 1 {
		t.Errorf("BitString(17) has %v set bits, want 1", strings.Count(bs, "1"))
	}

	if bs := BitString(big.NewInt(0)); strings.Count(bs, "1") != 0 {
		t.Error("BitString(0) must be all zeros")
	}
}

func TestParseK(t *testing.T) {
	k, err := ParseK("96093937991895888497167296212785275471500433966012930665150551927170280239526")
	if err != nil {
		t.Fatalf("ParseK() error = %v", err)
	}
	if k.Sign() <= 0 {
		t.Errorf("ParseK() = %v, want a positive integer", k)
	}

	if _, err := ParseK("0x10"); err == nil {
		t.Error("ParseK() accepted a hex literal")
	}
}
