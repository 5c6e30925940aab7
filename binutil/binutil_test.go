package binutil

import (
	"math/big"
	"path/filepath"
	"reflect"
	"testing"
)

func TestGenerateNLengthRandomBinRuneSlice(t *testing.T) {
	type args struct {
		n   int
		max uint
	}
	tests := []struct {
		name  string
		args  args
		want  []rune
		want1 uint
	}{
		{"n = 0", args{0, 0}, []rune(""), 0},
		{"n = 2", args{2, 0}, []rune("11"), 3},
		{"n = 64, max = 16", args{64, 16}, []rune("0000000000000000000000000000000000000000000000000000000000010000"), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, got1 := GenerateNLengthRandomBinRuneSlice(tt.args.n, tt.args.max)
			if len(got) != len(tt.want) {
				t.Errorf("GenerateNLengthRandomBinRuneSlice() = %v, want %v length", got, len(tt.want))
			}
			if got1 > tt.want1 {
				t.Errorf("GenerateNLengthRandomBinRuneSlice() got1 = %v, want less than %v", got1, tt.want1)
			}
		})
	}
}

func TestGenerateNLengthZeroPaddingRuneSlice(t *testing.T) {
	type args struct {
		n int
	}
	tests := []struct {
		name string
		args args
		want []rune
	}{
		{"n = 0", args{0}, []rune("")},
		{"n = 2", args{2}, []rune("00")},
		{"n = 32", args{32}, []rune("00000000000000000000000000000000")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateNLengthZeroPaddingRuneSlice(tt.args.n); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GenerateNLengthZeroPaddingRuneSlice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBigIntToBinString(t *testing.T) {
	type args struct {
		cp *big.Int
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"0", args{big.NewInt(0)}, "0"},
		{"1", args{big.NewInt(1)}, "1"},
		{"10", args{big.NewInt(10)}, "1010"},
		{"1024", args{big.NewInt(1024)}, "10000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseBigIntToBinString(tt.args.cp); got != tt.want {
				t.Errorf("ParseBigIntToBinString() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBinRuneSliceToBigInt(t *testing.T) {
	type args struct {
		bs []rune
	}
	tests := []struct {
		name    string
		args    args
		want    *big.Int
		wantErr bool
	}{
		{"1010", args{[]rune("1010")}, big.NewInt(10), false},
		{"0001", args{[]rune("0001")}, big.NewInt(1), false},
		{"all zero", args{[]rune("00000000")}, big.NewInt(0), false},
		{"empty", args{[]rune("")}, nil, true},
		{"non-binary", args{[]rune("01a1")}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBinRuneSliceToBigInt(tt.args.bs)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseBinRuneSliceToBigInt() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got.Cmp(tt.want) != 0 {
				t.Errorf("ParseBinRuneSliceToBigInt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "binutil_test.gob")
	in := []string{"0", "9609393799"}
	if err := Save(path, &in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	var out []string
	if err := Load(path, &out); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("Load() = %v, want %v", out, in)
	}
}

func TestLoadMissingFile(t *testing.T) {
	var out []string
	if err := Load(filepath.Join(t.TempDir(), "no_such.gob"), &out); err == nil {
		t.Error("Load() expected an error for a missing file")
	}
}
