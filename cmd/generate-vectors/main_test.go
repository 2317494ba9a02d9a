package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
)

func TestBuildVectors_Deterministic(t *testing.T) {
	v1 := buildVectors(42, 32)
	v2 := buildVectors(42, 32)
	if !reflect.DeepEqual(v1, v2) {
		t.Error("identical seeds must produce identical vectors")
	}

	v3 := buildVectors(7, 32)
	if reflect.DeepEqual(v1.Subs, v3.Subs) {
		t.Error("different seeds should produce different vectors")
	}
}

// decodeWords reverses encodeWords for verification.
func decodeWords(t *testing.T, words []string) bignum.FixedBigNum {
	t.Helper()
	limbs := make([]uint64, len(words))
	for i, w := range words {
		v, err := strconv.ParseUint(strings.TrimPrefix(w, "0x"), 16, 64)
		if err != nil {
			t.Fatalf("bad limb %q: %v", w, err)
		}
		limbs[i] = v
	}
	return bignum.FromWords(limbs...)
}

// TestBuildVectors_KernelsAgree replays every golden vector through the
// kernels. The vectors were derived from math/big, so agreement here is a
// real cross-check, not a tautology.
func TestBuildVectors_KernelsAgree(t *testing.T) {
	vf := buildVectors(42, 64)
	if vf.Capacity != bignum.Capacity || vf.WordBits != bignum.WordBits {
		t.Fatalf("header = %d/%d limb bits, want %d/%d", vf.Capacity, vf.WordBits, bignum.Capacity, bignum.WordBits)
	}

	for i, v := range vf.Subs {
		a := decodeWords(t, v.A)
		b := decodeWords(t, v.B)
		var got bignum.FixedBigNum
		status := bignum.Sub(&got, &a, &b)
		if status.String() != v.Status {
			t.Fatalf("sub vector %d: status %q, want %q", i, status, v.Status)
		}
		if status == bignum.SubOK {
			want := decodeWords(t, v.Result)
			if !got.Equal(&want) {
				t.Fatalf("sub vector %d: result disagrees with the golden value", i)
			}
		}
	}

	for i, v := range vf.Shifts {
		num := decodeWords(t, v.Num)
		status := bignum.ShiftLeft(&num, v.Amount)
		if status.String() != v.Status {
			t.Fatalf("shift vector %d: status %q, want %q", i, status, v.Status)
		}
		want := decodeWords(t, v.Result)
		if !num.Equal(&want) {
			t.Fatalf("shift vector %d: result disagrees with the golden value", i)
		}
	}
}

func TestWriteVectors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "vectors.json")
	vf := buildVectors(1, 8)
	if err := writeVectors(path, vf); err != nil {
		t.Fatalf("writeVectors() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	var decoded VectorFile
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Subs) != 8 || len(decoded.Shifts) != 8 {
		t.Errorf("decoded %d/%d vectors, want 8/8", len(decoded.Subs), len(decoded.Shifts))
	}
}
