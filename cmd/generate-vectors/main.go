// Command generate-vectors produces deterministic golden test vectors for
// the kernels. Expected results come from math/big, not from the kernels
// themselves, so the vectors stay valid as an independent reference for
// other implementations of the same fixed-capacity format.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
	"github.com/kirill-bayborodov/bignum/internal/harness"
)

// SubVector is one golden subtraction case. Limbs are hex encoded, least
// significant first. Result is present only for successful cases.
type SubVector struct {
	A      []string `json:"a"`
	B      []string `json:"b"`
	Status string   `json:"status"`
	Result []string `json:"result,omitempty"`
}

// ShiftVector is one golden shift case. Result is the expected post-call
// operand, identical to the input on overflow.
type ShiftVector struct {
	Num    []string `json:"num"`
	Amount uint     `json:"amount"`
	Status string   `json:"status"`
	Result []string `json:"result"`
}

// VectorFile is the golden vector file layout.
type VectorFile struct {
	Seed     uint64        `json:"seed"`
	Capacity int           `json:"capacity"`
	WordBits int           `json:"word_bits"`
	Subs     []SubVector   `json:"sub"`
	Shifts   []ShiftVector `json:"shift_left"`
}

func main() {
	out := flag.String("out", "testdata/vectors.json", "output file path")
	count := flag.Int("count", 64, "cases per kernel")
	seed := flag.Uint64("seed", 42, "dataset generation seed")
	flag.Parse()

	vf := buildVectors(*seed, *count)
	if err := writeVectors(*out, vf); err != nil {
		fmt.Fprintf(os.Stderr, "generate-vectors: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d sub and %d shift vectors to %s\n", len(vf.Subs), len(vf.Shifts), *out)
}

// buildVectors derives golden cases from a seeded dataset.
func buildVectors(seed uint64, count int) VectorFile {
	ds := harness.NewDataset(count, seed)
	vf := VectorFile{
		Seed:     seed,
		Capacity: bignum.Capacity,
		WordBits: bignum.WordBits,
		Subs:     make([]SubVector, 0, count),
		Shifts:   make([]ShiftVector, 0, count),
	}

	for i := range ds.Subs {
		c := &ds.Subs[i]
		v := SubVector{A: encodeWords(&c.A), B: encodeWords(&c.B)}
		av, bv := c.A.ToBig(), c.B.ToBig()
		if av.Cmp(bv) < 0 {
			v.Status = bignum.SubErrNegativeResult.String()
		} else {
			v.Status = bignum.SubOK.String()
			var diff bignum.FixedBigNum
			diff.SetBig(new(big.Int).Sub(av, bv))
			v.Result = encodeWords(&diff)
		}
		vf.Subs = append(vf.Subs, v)
	}

	for i := range ds.Shifts {
		c := &ds.Shifts[i]
		v := ShiftVector{Num: encodeWords(&c.Num), Amount: c.Amount}
		before := c.Num.ToBig()
		if before.Sign() != 0 && uint(before.BitLen()-1)+c.Amount >= bignum.CapacityBits {
			v.Status = bignum.ShiftErrOverflow.String()
			v.Result = v.Num
		} else {
			v.Status = bignum.ShiftOK.String()
			var shifted bignum.FixedBigNum
			shifted.SetBig(new(big.Int).Lsh(before, c.Amount))
			v.Result = encodeWords(&shifted)
		}
		vf.Shifts = append(vf.Shifts, v)
	}
	return vf
}

// encodeWords renders the significant limbs as hex strings, least
// significant first. Zero encodes as an empty slice, matching the
// canonical Length 0 representation.
func encodeWords(x *bignum.FixedBigNum) []string {
	out := make([]string, x.Length)
	for i := 0; i < x.Length; i++ {
		out[i] = fmt.Sprintf("0x%016x", x.Words[i])
	}
	return out
}

// writeVectors marshals the file with stable indentation.
func writeVectors(path string, vf VectorFile) error {
	data, err := json.MarshalIndent(vf, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
