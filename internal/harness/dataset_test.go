package harness

import (
	"testing"

	"github.com/kirill-bayborodov/bignum/internal/bignum"
)

func TestNewDataset_Size(t *testing.T) {
	d := NewDataset(64, 1)
	if len(d.Subs) != 64 || len(d.Shifts) != 64 {
		t.Fatalf("dataset sizes = %d/%d, want 64/64", len(d.Subs), len(d.Shifts))
	}
}

func TestNewDataset_Deterministic(t *testing.T) {
	d1 := NewDataset(128, 42)
	d2 := NewDataset(128, 42)
	for i := range d1.Subs {
		if !d1.Subs[i].A.Equal(&d2.Subs[i].A) || !d1.Subs[i].B.Equal(&d2.Subs[i].B) {
			t.Fatalf("sub case %d differs across identically seeded datasets", i)
		}
	}
	for i := range d1.Shifts {
		if !d1.Shifts[i].Num.Equal(&d2.Shifts[i].Num) || d1.Shifts[i].Amount != d2.Shifts[i].Amount {
			t.Fatalf("shift case %d differs across identically seeded datasets", i)
		}
	}
}

func TestNewDataset_SeedChangesCases(t *testing.T) {
	d1 := NewDataset(128, 1)
	d2 := NewDataset(128, 2)
	same := true
	for i := range d1.Subs {
		if !d1.Subs[i].A.Equal(&d2.Subs[i].A) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sub operands")
	}
}

func TestNewDataset_Normalized(t *testing.T) {
	d := NewDataset(256, 7)
	check := func(x *bignum.FixedBigNum, what string, i int) {
		t.Helper()
		if x.Length < 0 || x.Length > bignum.Capacity {
			t.Fatalf("%s case %d: Length %d out of range", what, i, x.Length)
		}
		if x.Length > 0 && x.Words[x.Length-1] == 0 {
			t.Errorf("%s case %d: top limb zero, not normalized", what, i)
		}
		for j := x.Length; j < bignum.Capacity; j++ {
			if x.Words[j] != 0 {
				t.Errorf("%s case %d: stale limb at %d", what, i, j)
			}
		}
	}
	for i := range d.Subs {
		check(&d.Subs[i].A, "sub A", i)
		check(&d.Subs[i].B, "sub B", i)
	}
	for i := range d.Shifts {
		check(&d.Shifts[i].Num, "shift", i)
	}
}

// TestNewDataset_CaseMix verifies the generation biases actually produce a
// mix of outcomes: dominant success, some negative results, some overflows.
func TestNewDataset_CaseMix(t *testing.T) {
	d := NewDataset(1024, 42)

	var negative int
	for i := range d.Subs {
		if d.Subs[i].A.Cmp(&d.Subs[i].B) < 0 {
			negative++
		}
	}
	if negative == 0 {
		t.Error("no negative-result sub cases generated")
	}
	if negative > len(d.Subs)/2 {
		t.Errorf("negative-result cases dominate: %d of %d", negative, len(d.Subs))
	}

	var overflow int
	for i := range d.Shifts {
		c := &d.Shifts[i]
		if msb := c.Num.BitLen(); msb > 0 && uint(msb-1)+c.Amount >= bignum.CapacityBits {
			overflow++
		}
	}
	if overflow == 0 {
		t.Error("no overflowing shift cases generated")
	}
	if overflow > len(d.Shifts)/2 {
		t.Errorf("overflow cases dominate: %d of %d", overflow, len(d.Shifts))
	}
}
