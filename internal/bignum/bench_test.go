package bignum

import "testing"

func benchOperand(fill uint64, limbs int) FixedBigNum {
	var x FixedBigNum
	for i := 0; i < limbs; i++ {
		x.Words[i] = fill
	}
	x.Length = limbs
	return x
}

func BenchmarkSub_FullCapacity(b *testing.B) {
	a := benchOperand(^uint64(0), Capacity)
	sub := benchOperand(0x0123456789ABCDEF, Capacity)
	var result FixedBigNum

	b.ReportAllocs()
	for b.Loop() {
		if st := Sub(&result, &a, &sub); st != SubOK {
			b.Fatalf("Sub = %v", st)
		}
	}
}

func BenchmarkSub_SingleLimb(b *testing.B) {
	a := FromWords(10)
	sub := FromWords(5)
	var result FixedBigNum

	b.ReportAllocs()
	for b.Loop() {
		if st := Sub(&result, &a, &sub); st != SubOK {
			b.Fatalf("Sub = %v", st)
		}
	}
}

func BenchmarkShiftLeft_Mixed(b *testing.B) {
	template := benchOperand(0x9E3779B97F4A7C15, Capacity/2)

	b.ReportAllocs()
	for b.Loop() {
		n := template
		if st := ShiftLeft(&n, 67); st != ShiftOK {
			b.Fatalf("ShiftLeft = %v", st)
		}
	}
}

func BenchmarkShiftLeft_WordsOnly(b *testing.B) {
	template := benchOperand(0x9E3779B97F4A7C15, Capacity/2)

	b.ReportAllocs()
	for b.Loop() {
		n := template
		if st := ShiftLeft(&n, 256); st != ShiftOK {
			b.Fatalf("ShiftLeft = %v", st)
		}
	}
}
