package buffer

import "testing"

func TestNewZeroFilled(t *testing.T) {
	b := New(8)
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewNegativeLength(t *testing.T) {
	b := New(-1)
	if b.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 for negative input", b.Len())
	}
}

func TestResizeReusesCapacity(t *testing.T) {
	b := New(8)
	b.Resize(2)
	if b.Len() != 2 || b.Cap() != 8 {
		t.Fatalf("Len/Cap = %d/%d, want 2/8", b.Len(), b.Cap())
	}

	b.Resize(6)
	if b.Cap() != 8 {
		t.Fatalf("Cap() = %d, want 8 after growing within capacity", b.Cap())
	}

	b.Resize(16)
	if b.Len() != 16 || b.Cap() < 16 {
		t.Fatalf("Len/Cap = %d/%d, want 16/>=16", b.Len(), b.Cap())
	}
}

func TestFillAndCopyFrom(t *testing.T) {
	b := New(3)
	b.Fill(2.5)
	for i, v := range b.Samples() {
		if v != 2.5 {
			t.Fatalf("Samples()[%d] = %v, want 2.5", i, v)
		}
	}

	src := []float64{1, 2, 3, 4, 5}
	b.CopyFrom(src)
	if b.Len() != len(src) {
		t.Fatalf("Len() = %d, want %d", b.Len(), len(src))
	}
	src[0] = 99
	if b.Samples()[0] != 1 {
		t.Fatal("CopyFrom must not share memory with src")
	}
}
