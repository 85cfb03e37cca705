package sx1276

import (
	"testing"
	"time"
)

func TestDutyAccountQuotaRefusal(t *testing.T) {
	clk := newFakeClock()
	d := newDutyAccount(36_000, clk)
	for i := 0; i < 9; i++ {
		if err := d.Check(3_700); err != nil {
			t.Fatalf("charge %d: unexpected refusal: %v", i, err)
		}
		d.Charge(3_700)
	}
	if total := d.total(); total != 33_300 {
		t.Fatalf("total after 9 charges = %d, want 33300", total)
	}
	if err := d.Check(3_700); err != ErrQuotaExceeded {
		t.Fatalf("10th charge error = %v, want ErrQuotaExceeded", err)
	}
	if total := d.total(); total != 33_300 {
		t.Errorf("check-before-charge must not mutate state; total = %d", total)
	}
}

func TestDutyAccountWindowRotation(t *testing.T) {
	clk := newFakeClock()
	d := newDutyAccount(1_800_000, clk)
	d.Charge(1_000)
	if d.total() != 1_000 {
		t.Fatalf("total = %d, want 1000", d.total())
	}
	// Advance past all ten slots; the charge should age out entirely.
	clk.advance(time.Duration(11*dutySlotMs) * time.Millisecond)
	d.Charge(0)
	if d.total() != 0 {
		t.Errorf("total after full rotation = %d, want 0", d.total())
	}
}
