package facts

import (
	"math"
	"math/rand"
	"testing"
)

func TestKeyCanonicalizesOperandOrder(t *testing.T) {
	if Key(3, 7) != Key(7, 3) {
		t.Errorf("Key(3,7) = %q, Key(7,3) = %q, want equal", Key(3, 7), Key(7, 3))
	}
	if Key(3, 7) != "3x7" {
		t.Errorf("Key(3,7) = %q, want 3x7", Key(3, 7))
	}
}

func TestLedgerRecord(t *testing.T) {
	l := NewLedger()
	l.Record(7, 3, true)
	l.Record(3, 7, false)

	s := l.Get("3x7")
	if s.TimesSeen != 2 || s.TimesCorrect != 1 {
		t.Errorf("stat = %+v, want seen 2 correct 1", s)
	}
}

func TestFamilyTiersCoverCurriculum(t *testing.T) {
	if got := FocusFamilies(1); len(got) != 3 || got[2] != 2 {
		t.Errorf("FocusFamilies(1) = %v, want [0 1 2]", got)
	}
	if got := FocusFamilies(5); len(got) != 3 || got[2] != 12 {
		t.Errorf("FocusFamilies(5) = %v, want [10 11 12]", got)
	}
	if got := ReviewFamilies(1); len(got) != 0 {
		t.Errorf("ReviewFamilies(1) = %v, want empty", got)
	}
	if got := ReviewFamilies(3); len(got) != 6 {
		t.Errorf("ReviewFamilies(3) = %v, want families 0-5", got)
	}
}

func TestPick_NeverExceedsUnlockedFamilies(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := NewPicker(rng)
	ledger := NewLedger()

	ceilings := map[int]int{1: 2, 2: 5, 3: 7, 4: 9, 5: 12}
	for difficulty, ceiling := range ceilings {
		for i := 0; i < 2000; i++ {
			a, b := p.Pick(difficulty, ledger)
			if FamilyOf(a, b) > ceiling {
				t.Fatalf("difficulty %d picked %dx%d, family above ceiling %d", difficulty, a, b, ceiling)
			}
		}
	}
}

func TestPick_FocusReviewSplit(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := NewPicker(rng)

	// Mark every fact seen so the unseen weighting does not skew the
	// focus/review frequencies.
	ledger := NewLedger()
	for f := 0; f <= 12; f++ {
		for b := 0; b <= f; b++ {
			ledger.Record(b, f, true)
		}
	}

	const n = 20000
	focus := 0
	for i := 0; i < n; i++ {
		a, b := p.Pick(3, ledger)
		fam := FamilyOf(a, b)
		if fam == 6 || fam == 7 {
			focus++
		} else if fam > 7 {
			t.Fatalf("picked family %d above difficulty 3 ceiling", fam)
		}
	}

	ratio := float64(focus) / n
	if math.Abs(ratio-0.70) > 0.02 {
		t.Errorf("focus ratio = %.3f, want ~0.70", ratio)
	}
}

func TestPick_PrefersUnseenFacts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPicker(rng)

	// At difficulty 1 everything is focus. Mark all facts seen except
	// 2x2 and confirm it is drawn far more often than uniform.
	ledger := NewLedger()
	for _, f := range poolFacts(FocusFamilies(1)) {
		if f != ([2]int{2, 2}) {
			ledger.Record(f[0], f[1], true)
		}
	}

	const n = 5000
	hits := 0
	for i := 0; i < n; i++ {
		a, b := p.Pick(1, ledger)
		if a == 2 && b == 2 {
			hits++
		}
	}

	// Pool has 6 facts; uniform would give ~1/6. With weight 8 the
	// unseen fact should take 8/13 of picks.
	ratio := float64(hits) / n
	if ratio < 0.5 {
		t.Errorf("unseen fact ratio = %.3f, want > 0.5", ratio)
	}
}

func TestPick_AllSeenFallsBackToUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	p := NewPicker(rng)

	ledger := NewLedger()
	pool := poolFacts(FocusFamilies(1))
	for _, f := range pool {
		ledger.Record(f[0], f[1], true)
	}

	const n = 12000
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		a, b := p.Pick(1, ledger)
		counts[Key(a, b)]++
	}

	expected := float64(n) / float64(len(pool))
	for k, c := range counts {
		if math.Abs(float64(c)-expected) > expected*0.25 {
			t.Errorf("fact %s drawn %d times, want ~%.0f", k, c, expected)
		}
	}
}

func TestPick_NilLedgerTreatsAllAsUnseen(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	p := NewPicker(rng)
	for i := 0; i < 100; i++ {
		a, b := p.Pick(2, nil)
		if FamilyOf(a, b) > 5 {
			t.Fatalf("picked %dx%d above difficulty 2 ceiling", a, b)
		}
	}
}
