package boot

import "testing"

func TestIterationSeed_Deterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if iterationSeed(123, i) != iterationSeed(123, i) {
			t.Fatalf("iterationSeed(123, %d) is not deterministic", i)
		}
	}
}

func TestIterationSeed_Distinct(t *testing.T) {
	seen := make(map[uint64]int)
	for i := 0; i < 10000; i++ {
		s := iterationSeed(123, i)
		if prev, dup := seen[s]; dup {
			t.Fatalf("iterationSeed collision: iterations %d and %d both map to %d", prev, i, s)
		}
		seen[s] = i
	}
}

func TestIterationSeed_MasterSensitivity(t *testing.T) {
	if iterationSeed(1, 0) == iterationSeed(2, 0) {
		t.Error("different master seeds produced the same iteration seed")
	}
}

func TestIterationSeed_ZeroMaster(t *testing.T) {
	// A zero master seed must still produce distinct per-iteration seeds.
	if iterationSeed(0, 0) == iterationSeed(0, 1) {
		t.Error("iterationSeed(0, 0) == iterationSeed(0, 1)")
	}
}
