package boot

// SplitMix64 constants (Steele, Lea & Flood 2014).
const (
	splitmixGamma = 0x9E3779B97F4A7C15
	splitmixMulA  = 0xBF58476D1CE4E5B9
	splitmixMulB  = 0x94D049BB133111EB
)

// iterationSeed derives the seed for one bootstrap iteration from the master
// seed and the iteration index. The mapping is pure and depends on neither
// worker count nor completion order, so sequential and parallel runs consume
// identical random streams.
func iterationSeed(master uint64, i int) uint64 {
	z := master + splitmixGamma*(uint64(i)+1)
	z ^= z >> 30
	z *= splitmixMulA
	z ^= z >> 27
	z *= splitmixMulB
	z ^= z >> 31
	return z
}
