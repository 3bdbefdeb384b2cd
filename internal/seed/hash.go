package seed

// Hash folds text into a 32-bit signed integer: hash = hash*31 + codepoint,
// wrapping on overflow. The empty string hashes to 0.
func Hash(text string) int32 {
	var h int32
	for _, r := range text {
		h = h*31 + int32(r)
	}
	return h
}

// PrefixHashes returns Hash(prefix) for every rune-indexed prefix of text,
// so PrefixHashes(s)[i] == Hash(string([]rune(s)[:i+1])).
func PrefixHashes(text string) []int32 {
	out := make([]int32, 0, len(text))
	var h int32
	for _, r := range text {
		h = h*31 + int32(r)
		out = append(out, h)
	}
	return out
}
