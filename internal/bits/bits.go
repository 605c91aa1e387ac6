package bits

// FromBytes expands b into one bool per bit, most significant bit first.
func FromBytes(b []byte) []bool {
	out := make([]bool, 0, len(b)*8)
	for _, v := range b {
		for i := 7; i >= 0; i-- {
			out = append(out, (v>>uint(i))&1 == 1)
		}
	}
	return out
}

// ToBytes packs bits into bytes, most significant bit first.
// Trailing bits short of a full byte are dropped.
func ToBytes(bits []bool) []byte {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var v byte
		for j := range 8 {
			v <<= 1
			if bits[i+j] {
				v |= 1
			}
		}
		out = append(out, v)
	}
	return out
}
