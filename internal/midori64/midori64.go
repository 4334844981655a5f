// Package midori64 implements the Midori-64 lightweight block cipher: a 64-bit block, 128-bit
// key substitution-permutation network designed for compact hardware and software implementations.
//
// The state is a 4x4 matrix of 4-bit nibbles packed into a uint64, most significant nibble first.
// Encryption runs 15 full rounds of SubCell, ShuffleCell, and MixColumn under a round key, followed
// by a final SubCell and a whitening XOR.
package midori64

// Rounds is the number of full SubCell/ShuffleCell/MixColumn/KeyAdd rounds Encrypt runs before the
// final SubCell and whitening step.
const Rounds = 15

// sbox is the Midori Sb0 S-box, packed as sixteen 4-bit lookup entries: the nibble at index i is
// the substitution for input value i.
const sbox uint64 = 0xCAD3EBF789150246

// shuffleFwd is the forward ShuffleCell permutation: the nibble at output position i names the
// source position to copy from.
const shuffleFwd uint64 = 0x0A5FE4B193C67D28

// shuffleInv is the inverse of shuffleFwd.
const shuffleInv uint64 = 0x07E952BCF816AD43

// roundConstants supplies one 16-bit constant per round of the key schedule; bit (15-j) of
// roundConstants[i] is XORed into the low bit of round key nibble j.
var roundConstants = [16]uint16{ //nolint:gochecknoglobals // round constants
	0x15B3, 0x78C0, 0xA435, 0x6213, 0x104F, 0xD170, 0x0266, 0x0BCC,
	0x9481, 0x40B8, 0x7197, 0x228E, 0x5130, 0xF8CA, 0xDF90, 0x7C81,
}

// nibble reads the 4-bit lane at position p (0..15, most significant first) from a 64-bit word.
func nibble(w uint64, p int) uint64 {
	shift := uint((15 - p) * 4)
	return (w >> shift) & 0xF
}

// withNibble returns w with the nibble at position p replaced by v; all other nibbles are
// unchanged.
func withNibble(w uint64, p int, v uint64) uint64 {
	shift := uint((15 - p) * 4)
	mask := uint64(0xF) << shift
	return (w &^ mask) | ((v & 0xF) << shift)
}

// lookup reads the nibble at index i (0..15) out of a packed 64-bit table such as sbox,
// shuffleFwd, or shuffleInv.
func lookup(table uint64, i uint64) uint64 {
	return nibble(table, int(i))
}

// subCell applies the Sb0 S-box to every nibble of the state.
func subCell(s uint64) uint64 {
	var out uint64
	for p := range 16 {
		out = withNibble(out, p, lookup(sbox, nibble(s, p)))
	}
	return out
}

// shuffleCell permutes the sixteen nibbles of the state according to table, which is either
// shuffleFwd or shuffleInv: the output nibble at position i is the input nibble at table[i].
func shuffleCell(s uint64, table uint64) uint64 {
	var out uint64
	for p := range 16 {
		src := lookup(table, uint64(p))
		out = withNibble(out, p, nibble(s, int(src)))
	}
	return out
}

// mixColumn applies Midori's (0,1,1,1) binary MDS-like diffusion matrix to each of the four
// 4-nibble columns of the state: every nibble is replaced by the XOR of the other three in its
// column. Applying mixColumn twice is the identity.
func mixColumn(s uint64) uint64 {
	var out uint64
	for col := 0; col < 16; col += 4 {
		var parity uint64
		for j := range 4 {
			parity ^= nibble(s, col+j)
		}
		for j := range 4 {
			out = withNibble(out, col+j, parity^nibble(s, col+j))
		}
	}
	return out
}

// keyAdd XORs the 64-bit round key into the state.
func keyAdd(s, k uint64) uint64 {
	return s ^ k
}

// RoundKeys holds the expanded key schedule for one Midori-64 key: a whitening key and fifteen
// additive round keys, each live only for the duration of the Encrypt call that produced them.
type RoundKeys struct {
	White uint64
	Round [Rounds]uint64
}

// Expand derives the whitening key and round keys from a 128-bit master key split into two
// 64-bit halves, k0 and k1.
func Expand(k0, k1 uint64) RoundKeys {
	rk := RoundKeys{White: k0 ^ k1}

	for i := range Rounds {
		src := k0
		if i%2 != 0 {
			src = k1
		}
		var rkI uint64
		for j := range 16 {
			bit := uint64(roundConstants[i]>>(15-j)) & 1
			rkI = withNibble(rkI, j, nibble(src, j)^bit)
		}
		rk.Round[i] = rkI
	}

	return rk
}

// Encrypt runs the Midori-64 cipher forward on block s under the 128-bit key (k0, k1): initial
// whitening, Rounds full rounds of SubCell/ShuffleCell/MixColumn/KeyAdd, then a final SubCell
// and whitening.
func Encrypt(s, k0, k1 uint64) uint64 {
	rk := Expand(k0, k1)

	s = keyAdd(s, rk.White)
	for i := range Rounds {
		s = subCell(s)
		s = shuffleCell(s, shuffleFwd)
		s = mixColumn(s)
		s = keyAdd(s, rk.Round[i])
	}
	s = subCell(s)

	return keyAdd(s, rk.White)
}
