// Package gf32 provides the GF(2^32) arithmetic kernel COFB uses to derive per-block masks from
// a nonce-dependent base element.
//
// The field is reduced modulo the primitive polynomial 0x1_0000_001B; only the low byte of that
// polynomial, 0x1B, ever appears in a reduction because every operand already fits in 32 bits.
package gf32

// polyLow is the low-order byte of the field's reduction polynomial 0x1_0000_001B, XORed into a
// doubled element whenever the shift carries a bit out of the top of the word.
const polyLow uint32 = 0x1B

// Add returns a XOR b, field addition in GF(2^32).
func Add(a, b uint32) uint32 {
	return a ^ b
}

// Double returns a multiplied by x (the polynomial "2") modulo the field polynomial: a left
// shift, reduced by XORing in polyLow whenever the shift would carry a bit out of bit 31.
func Double(a uint32) uint32 {
	if a&0x8000_0000 != 0 {
		return (a << 1) ^ polyLow
	}
	return a << 1
}

// Triple returns a multiplied by x+1 modulo the field polynomial.
func Triple(a uint32) uint32 {
	return Add(a, Double(a))
}

// State holds the running powers of the base mask element that COFB advances one step at a time
// as it processes successive blocks of a single message. It must be reset with a fresh base
// element at the start of every message and never reused across messages.
type State struct {
	mx2, mx2x3, mx2x3x3 uint32
}

// Reset seeds the state with the base mask element for a new message.
func (s *State) Reset(base uint32) {
	*s = State{mx2: base}
}

// Next advances the state for the step-th block of the message (step is one-based, 1..4) and
// returns the mask element for that step:
//
//	1: double the running element and yield it
//	2: triple the running element (without doubling it) and yield that
//	3: double the running element, then triple the new value and yield that
//	4: triple the running element twice and yield that
//
// step values outside 1..4 leave the state unchanged and return 0.
func (s *State) Next(step int) uint32 {
	switch step {
	case 1:
		s.mx2 = Double(s.mx2)
		return s.mx2
	case 2:
		s.mx2x3 = Triple(s.mx2)
		return s.mx2x3
	case 3:
		s.mx2 = Double(s.mx2)
		s.mx2x3 = Triple(s.mx2)
		return s.mx2x3
	case 4:
		s.mx2x3x3 = Triple(Triple(s.mx2))
		return s.mx2x3x3
	default:
		return 0
	}
}
