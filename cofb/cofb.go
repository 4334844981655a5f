// Package cofb implements the COFB (COmbined FeedBack) authenticated-encryption mode over the
// Midori-64 block cipher: a 128-bit key and 64-bit nonce protect a single 64-bit plaintext block,
// producing a ciphertext block plus a 64-bit authentication tag.
//
// COFB chains Midori-64 calls through a running Galois-field mask (see the internal/gf32
// package) and a fixed linear feedback function, mulGY, so that the tag depends on every bit of
// the nonce, key, and message. A message is processed in three internal steps: the first two
// derive the chaining state from the nonce with no output (standing in for the mode's empty
// associated-data domain, which this driver never exercises with real data), and the third feeds
// in the caller's block and emits ciphertext. The implementation matches the reference driver,
// which only ever defines this schedule for a single payload block.
package cofb

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/codahale/midoricofb/internal/gf32"
	"github.com/codahale/midoricofb/internal/midori64"
)

// payloadStep is the one-based counter value at which the driver feeds in the caller's block
// and, for Seal, emits ciphertext.
const payloadStep = 3

// finalStep is the counter value the driver stops at; the chaining state produced by the step
// just before it (payloadStep) is the authentication tag.
const finalStep = 4

// Seal encrypts a single 64-bit plaintext block under the 128-bit key (k0, k1) and 64-bit
// nonce, returning the ciphertext block and a 64-bit authentication tag.
//
// The same (key, nonce) pair must never be reused for two different plaintext blocks: COFB's
// security, like all nonce-based AEAD modes, depends on nonce uniqueness.
func Seal(k0, k1, nonce, plaintext uint64) (ciphertext, tag uint64) {
	y := midori64.Encrypt(nonce, k0, k1)

	var fs gf32.State
	fs.Reset(maskGen(y))

	for step := 1; step < finalStep; step++ {
		msk := uint64(fs.Next(step))
		gy := mulGY(y)

		block := uint64(0)
		if step >= payloadStep {
			block = plaintext
		}
		bgy := block ^ gy

		if step >= payloadStep {
			ciphertext = y ^ block
		}

		x := (msk << 32) ^ bgy
		y = midori64.Encrypt(x, k0, k1)
	}

	return ciphertext, y
}

// Open decrypts a single 64-bit ciphertext block under the 128-bit key (k0, k1) and 64-bit
// nonce, returning the recovered plaintext block and the tag computed over it.
//
// Open always runs to completion and always returns the plaintext and computed tag it derived,
// even if the caller's expected tag (checked separately with Verify) would not match: per the
// design, short-circuiting on a tag mismatch would leak timing information about where the
// mismatch occurred, so that decision is left entirely to the caller.
func Open(k0, k1, nonce, ciphertext uint64) (plaintext, computedTag uint64) {
	y := midori64.Encrypt(nonce, k0, k1)

	var fs gf32.State
	fs.Reset(maskGen(y))

	for step := 1; step < finalStep; step++ {
		msk := uint64(fs.Next(step))
		gy := mulGY(y)

		block := uint64(0)
		if step >= payloadStep {
			block = ciphertext
		}
		bgy := block ^ gy

		if step >= payloadStep {
			plaintext = y ^ block
			bgy = y ^ bgy
		}

		x := (msk << 32) ^ bgy
		y = midori64.Encrypt(x, k0, k1)
	}

	return plaintext, y
}

// Verify reports whether a computed tag (as returned by Open) matches an expected tag, using a
// constant-time comparison so that the comparison itself does not leak which byte first
// differed. Callers that need to reject ciphertexts with mismatched tags should call this
// explicitly after Open; Open itself never rejects anything.
func Verify(computed, expected uint64) bool {
	var a, b [8]byte
	binary.BigEndian.PutUint64(a[:], computed)
	binary.BigEndian.PutUint64(b[:], expected)
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
