// Command cofbtool is a CLI wrapper around the cofb package: it reads a hex-encoded 128-bit
// key, a hex-encoded 64-bit nonce, and a hex-encoded 64-bit plaintext block from its input,
// seals the block, then opens the resulting ciphertext to demonstrate and self-check the
// round trip.
//
// Input is whitespace-separated hex tokens: a 32-hex-digit key (K0 followed immediately by K1),
// a 16-hex-digit nonce, and a 16-hex-digit plaintext block. Output is five labeled lines:
//
//	K:      the key, echoed back
//	N:      the nonce, echoed back
//	C:      the ciphertext block
//	T:      the tag produced by sealing
//	T_:     the tag recomputed by opening the ciphertext
//
// Exit code is 0 on success, non-zero on any I/O or parse failure.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/codahale/midoricofb/cofb"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Error("cofbtool failed", "err", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	next := func(name string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("reading %s: %w", name, err)
			}
			return "", fmt.Errorf("reading %s: unexpected end of input", name)
		}
		return scanner.Text(), nil
	}

	keyTok, err := next("key")
	if err != nil {
		return err
	}
	if len(keyTok) != 32 {
		return fmt.Errorf("key token %q: want 32 hex digits (128 bits), got %d", keyTok, len(keyTok))
	}
	k0, err := parseBlock(keyTok[:16])
	if err != nil {
		return fmt.Errorf("parsing K0: %w", err)
	}
	k1, err := parseBlock(keyTok[16:])
	if err != nil {
		return fmt.Errorf("parsing K1: %w", err)
	}

	nonceTok, err := next("nonce")
	if err != nil {
		return err
	}
	nonce, err := parseBlock(nonceTok)
	if err != nil {
		return fmt.Errorf("parsing nonce: %w", err)
	}

	blockTok, err := next("plaintext block")
	if err != nil {
		return err
	}
	plaintext, err := parseBlock(blockTok)
	if err != nil {
		return fmt.Errorf("parsing plaintext block: %w", err)
	}

	ciphertext, tag := cofb.Seal(k0, k1, nonce, plaintext)
	_, computedTag := cofb.Open(k0, k1, nonce, ciphertext)

	fmt.Fprintf(out, "K: \t%016x%016x\n", k0, k1)
	fmt.Fprintf(out, "N: \t%016x\n", nonce)
	fmt.Fprintf(out, "C: \t%016x\n", ciphertext)
	fmt.Fprintf(out, "T: \t%016x\n", tag)
	fmt.Fprintf(out, "T_: \t%016x\n", computedTag)

	return nil
}

// parseBlock parses an unprefixed hex string as a 64-bit block. Any number of digits is
// accepted as long as the value fits in 64 bits, so leading zeros may make it longer than 16.
func parseBlock(tok string) (uint64, error) {
	v, err := strconv.ParseUint(tok, 16, 64)
	if err != nil {
		return 0, err
	}
	return v, nil
}
