package main

import (
	"strings"
	"testing"
)

func TestRunRoundTrip(t *testing.T) {
	in := strings.NewReader("0123456789ABCDEFFEDCBA9876543210 0123456789ABCDEF AAAABBBBCCCCDDDD\n")
	var out strings.Builder

	if err := run(in, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("run() produced %d lines, want 5:\n%s", len(lines), out.String())
	}

	labels := []string{"K:", "N:", "C:", "T:", "T_:"}
	for i, label := range labels {
		if !strings.HasPrefix(lines[i], label) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], label)
		}
	}

	// T: and T_: must agree, since nothing corrupted the ciphertext in between.
	tagLine := strings.TrimSpace(strings.TrimPrefix(lines[3], "T:"))
	computedTagLine := strings.TrimSpace(strings.TrimPrefix(lines[4], "T_:"))
	if tagLine != computedTagLine {
		t.Errorf("T: %q != T_: %q", tagLine, computedTagLine)
	}
}

func TestRunRejectsShortKey(t *testing.T) {
	in := strings.NewReader("DEADBEEF 0123456789ABCDEF AAAABBBBCCCCDDDD\n")
	var out strings.Builder

	if err := run(in, &out); err == nil {
		t.Fatalf("run() with a short key succeeded, want an error")
	}
}

func TestRunRejectsMissingInput(t *testing.T) {
	in := strings.NewReader("0123456789ABCDEFFEDCBA9876543210\n")
	var out strings.Builder

	if err := run(in, &out); err == nil {
		t.Fatalf("run() with missing nonce/plaintext succeeded, want an error")
	}
}
