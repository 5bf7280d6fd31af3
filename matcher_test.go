package main

import "testing"

func TestDedupeValues(t *testing.T) {
	values := []string{"John Smith", "Jon Smith", "Alice Brown"}
	pairs := dedupeValues(values, 0.7, 0)

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	if pairs[0].Left != "John Smith" || pairs[0].Right != "Jon Smith" {
		t.Errorf("got pair %v, want John Smith / Jon Smith", pairs[0])
	}
	if pairs[0].Score < 0.7 || pairs[0].Score > 1.0 {
		t.Errorf("score = %v, out of range", pairs[0].Score)
	}
}

func TestDedupeValuesRepeatedValues(t *testing.T) {
	// The same value pair is only reported once.
	pairs := dedupeValues([]string{"Ann Lee", "Ann Lee", "Ann Lee"}, 0.9, 0)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	if pairs[0].Score != 1.0 {
		t.Errorf("score = %v, want 1", pairs[0].Score)
	}
}

func TestDedupeValuesThreshold(t *testing.T) {
	pairs := dedupeValues([]string{"Alice Brown", "Bob Carter"}, 0.9, 0)
	if len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0: %v", len(pairs), pairs)
	}
}

func TestDedupeValuesSkipsEmpty(t *testing.T) {
	// NULL cells arrive as empty strings and never match anything.
	pairs := dedupeValues([]string{"", "", "John Smith"}, 0.1, 0)
	if len(pairs) != 0 {
		t.Errorf("got %d pairs, want 0: %v", len(pairs), pairs)
	}
}

func TestLinkValues(t *testing.T) {
	left := []string{"Dr. John A. Smith, Jr.", "Maria Lopez"}
	right := []string{"John Smith", "Robert King"}
	pairs := linkValues(left, right, 0.7, 0)

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1: %v", len(pairs), pairs)
	}
	if pairs[0].Left != "Dr. John A. Smith, Jr." || pairs[0].Right != "John Smith" {
		t.Errorf("got pair %v, want Smith match", pairs[0])
	}
}

func TestTopPairsSortsAndLimits(t *testing.T) {
	pairs := []MatchPair{
		{Left: "a", Right: "b", Score: 0.5},
		{Left: "c", Right: "d", Score: 0.9},
		{Left: "e", Right: "f", Score: 0.7},
	}

	top := topPairs(pairs, 2)
	if len(top) != 2 {
		t.Fatalf("got %d pairs, want 2", len(top))
	}
	if top[0].Score != 0.9 || top[1].Score != 0.7 {
		t.Errorf("got order %v, want descending by score", top)
	}
}

func TestCoerce(t *testing.T) {
	if got := coerce(nil); got != "" {
		t.Errorf("coerce(nil) = %q, want empty", got)
	}
	if got := coerce("John"); got != "John" {
		t.Errorf("coerce = %q, want John", got)
	}
	if got := coerce(42); got != "42" {
		t.Errorf("coerce = %q, want 42", got)
	}
}

func TestResolvePathRejectsNonCSV(t *testing.T) {
	if _, err := resolvePath("names.parquet"); err == nil {
		t.Error("expected error for non-CSV path")
	}
	if _, err := resolvePath("names.csv"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
