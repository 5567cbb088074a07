package domain

import "testing"

func TestRelevantAcceptsTaxQueries(t *testing.T) {
	queries := []string{
		"KRA VAT filing deadline",
		"how do I get an itax PIN",
		"penalty for late PAYE returns",
		"customs duty on imported cars in Kenya",
	}
	for _, q := range queries {
		if !Relevant(q) {
			t.Fatalf("expected %q to be relevant", q)
		}
	}
}

func TestRelevantRejectsOffTopicQueries(t *testing.T) {
	queries := []string{
		"best pizza recipe",
		"football scores today",
		"how to learn guitar",
	}
	for _, q := range queries {
		if Relevant(q) {
			t.Fatalf("expected %q to be irrelevant", q)
		}
	}
}

func TestScoreGrowsWithKeywordHits(t *testing.T) {
	low := Score("tax question")
	high := Score("KRA VAT and PAYE tax compliance in Kenya")
	if low == 0 {
		t.Fatal("expected a nonzero score for a tax query")
	}
	if high <= low {
		t.Fatalf("expected richer query to score higher: %d vs %d", high, low)
	}
}
