package main

import (
	"sort"

	"namematch/names"
)

type MatchPair struct {
	Left  string  `json:"left"`
	Right string  `json:"right"`
	Score float64 `json:"score"`
}

func runDedupe(d DedupeCmd) ([]MatchPair, error) {
	values, err := loadColumn(d.Path, d.Column)
	if err != nil {
		return []MatchPair{}, err
	}

	return dedupeValues(values, d.Threshold, d.Limit), nil
}

func runLink(l LinkCmd) ([]MatchPair, error) {
	left, err := loadColumn(l.LeftPath, l.LeftColumn)
	if err != nil {
		return []MatchPair{}, err
	}
	right, err := loadColumn(l.RightPath, l.RightColumn)
	if err != nil {
		return []MatchPair{}, err
	}

	return linkValues(left, right, l.Threshold, l.Limit), nil
}

// dedupeValues scores every in-file pair once; repeated values produce a
// single reported pair.
func dedupeValues(values []string, threshold float64, limit int) []MatchPair {
	seen := make(map[[2]string]struct{})
	var pairs []MatchPair
	for i, left := range values {
		for _, right := range values[i+1:] {
			if _, exists := seen[[2]string{left, right}]; exists {
				continue
			}
			if _, exists := seen[[2]string{right, left}]; exists {
				continue
			}
			seen[[2]string{left, right}] = struct{}{}

			score := names.Compare(left, right)
			if score >= threshold {
				pairs = append(pairs, MatchPair{Left: left, Right: right, Score: score})
			}
		}
	}
	return topPairs(pairs, limit)
}

func linkValues(left, right []string, threshold float64, limit int) []MatchPair {
	seen := make(map[[2]string]struct{})
	var pairs []MatchPair
	for _, l := range left {
		for _, r := range right {
			if _, exists := seen[[2]string{l, r}]; exists {
				continue
			}
			seen[[2]string{l, r}] = struct{}{}

			score := names.Compare(l, r)
			if score >= threshold {
				pairs = append(pairs, MatchPair{Left: l, Right: r, Score: score})
			}
		}
	}
	return topPairs(pairs, limit)
}

func topPairs(pairs []MatchPair, limit int) []MatchPair {
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score // descending
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}
