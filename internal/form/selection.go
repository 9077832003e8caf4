// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package form

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/formgen/pkg/types"
)

// selectAllWords are the inputs ParseSelection treats as "every question".
var selectAllWords = map[string]bool{"все": true, "all": true}

// IsSelectAll reports whether input asks for every question.
func IsSelectAll(input string) bool {
	return selectAllWords[strings.ToLower(strings.TrimSpace(input))]
}

// ParseSelection parses a list of 1-based question numbers such as
// "1,3,5-7" against a list of n questions. Ranges may be reversed ("7-5").
// Numbers outside 1..n are ignored. The result is sorted and de-duplicated;
// it is empty when nothing in range was selected. A malformed token returns
// an error.
func ParseSelection(input string, n int) ([]int, error) {
	if IsSelectAll(input) {
		all := make([]int, n)
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}

	seen := make(map[int]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, err := parseRange(part)
		if err != nil {
			return nil, err
		}
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := lo; i <= hi; i++ {
			if i >= 1 && i <= n {
				seen[i] = true
			}
		}
	}

	selected := make([]int, 0, len(seen))
	for i := range seen {
		selected = append(selected, i)
	}
	sort.Ints(selected)
	return selected, nil
}

func parseRange(part string) (int, int, error) {
	from, to, isRange := strings.Cut(part, "-")
	lo, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid question number %q", part)
	}
	if !isRange {
		return lo, lo, nil
	}
	hi, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid question range %q", part)
	}
	return lo, hi, nil
}

// Delete returns questions without the given 1-based numbers, renumbered
// 1..N. Relative order and content of the survivors are preserved. The input
// slice is not modified.
func Delete(questions []types.Question, numbers []int) []types.Question {
	drop := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		drop[n] = true
	}

	kept := make([]types.Question, 0, len(questions))
	for i, q := range questions {
		if drop[i+1] {
			continue
		}
		kept = append(kept, q)
	}
	Renumber(kept)
	return kept
}

// Renumber assigns Number = position+1 to every question in place.
func Renumber(questions []types.Question) {
	for i := range questions {
		questions[i].Number = i + 1
	}
}
