package contents

import (
	"bytes"
	"io"
	"slices"
	"strings"
)

// DefaultTopN is the ranking length used when callers pass n <= 0
const DefaultTopN = 10

// Entry is one ranked package
type Entry struct {
	Name  string `json:"package"`
	Count int    `json:"count"`
}

// Stats describes one aggregation pass
type Stats struct {
	Lines    int   `json:"lines"`
	Records  int   `json:"records"`
	Skipped  int   `json:"skipped"`
	Tokens   int   `json:"tokens"`
	Distinct int   `json:"distinct"`
	Bytes    int64 `json:"bytes"`
}

// Table counts package names and remembers the order they were first seen
type Table struct {
	counts map[string]int
	order  []string
	tokens int
}

// NewTable returns an empty frequency table
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Add counts one occurrence of name. Empty names are counted like any other
func (t *Table) Add(name string) {
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
	t.tokens++
}

// AddList explodes a comma-separated package list and counts every token, duplicates included
func (t *Table) AddList(list string) {
	for name := range strings.SplitSeq(list, ",") {
		t.Add(name)
	}
}

// Len returns the number of distinct names
func (t *Table) Len() int { return len(t.order) }

// Tokens returns the number of counted tokens
func (t *Table) Tokens() int { return t.tokens }

// Top returns up to n entries by count descending; equal counts keep first-seen order
func (t *Table) Top(n int) []Entry {
	if n <= 0 {
		n = DefaultTopN
	}
	out := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, Entry{Name: name, Count: t.counts[name]})
	}
	slices.SortStableFunc(out, func(a, b Entry) int { return b.Count - a.Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Aggregate reads a gzip-compressed Contents stream into a frequency table
func Aggregate(r io.Reader) (*Table, Stats, error) {
	rd, err := NewReader(r)
	if err != nil {
		return nil, Stats{}, err
	}
	defer func() { _ = rd.Close() }()

	t := NewTable()
	for {
		list, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Stats{}, err
		}
		t.AddList(list)
	}

	lines, records, n := rd.Stats()
	return t, Stats{
		Lines:    lines,
		Records:  records,
		Skipped:  lines - records,
		Tokens:   t.Tokens(),
		Distinct: t.Len(),
		Bytes:    n,
	}, nil
}

// RankReader aggregates r and returns the top n packages
func RankReader(r io.Reader, n int) ([]Entry, Stats, error) {
	t, st, err := Aggregate(r)
	if err != nil {
		return nil, st, err
	}
	return t.Top(n), st, nil
}

// Rank decompresses a Contents file held in memory and returns the top n packages
func Rank(compressed []byte, n int) ([]Entry, error) {
	out, _, err := RankReader(bytes.NewReader(compressed), n)
	return out, err
}
