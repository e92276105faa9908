// Package dhatupatha loads the verb-root catalogue: a flat, three-column
// CSV of (gaṇa, index-within-gaṇa, raw) rows, and answers the range
// queries the filter algebra's gana() constructor needs.
//
// The table is read-only after Load returns; nothing in this package
// mutates a *Dhatupatha once built.
package dhatupatha

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

// Entry is a single dhātupāṭha row.
type Entry struct {
	Gana     string
	Index    string
	Raw      string
	AbsIndex int
}

// Compare orders entries by their absolute file position, so the backing
// collections.BinTree walks the catalogue in declaration order — the
// order dhatu_range's forward scan depends on.
func (e *Entry) Compare(other collections.Comparable) int {
	o, ok := other.(*Entry)
	if !ok {
		return -1
	}
	return e.AbsIndex - o.AbsIndex
}

// Dhatupatha is the loaded, read-only root catalogue.
type Dhatupatha struct {
	entries []*Entry
	byRaw   map[string][]int
	tree    *collections.BinTree[*Entry]
}

// Load parses a CSV file of `gana,index,raw` rows into a Dhatupatha.
func Load(path string) (*Dhatupatha, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dhatupatha: %w", err)
	}
	defer f.Close()
	return parse(f)
}

func parse(r io.Reader) (*Dhatupatha, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	dp := &Dhatupatha{
		byRaw: map[string][]int{},
		tree:  new(collections.BinTree[*Entry]),
	}
	dp.tree.UniqValues = true

	i := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dhatupatha: malformed row %d: %w", i+1, err)
		}
		entry := &Entry{Gana: record[0], Index: record[1], Raw: record[2], AbsIndex: i}
		dp.entries = append(dp.entries, entry)
		dp.byRaw[entry.Raw] = append(dp.byRaw[entry.Raw], i)
		dp.tree.Add(entry)
		i++
	}
	log.Info().Int("roots", len(dp.entries)).Msg("dhatupatha loaded")
	return dp, nil
}

// Len returns the number of loaded roots.
func (dp *Dhatupatha) Len() int { return len(dp.entries) }

// Sorted returns every entry in file order, via the backing BinTree.
func (dp *Dhatupatha) Sorted() []*Entry {
	return dp.tree.ToSlice()
}

// Range returns every root from start up to (and including) end, or, if
// end is "", to the end of start's gaṇa.
func (dp *Dhatupatha) Range(start, end string) ([]string, error) {
	starts, ok := dp.byRaw[start]
	if !ok || len(starts) == 0 {
		return nil, fmt.Errorf("dhatupatha: unknown root %q", start)
	}
	startIdx := starts[0]

	if end == "" {
		gana := dp.entries[startIdx].Gana
		var out []string
		for i := startIdx; i < len(dp.entries); i++ {
			if dp.entries[i].Gana != gana {
				break
			}
			out = append(out, dp.entries[i].Raw)
		}
		return out, nil
	}

	ends, ok := dp.byRaw[end]
	if !ok || len(ends) == 0 {
		return nil, fmt.Errorf("dhatupatha: unknown root %q", end)
	}
	endIdx := ends[len(ends)-1]
	if endIdx < startIdx {
		return nil, nil
	}
	out := make([]string, 0, endIdx-startIdx+1)
	for i := startIdx; i <= endIdx; i++ {
		out = append(out, dp.entries[i].Raw)
	}
	return out, nil
}

// Set returns Range(start, end) as a membership set.
func (dp *Dhatupatha) Set(start, end string) (map[string]bool, error) {
	values, err := dp.Range(start, end)
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(values))
	for _, v := range values {
		out[v] = true
	}
	return out, nil
}
