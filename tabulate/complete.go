package tabulate

import "strings"

// vocabularies computes, per key column, the label set spanning the
// keep-empty Cartesian product.
//
// Default: the distinct labels observed in the current result, in first
// appearance order; a declared label that matched nothing stays invisible.
// Under WithDeclaredVocabulary, mapped
// dimensions use their declared label list instead (declaration order);
// identity dimensions have nothing declared and keep the observed set.
func vocabularies(t *Table, plan []keyDim, o options) [][]string {
	vocabs := make([][]string, len(plan))
	for i, kd := range plan {
		if o.declaredVocab && !kd.identity {
			labels := kd.dim.Labels()
			vocab := make([]string, len(labels))
			for li, l := range labels {
				vocab[li] = l.Name
			}
			vocabs[i] = vocab
			continue
		}
		var vocab []string
		seen := make(map[string]struct{})
		for _, r := range t.Rows {
			v := r.Keys[i]
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vocab = append(vocab, v)
		}
		vocabs[i] = vocab
	}

	return vocabs
}

// fillEmpty replaces t.Rows with the full Cartesian product of the given
// vocabularies, left-joining the existing rows by key tuple. Combinations
// with no supporting aggregate get null cells (Cell.Valid=false). Product
// order is the lexical nesting of vocabularies in key-column order.
func fillEmpty(t *Table, vocabs [][]string) {
	total := 1
	for _, v := range vocabs {
		total *= len(v)
	}
	if total == 0 {
		t.Rows = nil
		return
	}

	existing := make(map[string]*Row, len(t.Rows))
	for i := range t.Rows {
		existing[strings.Join(t.Rows[i].Keys, keySep)] = &t.Rows[i]
	}

	rows := make([]Row, 0, total)
	idx := make([]int, len(vocabs))
	for {
		keys := make([]string, len(vocabs))
		for i := range vocabs {
			keys[i] = vocabs[i][idx[i]]
		}
		if r, ok := existing[strings.Join(keys, keySep)]; ok {
			rows = append(rows, Row{Keys: keys, Cells: r.Cells})
		} else {
			rows = append(rows, Row{Keys: keys, Cells: make([]Cell, len(t.ValueCols))})
		}

		p := len(vocabs) - 1
		for p >= 0 {
			idx[p]++
			if idx[p] < len(vocabs[p]) {
				break
			}
			idx[p] = 0
			p--
		}
		if p < 0 {
			break
		}
	}

	t.Rows = rows
}
