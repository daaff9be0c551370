package mapping

import (
	"fmt"

	"github.com/nordstat/crosstab/dataset"
)

// Spec is a membership rule: the set of raw values belonging to one label.
// Construct with In, Range or All; the zero Spec matches nothing.
type Spec struct {
	all    bool
	values []dataset.Value
}

// In returns a Spec matching exactly the given raw values. Values absent
// from the data are harmless; they simply match nothing. An empty In yields
// a label that never matches.
func In(values ...dataset.Value) Spec {
	s := Spec{values: make([]dataset.Value, len(values))}
	copy(s.values, values)

	return s
}

// Range returns a Spec matching the integers lo..hi inclusive. Band-style
// classifications (ages, durations) are almost always written this way.
// Matching is by Go equality, so Range matches int-valued cells.
func Range(lo, hi int) Spec {
	if hi < lo {
		return Spec{}
	}
	s := Spec{values: make([]dataset.Value, 0, hi-lo+1)}
	for v := lo; v <= hi; v++ {
		s.values = append(s.values, v)
	}

	return s
}

// All returns the dynamic "every observed value" Spec. It is resolved
// against the column handed to Resolve at call time, so the same dimension
// definition adapts to whatever data it is applied to.
func All() Spec { return Spec{all: true} }

// IsAll reports whether the spec is the dynamic "ALL" sentinel.
func (s Spec) IsAll() bool { return s.all }

// Values returns the explicit membership values (copy). Empty for All().
func (s Spec) Values() []dataset.Value {
	out := make([]dataset.Value, len(s.values))
	copy(out, s.values)

	return out
}

// Resolve materializes the spec against a raw column: All() becomes the set
// of values currently present in column, anything else becomes its explicit
// value set. The column is never mutated, and the result is freshly built on
// every call.
func (s Spec) Resolve(column []dataset.Value) map[dataset.Value]struct{} {
	if s.all {
		set := make(map[dataset.Value]struct{})
		for _, v := range column {
			set[v] = struct{}{}
		}

		return set
	}
	set := make(map[dataset.Value]struct{}, len(s.values))
	for _, v := range s.values {
		set[v] = struct{}{}
	}

	return set
}

// Label pairs a published label name with its membership spec.
type Label struct {
	Name string
	Spec Spec
}

// Dimension is a named classification axis: an ordered list of labels whose
// specs may overlap. Valid Dimensions only exist via NewDimension,
// MustDimension or Identity; the zero value has no labels and is rejected by
// the engine's validation.
type Dimension struct {
	name   string
	labels []Label
}

// NewDimension validates and builds a dimension. Label order is preserved;
// it becomes indicator-column order and, under declared-vocabulary
// completion, output order.
//
// Errors:
//   - ErrEmptyName      — name is "".
//   - ErrEmptyDimension — no labels given.
//   - ErrDuplicateLabel — a label name repeats within the dimension.
func NewDimension(name string, labels ...Label) (Dimension, error) {
	if name == "" {
		return Dimension{}, ErrEmptyName
	}
	if len(labels) == 0 {
		return Dimension{}, fmt.Errorf("dimension %q: %w", name, ErrEmptyDimension)
	}
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		if _, dup := seen[l.Name]; dup {
			return Dimension{}, fmt.Errorf("dimension %q, label %q: %w", name, l.Name, ErrDuplicateLabel)
		}
		seen[l.Name] = struct{}{}
	}
	d := Dimension{name: name, labels: make([]Label, len(labels))}
	copy(d.labels, labels)

	return d, nil
}

// MustDimension is NewDimension that panics on error. Intended for
// package-level fixture and example definitions where the labels are
// literals.
func MustDimension(name string, labels ...Label) Dimension {
	d, err := NewDimension(name, labels...)
	if err != nil {
		panic(err)
	}

	return d
}

// Identity synthesizes the exclusive single-label-per-value dimension for a
// plain grouping column: each distinct observed value becomes its own label,
// named by its canonical string form, matching exactly itself. Observation
// order (first appearance) is preserved.
func Identity(name string, column []dataset.Value) Dimension {
	distinct := dataset.DistinctValues(column)
	labels := make([]Label, 0, len(distinct))
	for _, v := range distinct {
		labels = append(labels, Label{Name: ValueString(v), Spec: In(v)})
	}

	return Dimension{name: name, labels: labels}
}

// Name returns the dimension name.
func (d Dimension) Name() string { return d.name }

// Labels returns the ordered labels (copy).
func (d Dimension) Labels() []Label {
	out := make([]Label, len(d.labels))
	copy(out, d.labels)

	return out
}

// Len returns the number of labels.
func (d Dimension) Len() int { return len(d.labels) }

// ValueString renders a raw value as a label string: strings pass through,
// everything else takes its fmt form. This is the canonical key form used
// for identity labels and result keys.
func ValueString(v dataset.Value) string {
	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
