package tabulate

// DEFAULTS — single source of truth for zero-option behavior.
const (
	// DefaultTotalLabel is the label every key column takes in the
	// grand-total row unless overridden with WithTotalCode.
	DefaultTotalLabel = "Total"

	// DefaultGrandTotal appends a full-slice aggregate row.
	DefaultGrandTotal = true

	// DefaultKeepEmpty leaves unobserved label combinations out of the
	// result. Enable with WithKeepEmpty to materialize them with null cells.
	DefaultKeepEmpty = false

	// DefaultDeclaredVocabulary builds the keep-empty Cartesian product
	// from labels observed in the result. WithDeclaredVocabulary switches
	// to the declared label sets.
	DefaultDeclaredVocabulary = false
)

// Option mutates the engine configuration. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

// options is the resolved configuration. Unexported: public entry points
// accept ...Option and resolve via gatherOptions.
type options struct {
	grandTotal    bool
	keepEmpty     bool
	declaredVocab bool
	totalCodes    map[string]string
}

// WithGrandTotal appends one row aggregating the entire input slice, with
// every key column set to its total label. This is the default.
func WithGrandTotal() Option {
	return func(o *options) { o.grandTotal = true }
}

// WithoutGrandTotal suppresses the grand-total row.
func WithoutGrandTotal() Option {
	return func(o *options) { o.grandTotal = false }
}

// WithKeepEmpty expands the result to the full Cartesian product of label
// vocabularies; combinations with no supporting records get null cells
// (Cell.Valid=false). The product is computed before the grand-total row is
// appended, so total labels never enter it.
func WithKeepEmpty() Option {
	return func(o *options) { o.keepEmpty = true }
}

// WithTotalCode overrides the grand-total label for one key column.
// A total label that collides with an existing label is a caller
// configuration risk: the rows coexist, nothing is overwritten.
func WithTotalCode(column, label string) Option {
	return func(o *options) {
		if o.totalCodes == nil {
			o.totalCodes = make(map[string]string)
		}
		o.totalCodes[column] = label
	}
}

// WithDeclaredVocabulary makes WithKeepEmpty build its Cartesian product
// from each mapped dimension's declared labels, in declaration order, so a
// declared label that matched no record still appears with null cells.
// Identity dimensions (plain groupcols) have no declared vocabulary and
// always use their observed labels. Without this option the product uses
// result-observed labels only.
func WithDeclaredVocabulary() Option {
	return func(o *options) { o.declaredVocab = true }
}

// gatherOptions resolves setters against the documented defaults.
func gatherOptions(user ...Option) options {
	o := options{
		grandTotal:    DefaultGrandTotal,
		keepEmpty:     DefaultKeepEmpty,
		declaredVocab: DefaultDeclaredVocabulary,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// totalLabel returns the effective total label for one key column.
func (o options) totalLabel(column string) string {
	if l, ok := o.totalCodes[column]; ok {
		return l
	}

	return DefaultTotalLabel
}
