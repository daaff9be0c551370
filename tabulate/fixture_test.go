package tabulate_test

import (
	"testing"

	"github.com/nordstat/crosstab/dataset"
	"github.com/nordstat/crosstab/mapping"
	"github.com/stretchr/testify/require"
)

// labourFixture is a hand-counted miniature of a labour-force survey
// extract: Kjonn in {"1","2"}, integer Alder 15-66, syss_student in
// {"01".."04"}, unit count column n. Exactly 7 records satisfy
// 15 ≤ Alder ≤ 24 ∧ syss_student ∈ {"01","02"} (records 1-7).
func labourFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	rows := []struct {
		kjonn string
		alder int
		syss  string
	}{
		{"1", 22, "02"}, // 1
		{"2", 20, "01"}, // 2
		{"1", 17, "01"}, // 3
		{"1", 17, "02"}, // 4
		{"1", 16, "01"}, // 5
		{"2", 16, "01"}, // 6
		{"2", 23, "02"}, // 7
		{"1", 22, "03"},
		{"2", 24, "04"},
		{"1", 25, "01"},
		{"2", 30, "02"},
		{"1", 35, "03"},
		{"2", 44, "04"},
		{"1", 45, "01"},
		{"2", 54, "02"},
		{"1", 55, "03"},
		{"2", 66, "04"},
		{"1", 31, "01"},
		{"2", 40, "02"},
		{"1", 51, "04"},
	}
	records := make([]dataset.Record, len(rows))
	for i, r := range rows {
		records[i] = dataset.Record{
			"Kjonn": r.kjonn, "Alder": r.alder, "syss_student": r.syss, "n": 1,
		}
	}
	ds, err := dataset.New([]string{"Kjonn", "Alder", "syss_student", "n"}, records)
	require.NoError(t, err)

	return ds
}

// labourDims declares the published classifications: overlapping age bands,
// overlapping employment/student codes, and a dynamic "ALL" total per
// dimension (Kjonn's total label is "Begge").
func labourDims() []mapping.Dimension {
	alder := mapping.MustDimension("Alder",
		mapping.Label{Name: "15-24", Spec: mapping.Range(15, 24)},
		mapping.Label{Name: "25-34", Spec: mapping.Range(25, 34)},
		mapping.Label{Name: "35-44", Spec: mapping.Range(35, 44)},
		mapping.Label{Name: "45-54", Spec: mapping.Range(45, 54)},
		mapping.Label{Name: "55-66", Spec: mapping.Range(55, 66)},
		mapping.Label{Name: "15-21", Spec: mapping.Range(15, 21)},
		mapping.Label{Name: "22-30", Spec: mapping.Range(22, 30)},
		mapping.Label{Name: "Total", Spec: mapping.All()},
	)
	syss := mapping.MustDimension("syss_student",
		mapping.Label{Name: "01", Spec: mapping.In("01", "02")},
		mapping.Label{Name: "02", Spec: mapping.In("03", "04")},
		mapping.Label{Name: "03", Spec: mapping.In("02")},
		mapping.Label{Name: "04", Spec: mapping.In("04")},
		mapping.Label{Name: "Total", Spec: mapping.All()},
	)
	kjonn := mapping.MustDimension("Kjonn",
		mapping.Label{Name: "Menn", Spec: mapping.In("1")},
		mapping.Label{Name: "Kvinner", Spec: mapping.In("2")},
		mapping.Label{Name: "Begge", Spec: mapping.All()},
	)

	return []mapping.Dimension{alder, syss, kjonn}
}
