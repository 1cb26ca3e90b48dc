package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	name   string
	vendor string
	status string
	hasPO  bool
}

var rows = []row{
	{name: "Pengisian gas bulanan", vendor: "PT Sumber Energi", status: "approved", hasPO: true},
	{name: "Suku cadang kompresor", vendor: "CV Mitra Teknik", status: "pending", hasPO: false},
	{name: "Plat baja galvanis", vendor: "UD Cahaya Logam", status: "rejected", hasPO: true},
}

func names(rs []row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.name
	}

	return out
}

func TestTextPredicate(t *testing.T) {
	pred := Text("GAS", func(r row) string { return r.name }, func(r row) string { return r.vendor })

	got := Apply(rows, pred)
	assert.Equal(t, []string{"Pengisian gas bulanan"}, names(got))

	// empty criterion matches everything
	assert.Len(t, Apply(rows, Text[row]("")), 3)

	// matches across any named field
	got = Apply(rows, Text("mitra", func(r row) string { return r.name }, func(r row) string { return r.vendor }))
	assert.Equal(t, []string{"Suku cadang kompresor"}, names(got))
}

func TestEnumPredicate(t *testing.T) {
	field := func(r row) string { return r.status }

	assert.Len(t, Apply(rows, Enum("all", DefaultAllSentinel, field)), 3)
	assert.Len(t, Apply(rows, Enum("", DefaultAllSentinel, field)), 3)

	got := Apply(rows, Enum("Pending", DefaultAllSentinel, field))
	assert.Equal(t, []string{"Suku cadang kompresor"}, names(got))

	assert.Empty(t, Apply(rows, Enum("archived", DefaultAllSentinel, field)))
}

func TestFlagPredicate(t *testing.T) {
	field := func(r row) bool { return r.hasPO }

	assert.Len(t, Apply(rows, Flag("all", DefaultAllSentinel, field)), 3)
	assert.Len(t, Apply(rows, Flag("true", DefaultAllSentinel, field)), 2)
	assert.Len(t, Apply(rows, Flag("false", DefaultAllSentinel, field)), 1)
	// unparsable criterion deactivates the filter
	assert.Len(t, Apply(rows, Flag("maybe", DefaultAllSentinel, field)), 3)
}

func TestFlagPredicateCustomSentinel(t *testing.T) {
	field := func(r row) bool { return r.hasPO }

	assert.Len(t, Apply(rows, Flag("semua", "semua", field)), 3)
}

func TestAndComposition(t *testing.T) {
	pred := And(
		Text("a", func(r row) string { return r.name }),
		Enum("approved", DefaultAllSentinel, func(r row) string { return r.status }),
		Flag("true", DefaultAllSentinel, func(r row) bool { return r.hasPO }),
	)

	got := Apply(rows, pred)
	assert.Equal(t, []string{"Pengisian gas bulanan"}, names(got))

	// no predicates matches everything
	assert.Len(t, Apply(rows, And[row]()), 3)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := make([]row, len(rows))
	copy(before, rows)

	_ = Apply(rows, Enum("pending", DefaultAllSentinel, func(r row) string { return r.status }))
	assert.Equal(t, before, rows)
}
