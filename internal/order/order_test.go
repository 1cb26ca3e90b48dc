package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewOrderHasOneDefaultLine(t *testing.T) {
	o := New("v-001")

	require.Len(t, o.Lines, 1)
	assert.Equal(t, 1, o.Lines[0].ID)
	assert.EqualValues(t, 1, o.Lines[0].Quantity)
	assert.True(t, o.Lines[0].UnitPrice.IsZero())
	assert.True(t, o.GrandTotal().IsZero())
}

func TestAddLineAssignsUniqueIDs(t *testing.T) {
	o := New("v-001")
	o = o.AddLine()
	o = o.AddLine()

	require.Len(t, o.Lines, 3)
	seen := map[int]bool{}
	for _, line := range o.Lines {
		assert.False(t, seen[line.ID], "duplicate line id %d", line.ID)
		seen[line.ID] = true
	}
}

func TestRemoveLastLineFails(t *testing.T) {
	o := New("v-001")

	got, err := o.RemoveLine(o.Lines[0].ID)
	require.ErrorIs(t, err, ErrMinimumLine)
	// the order comes back unchanged
	assert.Equal(t, o.Lines, got.Lines)
}

func TestRemoveLine(t *testing.T) {
	o := New("v-001").AddLine()
	firstID := o.Lines[0].ID

	_, err := o.RemoveLine(999)
	assert.ErrorIs(t, err, ErrLineNotFound)

	got, err := o.RemoveLine(firstID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 1)
	assert.NotEqual(t, firstID, got.Lines[0].ID)
}

func TestUpdateLineRecomputesTotal(t *testing.T) {
	o := New("v-001")
	id := o.Lines[0].ID

	o, err := o.UpdateLine(id, LineChange{Quantity: ptr(int64(4)), UnitPrice: ptr(d("125000"))})
	require.NoError(t, err)
	assert.True(t, d("500000").Equal(o.Lines[0].Total), "got %s", o.Lines[0].Total)

	o, err = o.UpdateLine(id, LineChange{Surcharge: &SurchargeChange{Name: "shipping", Amount: ptr(d("35000"))}})
	require.NoError(t, err)
	assert.True(t, d("535000").Equal(o.Lines[0].Total), "got %s", o.Lines[0].Total)

	// deleting the surcharge brings the total back down
	o, err = o.UpdateLine(id, LineChange{Surcharge: &SurchargeChange{Name: "shipping"}})
	require.NoError(t, err)
	assert.True(t, d("500000").Equal(o.Lines[0].Total), "got %s", o.Lines[0].Total)
}

func TestUpdateLineNameOnlyKeepsTotal(t *testing.T) {
	o := New("v-001")
	o, err := o.UpdateLine(o.Lines[0].ID, LineChange{Quantity: ptr(int64(2)), UnitPrice: ptr(d("10"))})
	require.NoError(t, err)

	o, err = o.UpdateLine(o.Lines[0].ID, LineChange{Name: ptr("selang gas")})
	require.NoError(t, err)
	assert.Equal(t, "selang gas", o.Lines[0].Name)
	assert.True(t, d("20").Equal(o.Lines[0].Total))
}

func TestUpdateLineRejectsNegativeAndLeavesOrderIntact(t *testing.T) {
	o := New("v-001")
	o, err := o.UpdateLine(o.Lines[0].ID, LineChange{Quantity: ptr(int64(2)), UnitPrice: ptr(d("50"))})
	require.NoError(t, err)

	var invalid *InvalidAmountError
	got, err := o.UpdateLine(o.Lines[0].ID, LineChange{UnitPrice: ptr(d("-50"))})
	require.ErrorAs(t, err, &invalid)
	assert.True(t, d("100").Equal(got.Lines[0].Total), "rejected update must not change the order")
	assert.True(t, d("50").Equal(got.Lines[0].UnitPrice))
}

func TestGrandTotalMatchesRecomputation(t *testing.T) {
	o := New("v-001")
	o, err := o.UpdateLine(1, LineChange{Quantity: ptr(int64(3)), UnitPrice: ptr(d("1000000"))})
	require.NoError(t, err)
	o = o.AddLine()
	o, err = o.UpdateLine(o.Lines[1].ID, LineChange{
		Quantity:  ptr(int64(2)),
		UnitPrice: ptr(d("250000.50")),
		Surcharge: &SurchargeChange{Name: "admin", Amount: ptr(d("9999.99"))},
	})
	require.NoError(t, err)

	// the stored totals must agree with recomputing every line from its
	// own quantity/price/surcharges
	fresh := decimal.Zero
	for _, line := range o.Lines {
		total, err := ComputeLineTotal(line.Quantity, line.UnitPrice, line.Surcharges)
		require.NoError(t, err)
		fresh = fresh.Add(total)
	}
	assert.True(t, fresh.Equal(o.GrandTotal()), "stored %s, recomputed %s", o.GrandTotal(), fresh)
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	o := New("v-001")
	o, err := o.UpdateLine(1, LineChange{Quantity: ptr(int64(5)), UnitPrice: ptr(d("100"))})
	require.NoError(t, err)

	before := o.GrandTotal()
	_ = o.AddLine()
	_, _ = o.RemoveLine(1)
	updated, err := o.UpdateLine(1, LineChange{Quantity: ptr(int64(9))})
	require.NoError(t, err)

	assert.True(t, before.Equal(o.GrandTotal()), "receiver mutated")
	assert.EqualValues(t, 5, o.Lines[0].Quantity)
	assert.EqualValues(t, 9, updated.Lines[0].Quantity)
}
