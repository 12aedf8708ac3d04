package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelta(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(100000), Delta(TxPayment, 100000))
	assert.Equal(t, int64(100000), Delta(TxAdjustmentCredit, 100000))
	assert.Equal(t, int64(-100000), Delta(TxAdjustmentDebit, 100000))
}

func TestMonthLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2026-01", MonthLabel(2026, 1))
	assert.Equal(t, "2026-12", MonthLabel(2026, 12))
}

func TestRecordTransactionRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := RecordTransactionRequest{
		StudentID:   "HS-01",
		Amount:      100000,
		Date:        "2026-03-15",
		Description: "Cash payment",
		Kind:        "PAYMENT",
	}
	assert.NoError(t, valid.Validate())

	negative := valid
	negative.Amount = -5
	assert.Error(t, negative.Validate())

	invoiceKind := valid
	invoiceKind.Kind = "INVOICE" // only the invoice run may write these
	assert.Error(t, invoiceKind.Validate())

	badDate := valid
	badDate.Date = "15/03/2026"
	assert.Error(t, badDate.Validate())
}

func TestUpdateTransactionRequest_Validate(t *testing.T) {
	t.Parallel()

	empty := UpdateTransactionRequest{ID: "x"}
	assert.Error(t, empty.Validate(), "nothing to update")

	amount := int64(50000)
	ok := UpdateTransactionRequest{ID: "x", Amount: &amount}
	assert.NoError(t, ok.Validate())

	zero := int64(0)
	bad := UpdateTransactionRequest{ID: "x", Amount: &zero}
	assert.Error(t, bad.Validate())
}
