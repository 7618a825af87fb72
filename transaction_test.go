package folio

import (
	"testing"

	"github.com/ebal/folio/date"
)

func TestParseTxType(t *testing.T) {
	testCases := []struct {
		in      string
		want    TxType
		wantErr bool
	}{
		{in: "BUY", want: Buy},
		{in: "sell", want: Sell},
		{in: " Buy ", want: Buy},
		{in: "DIVIDEND", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTxType(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseTxType(%q) expected an error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTxType(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseTxType(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	valid := NewBuy(date.MustParse("2025-01-10"), "aapl", 10, 100)
	got, err := valid.Validate()
	if err != nil {
		t.Fatalf("Validate failed on a valid transaction: %v", err)
	}
	if got.Symbol != "AAPL" {
		t.Errorf("Validate did not uppercase the symbol: %q", got.Symbol)
	}

	zeroDate := Transaction{Symbol: "AAPL", Type: Buy, Quantity: 1, Price: 1}
	got, err = zeroDate.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got.Date.IsZero() {
		t.Errorf("Validate did not default a zero date to today")
	}

	invalid := []Transaction{
		{Symbol: "AAPL", Type: "HOLD", Quantity: 1, Price: 1},
		{Symbol: "", Type: Buy, Quantity: 1, Price: 1},
		{Symbol: "AAPL", Type: Sell, Quantity: 0, Price: 1},
		{Symbol: "AAPL", Type: Sell, Quantity: 1, Price: -1},
	}
	for _, tx := range invalid {
		if _, err := tx.Validate(); err == nil {
			t.Errorf("Validate accepted %+v", tx)
		}
	}
}
