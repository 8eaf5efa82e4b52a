package currency

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "₹0.00"},
		{50, "₹50.00"},
		{999, "₹999.00"},
		{1500, "₹1,500.00"},
		{49990, "₹49,990.00"},
		{60000, "₹60,000.00"},
		{100000, "₹1,00,000.00"},
		{1234567.5, "₹12,34,567.50"},
		{10000000, "₹1,00,00,000.00"},
		{1499.999, "₹1,500.00"},
	}

	for _, tt := range tests {
		if got := Format(tt.amount); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
