package services

import "testing"

func TestParseMoney(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"plain number", "45000", 45000},
		{"decimal", "45000.50", 45000.50},
		{"rupee symbol with lakh grouping", "₹3,00,000", 300000},
		{"rupee symbol only", "₹", 0},
		{"rs dot prefix", "Rs. 45000.50", 45000.50},
		{"rs prefix", "Rs 1,234", 1234},
		{"inr prefix", "INR 99", 99},
		{"surrounding spaces", "  2500  ", 2500},
		{"internal spaces", "1 00 000", 100000},
		{"garbage", "abc", 0},
		{"double decimal point", "12.5.6", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseMoney(tt.input)
			if !floatClose(got, tt.expect) {
				t.Errorf("ParseMoney(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestSplitGST(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		gstPercent float64
		wantBase   float64
		wantTax    float64
	}{
		{"three lakh at 18", 300000, 18, 254237, 45763},
		{"three lakh at composite rate", 300000, 13.8, 263620, 36380},
		{"exact division", 59000, 18, 50000, 9000},
		{"small value", 118, 18, 100, 18},
		{"zero gst", 5000, 0, 5000, 0},
		{"zero value", 0, 18, 0, 0},
		{"negative value", -100, 18, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, tax := SplitGST(tt.value, tt.gstPercent)
			if !floatClose(base, tt.wantBase) {
				t.Errorf("SplitGST(%v, %v) base = %v, want %v", tt.value, tt.gstPercent, base, tt.wantBase)
			}
			if !floatClose(tax, tt.wantTax) {
				t.Errorf("SplitGST(%v, %v) tax = %v, want %v", tt.value, tt.gstPercent, tax, tt.wantTax)
			}
			// The split must reproduce the inclusive value exactly.
			if tt.value > 0 && base+tax != tt.value {
				t.Errorf("SplitGST(%v, %v): base %v + tax %v != %v", tt.value, tt.gstPercent, base, tax, tt.value)
			}
		})
	}
}
