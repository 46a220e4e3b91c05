package dividends

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want Amount
	}{
		{name: "plain", in: "5.00", want: A(5.0)},
		{name: "negative", in: "-10.00", want: A(-10.0)},
		{name: "surrounding whitespace", in: " 3.25 ", want: A(3.25)},
		{name: "dollar prefix", in: "$8.00", want: A(8.0)},
		{name: "thousands separator", in: "1,234.56", want: A(1234.56)},
		{name: "integer", in: "42", want: A(42)},
		{name: "garbage", in: "n/a", want: MissingAmount()},
		{name: "empty", in: "", want: MissingAmount()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.in); !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestAmount_String(t *testing.T) {
	testCases := []struct {
		amount Amount
		want   string
	}{
		{A(8.0), "$8.00"},
		{A(-10.0), "$-10.00"},
		{A(0), "$0.00"},
		{A(3.456), "$3.46"},
		{MissingAmount(), "$-"},
	}
	for _, tc := range testCases {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("Amount.String() = %q, want %q", got, tc.want)
		}
	}
}

func TestAmount_Add(t *testing.T) {
	testCases := []struct {
		name string
		a, b Amount
		want Amount
	}{
		{name: "both present", a: A(5.0), b: A(3.0), want: A(8.0)},
		{name: "missing counts as zero", a: A(5.0), b: MissingAmount(), want: A(5.0)},
		{name: "missing on the left", a: MissingAmount(), b: A(3.0), want: A(3.0)},
		{name: "both missing", a: MissingAmount(), b: MissingAmount(), want: A(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); !got.Equal(tc.want) {
				t.Errorf("%s.Add(%s) = %s, want %s", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAmount_NonNegative(t *testing.T) {
	testCases := []struct {
		amount Amount
		want   bool
	}{
		{A(5.0), true},
		{A(0), true},
		{A(-1.0), false},
		{MissingAmount(), false},
	}
	for _, tc := range testCases {
		if got := tc.amount.NonNegative(); got != tc.want {
			t.Errorf("%s.NonNegative() = %v, want %v", tc.amount, got, tc.want)
		}
	}
}
