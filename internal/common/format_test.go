package common

import "testing"

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{2.483, "2.483"},
		{9.99, "9.990"}, // below 10 keeps three decimals
		{10, "10.00"},
		{163.498, "163.50"},
	}
	for _, c := range cases {
		if got := FormatPrice(c.in); got != c.want {
			t.Errorf("FormatPrice(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "¥0.00"},
		{999.5, "¥999.50"},
		{1000, "¥1,000.00"},
		{1234567.89, "¥1,234,567.89"},
		{-2500, "-¥2,500.00"},
	}
	for _, c := range cases {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%v) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestFormatSignedPct(t *testing.T) {
	if got := FormatSignedPct(13.8); got != "+13.8%" {
		t.Errorf("got %s", got)
	}
	if got := FormatSignedPct(-2.34); got != "-2.3%" {
		t.Errorf("got %s", got)
	}
	if got := FormatSignedPct(0); got != "+0.0%" {
		t.Errorf("got %s", got)
	}
}
