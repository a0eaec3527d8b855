package view

import "testing"

func fltp(f float64) *float64 { return &f }
func strp(s string) *string   { return &s }
func boolp(b bool) *bool      { return &b }

func TestDHRawFormat(t *testing.T) {
	if got := DH(fltp(500000)); got != "500000 DH" {
		t.Errorf("DH = %q", got)
	}
	if got := DH(fltp(35.5)); got != "35.5 DH" {
		t.Errorf("DH = %q", got)
	}
	if got := DH(nil); got != "-" {
		t.Errorf("DH(nil) = %q", got)
	}
}

func TestMoneyGroupsThousands(t *testing.T) {
	cases := map[float64]string{
		500000:  "500 000 DH",
		1234567: "1 234 567 DH",
		999:     "999 DH",
		1500.25: "1 500,25 DH",
		-12000:  "-12 000 DH",
	}
	for in, want := range cases {
		if got := Money(fltp(in)); got != want {
			t.Errorf("Money(%v) = %q, want %q", in, got, want)
		}
	}
	if got := Money(nil); got != "-" {
		t.Errorf("Money(nil) = %q", got)
	}
}

func TestDashPlaceholder(t *testing.T) {
	if got := Dash((*string)(nil)); got != "-" {
		t.Errorf("Dash(nil string) = %q", got)
	}
	if got := Dash(strp("  ")); got != "-" {
		t.Errorf("Dash(blank) = %q", got)
	}
	if got := Dash(strp("A12")); got != "A12" {
		t.Errorf("Dash = %q", got)
	}
	if got := Dash((*int)(nil)); got != "-" {
		t.Errorf("Dash(nil int) = %q", got)
	}
	if got := Dash((*float64)(nil)); got != "-" {
		t.Errorf("Dash(nil float) = %q", got)
	}
}

func TestDateFR(t *testing.T) {
	if got := DateFR(strp("2024-03-15")); got != "15/03/2024" {
		t.Errorf("DateFR = %q", got)
	}
	if got := DateFR(strp("2024-03-15T22:00:00Z")); got != "15/03/2024" {
		t.Errorf("DateFR timestamp = %q, day must not shift", got)
	}
	if got := DateFR(nil); got != "-" {
		t.Errorf("DateFR(nil) = %q", got)
	}
}

func TestOuiNonTriState(t *testing.T) {
	if got := OuiNon("fr", boolp(true)); got != "Oui" {
		t.Errorf("true = %q", got)
	}
	if got := OuiNon("fr", boolp(false)); got != "Non" {
		t.Errorf("false = %q", got)
	}
	if got := OuiNon("fr", nil); got != "-" {
		t.Errorf("nil = %q", got)
	}
	if got := OuiNon("en", boolp(true)); got != "Yes" {
		t.Errorf("en true = %q", got)
	}
}

func TestFormatFloatNoTrailingZeros(t *testing.T) {
	if got := FormatFloat(35); got != "35" {
		t.Errorf("FormatFloat(35) = %q", got)
	}
	if got := FormatFloat(35.50); got != "35.5" {
		t.Errorf("FormatFloat(35.5) = %q", got)
	}
}
