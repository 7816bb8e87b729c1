package dutch

import "testing"

func TestIsEquivalent(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"exact", "drie uur", "drie uur", true},
		{"case and whitespace", "  Drie   UUR ", "drie uur", true},
		{"tabs", "kwart\tover\tdrie", "kwart over drie", true},
		{"numeral hour", "3 uur", "drie uur", true},
		{"numeral inside phrase", "kwart over 3", "kwart over drie", true},
		{"numeral twelve", "half 12", "half twaalf", true},
		{"numeral one", "half 1", "half een", true},
		{"all numerals", "10 voor half 4", "tien voor half vier", true},
		{"mixed substitution rejected", "10 voor half vier", "tien voor half vier", false},
		{"wrong hour", "drie uur", "vier uur", false},
		{"typo", "drei uur", "drie uur", false},
		{"empty", "", "drie uur", false},
		{"blank", "   ", "drie uur", false},
		{"middag", "MIDDAG", "middag", true},
		{"digital notation not accepted", "12:00", "middag", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsEquivalent(tc.submitted, tc.expected); got != tc.want {
				t.Errorf("IsEquivalent(%q, %q) = %v, expected %v", tc.submitted, tc.expected, got, tc.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  Kwart  VOOR\n vier "); got != "kwart voor vier" {
		t.Errorf("Normalize() = %q, expected %q", got, "kwart voor vier")
	}
}

func TestWithNumerals(t *testing.T) {
	tests := map[string]string{
		"drie uur":            "3 uur",
		"vijf over half twee": "5 over half 2",
		"middernacht":         "middernacht",
		"kwart voor elf":      "kwart voor 11",
	}
	for in, expected := range tests {
		if got := WithNumerals(in); got != expected {
			t.Errorf("WithNumerals(%q) = %q, expected %q", in, got, expected)
		}
	}
}
