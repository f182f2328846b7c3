package reference

import "testing"

func TestInvestmentTypes(t *testing.T) {
	types := InvestmentTypes()
	if len(types) == 0 {
		t.Fatal("expected non-empty investment catalog")
	}

	for i := 1; i < len(types); i++ {
		if types[i].TypicalReturn > types[i-1].TypicalReturn {
			t.Errorf("catalog not ordered by typical return: %q (%v) after %q (%v)",
				types[i].Key, types[i].TypicalReturn, types[i-1].Key, types[i-1].TypicalReturn)
		}
	}

	// Mutating the returned slice must not affect the catalog.
	types[0].Name = "mutated"
	if fresh := InvestmentTypes(); fresh[0].Name == "mutated" {
		t.Error("InvestmentTypes returned a shared slice")
	}
}

func TestInvestmentTypeByKey(t *testing.T) {
	it, ok := InvestmentTypeByKey("ppf")
	if !ok {
		t.Fatal("expected ppf in catalog")
	}
	if it.TypicalReturn != 7.1 {
		t.Errorf("ppf typical return = %v, expected 7.1", it.TypicalReturn)
	}

	if _, ok := InvestmentTypeByKey("bitcoin"); ok {
		t.Error("unexpected catalog hit for bitcoin")
	}
}

func TestCountryByCode(t *testing.T) {
	tests := []struct {
		code   string
		found  bool
		symbol string
	}{
		{"IN", true, "₹"},
		{"in", true, "₹"},
		{" us ", true, "$"},
		{"ZZ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, ok := CountryByCode(tt.code)
			if ok != tt.found {
				t.Fatalf("CountryByCode(%q) found = %v, expected %v", tt.code, ok, tt.found)
			}
			if ok && c.CurrencySymbol != tt.symbol {
				t.Errorf("CountryByCode(%q) symbol = %q, expected %q", tt.code, c.CurrencySymbol, tt.symbol)
			}
		})
	}
}

func TestExamples(t *testing.T) {
	examples := Examples()
	if len(examples) != 5 {
		t.Fatalf("expected 5 worked examples, got %d", len(examples))
	}
	for _, ex := range examples {
		if ex.Name == "" || ex.Description == "" {
			t.Errorf("example missing name or description: %+v", ex)
		}
	}
}
