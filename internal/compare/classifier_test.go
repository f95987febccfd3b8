package compare

import (
	"testing"

	"github.com/partmatch-tech/catalog-backend/internal/domain"
	"github.com/shopspring/decimal"
)

func dp(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestClassifyTopSegmentDelta(t *testing.T) {
	delta := decimal.RequireFromString("1.10")
	eur := dp("100")

	if got := Classify(dp("110.00"), eur, "TOP", delta); got != domain.PriceOK {
		t.Fatalf("price at threshold: got %s want %s", got, domain.PriceOK)
	}
	if got := Classify(dp("110.01"), eur, "TOP", delta); got != domain.PriceHigh {
		t.Fatalf("price above threshold: got %s want %s", got, domain.PriceHigh)
	}
}

func TestClassifyPlainSegment(t *testing.T) {
	delta := decimal.RequireFromString("1.10")
	eur := dp("100")

	if got := Classify(dp("100.00"), eur, "STANDARD", delta); got != domain.PriceOK {
		t.Fatalf("price at catalog price: got %s want %s", got, domain.PriceOK)
	}
	if got := Classify(dp("100.01"), eur, "STANDARD", delta); got != domain.PriceHigh {
		t.Fatalf("price above catalog price: got %s want %s", got, domain.PriceHigh)
	}
}

func TestClassifyNA(t *testing.T) {
	delta := decimal.RequireFromString("1.10")

	cases := []struct {
		name  string
		price *decimal.Decimal
		eur   *decimal.Decimal
	}{
		{name: "nil product price", price: nil, eur: dp("100")},
		{name: "nil catalog price", price: dp("10"), eur: nil},
		{name: "zero catalog price", price: dp("10"), eur: dp("0")},
		{name: "negative catalog price", price: dp("10"), eur: dp("-5")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.price, tc.eur, "TOP", delta); got != domain.PriceNA {
				t.Fatalf("got %s want %s", got, domain.PriceNA)
			}
		})
	}
}

func TestClassifySegmentNormalization(t *testing.T) {
	delta := decimal.RequireFromString("1.10")

	if got := Classify(dp("105"), dp("100"), "  top ", delta); got != domain.PriceOK {
		t.Fatalf("padded lowercase segment: got %s want %s", got, domain.PriceOK)
	}
	if got := Classify(dp("105"), dp("100"), "ECO", delta); got != domain.PriceHigh {
		t.Fatalf("non-top segment gets no delta: got %s want %s", got, domain.PriceHigh)
	}
}
