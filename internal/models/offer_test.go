package models

import "testing"

func TestDiscountPercent(t *testing.T) {
	cases := []struct {
		name   string
		offer  Offer
		want   int
		wantOK bool
	}{
		{
			name:   "currency and separators stripped",
			offer:  Offer{OriginalPrice: "₹3,999/month", DiscountedPrice: "₹999/month"},
			want:   75,
			wantOK: true,
		},
		{
			name:   "plain prices",
			offer:  Offer{OriginalPrice: "200", DiscountedPrice: "150"},
			want:   25,
			wantOK: true,
		},
		{
			name:   "rounding",
			offer:  Offer{OriginalPrice: "300", DiscountedPrice: "100"},
			want:   67,
			wantOK: true,
		},
		{
			name:  "free offer has no discount badge",
			offer: Offer{OriginalPrice: "₹6,999", IsFree: true},
		},
		{
			name:  "missing discounted price",
			offer: Offer{OriginalPrice: "₹1,999/month"},
		},
		{
			name:  "missing original price",
			offer: Offer{DiscountedPrice: "₹999"},
		},
		{
			name:  "zero denominator skipped",
			offer: Offer{OriginalPrice: "₹0", DiscountedPrice: "₹0"},
		},
		{
			name:  "unparseable original price",
			offer: Offer{OriginalPrice: "call us", DiscountedPrice: "₹999"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.offer.DiscountPercent()
			if ok != tc.wantOK {
				t.Fatalf("DiscountPercent() ok = %v, want %v", ok, tc.wantOK)
			}
			if got != tc.want {
				t.Fatalf("DiscountPercent() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestJobCompensationPrefersCTC(t *testing.T) {
	job := Job{CTC: "₹12–18 LPA", Stipend: "₹80,000/month"}
	if got := job.Compensation(); got != "₹12–18 LPA" {
		t.Fatalf("Compensation() = %q, want CTC", got)
	}

	job = Job{Stipend: "₹80,000/month"}
	if got := job.Compensation(); got != "₹80,000/month" {
		t.Fatalf("Compensation() = %q, want stipend fallback", got)
	}
}
