package entity

import (
	"testing"
)

func TestPartner_CountryCode(t *testing.T) {
	tests := []struct {
		name    string
		country string
		want    string
	}{
		{"united states", "United States", "US"},
		{"netherlands", "Netherlands", "NL"},
		{"empty", "", ""},
		{"unknown name", "Atlantis", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Partner{Name: "x", Country: tt.country}
			if got := p.CountryCode(); got != tt.want {
				t.Errorf("CountryCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPartner_Values_OmitsUnset(t *testing.T) {
	p := &Partner{Name: "Acme Corp", IsCompany: true}
	values := p.Values()

	if values["name"] != "Acme Corp" {
		t.Errorf("name = %v, want Acme Corp", values["name"])
	}
	if values["is_company"] != true {
		t.Errorf("is_company = %v, want true", values["is_company"])
	}
	for _, key := range []string{"email", "phone", "street", "city", "zip", "country_id", "supplier_rank"} {
		if _, ok := values[key]; ok {
			t.Errorf("unset field %q should not be present", key)
		}
	}
}

func TestPartner_Values_Full(t *testing.T) {
	p := &Partner{
		Name:         "Office Supplies Ltd",
		IsCompany:    true,
		Email:        "orders@officesupplies.com",
		SupplierRank: 1,
		CountryID:    233,
	}
	values := p.Values()

	if values["supplier_rank"] != 1 {
		t.Errorf("supplier_rank = %v, want 1", values["supplier_rank"])
	}
	if values["country_id"] != int64(233) {
		t.Errorf("country_id = %v, want 233", values["country_id"])
	}
	if !p.IsSupplier() {
		t.Error("IsSupplier() = false, want true")
	}
}

func TestPartner_Validate(t *testing.T) {
	tests := []struct {
		name    string
		partner Partner
		wantErr bool
	}{
		{"valid", Partner{Name: "Acme", Email: "a@b.com"}, false},
		{"missing name", Partner{Email: "a@b.com"}, true},
		{"bad email", Partner{Name: "Acme", Email: "not-an-email"}, true},
		{"no email is fine", Partner{Name: "Acme"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.partner.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
