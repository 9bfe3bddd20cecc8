package entity

import (
	"odooclient/internal/lib/validate"

	"github.com/biter777/countries"
)

// Partner is a res.partner payload. Country carries a human-readable
// country name from the dataset; the seeder resolves it to a remote
// country_id before create.
type Partner struct {
	Name         string `json:"name" validate:"required"`
	IsCompany    bool   `json:"is_company"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	Street       string `json:"street,omitempty"`
	City         string `json:"city,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Country      string `json:"country,omitempty"`
	SupplierRank int    `json:"supplier_rank,omitempty"`
	CustomerRank int    `json:"customer_rank,omitempty"`

	// CountryID is filled in by the seeder when Country resolves.
	CountryID int64 `json:"-"`
}

func (p *Partner) Validate() error {
	return validate.Struct(p)
}

// CountryCode maps the dataset country name to its ISO alpha-2 code,
// or "" when the name is unknown.
func (p *Partner) CountryCode() string {
	if p.Country == "" {
		return ""
	}
	country := countries.ByName(p.Country)
	if country == countries.Unknown {
		return ""
	}
	return country.Alpha2()
}

// IsSupplier reports whether the record represents a vendor.
func (p *Partner) IsSupplier() bool {
	return p.SupplierRank > 0
}

// Values builds the create dictionary, omitting unset fields.
func (p *Partner) Values() map[string]interface{} {
	values := map[string]interface{}{
		"name":       p.Name,
		"is_company": p.IsCompany,
	}
	if p.Email != "" {
		values["email"] = p.Email
	}
	if p.Phone != "" {
		values["phone"] = p.Phone
	}
	if p.Street != "" {
		values["street"] = p.Street
	}
	if p.City != "" {
		values["city"] = p.City
	}
	if p.Zip != "" {
		values["zip"] = p.Zip
	}
	if p.CountryID != 0 {
		values["country_id"] = p.CountryID
	}
	if p.SupplierRank != 0 {
		values["supplier_rank"] = p.SupplierRank
	}
	if p.CustomerRank != 0 {
		values["customer_rank"] = p.CustomerRank
	}
	return values
}
