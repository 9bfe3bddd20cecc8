package core

import "odooclient/entity"

// Built-in sample records. The seeder always starts from these and
// appends whatever an extra dataset file contributes.

func sampleCustomers() []entity.Partner {
	return []entity.Partner{
		{
			Name:         "Acme Corp",
			IsCompany:    true,
			Email:        "contact@acme.com",
			Phone:        "+1-555-0123",
			Street:       "123 Business Ave",
			City:         "New York",
			Zip:          "10001",
			Country:      "United States",
			CustomerRank: 1,
		},
		{
			Name:         "TechStart BV",
			IsCompany:    true,
			Email:        "info@techstart.nl",
			Phone:        "+31-20-555-0456",
			Street:       "456 Innovation St",
			City:         "Amsterdam",
			Zip:          "1012AB",
			Country:      "Netherlands",
			CustomerRank: 1,
		},
		{
			Name:         "John Smith",
			IsCompany:    false,
			Email:        "john@example.com",
			Phone:        "+1-555-0789",
			Street:       "789 Personal Lane",
			City:         "Los Angeles",
			Zip:          "90210",
			Country:      "United States",
			CustomerRank: 1,
		},
	}
}

func sampleSuppliers() []entity.Partner {
	return []entity.Partner{
		{
			Name:         "Office Supplies Ltd",
			IsCompany:    true,
			Email:        "orders@officesupplies.com",
			Country:      "United States",
			SupplierRank: 1,
		},
		{
			Name:         "IT Equipment Co",
			IsCompany:    true,
			Email:        "sales@itequipment.com",
			Country:      "United States",
			SupplierRank: 1,
		},
	}
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{Name: "Consulting Service", Type: "service", ListPrice: 100.0},
		{Name: "Software License", Type: "service", ListPrice: 500.0},
		{Name: "Technical Support", Type: "service", ListPrice: 150.0},
		{Name: "Training Session", Type: "service", ListPrice: 300.0},
	}
}

func sampleAssets() []entity.Asset {
	return []entity.Asset{
		{Name: "Office Computer", OriginalValue: 1200.0, Method: "linear", MethodNumber: 3},
		{Name: "Office Furniture", OriginalValue: 800.0, Method: "linear", MethodNumber: 5},
	}
}
