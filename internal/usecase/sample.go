package usecase

import (
	"github.com/shopspring/decimal"

	"notary-profile/internal/domain"
)

const sampleIntroduction = "I am a qualified notary signing agent since 2006 and Fidelity approved subcontractor. " +
	"I have the capability, knowledge and experience required to execute your documents with the highest level of " +
	"expertise and care, and represent you to your clients with the utmost professionalism, leaving the client " +
	"comfortable and satisfied with their experience. I have closed thousands of loans and real estate transactions. " +
	"I specialize in refinances, purchases, equity lines of credit, seller transactions, construction & commercial " +
	"loans, reverse mortgages, as well as estate planning and trust documents, serving San Francisco county, " +
	"San Mateo county (1,000,000 thru Travelers Ins. Fees are negotiated at time of service request. " +
	"Name office equipped with two HP state of the art dual tray laser printers and scanners. " +
	"Experience the difference and thank you for calling on me! Email me at notary@signingagent.com"

var sampleCapabilities = []string{
	"CSA", "Attorney", "Fax", "Email", "Internet", "Laser Printer", "Notarizer", "Mobile Hotspot",
	"E-sign", "24 Hour Service", "Fingerprinting", "Weddings", "Hospital Signing", "Jail Signings",
	"Escrow/Fax (FPN)", "RON Capable",
}

var sampleEnabled = map[string]bool{
	"CSA": true, "Email": true, "Internet": true, "Laser Printer": true, "Fingerprinting": true, "Weddings": true,
}

// SampleProfile returns the demo profile shown for an empty lookup when
// configured. It is always flagged Sample and never merged into fetched data.
func SampleProfile() domain.Profile {
	p := emptyProfile()
	p.Sample = true
	p.Name, p.FirstName, p.LastName = splitName("Sample Notary")
	p.BusinessSince = "01/17/2006"
	p.Introduction = sampleIntroduction
	p.Email = "notary@signingagent.com"
	p.Phones = []domain.PhoneNumber{{Channel: domain.ChannelPhone, Number: "415 730-8955"}}
	p.BillingAddress = &domain.Address{
		Address1: "480 Fillmore St., #2",
		City:     "San Francisco",
		State:    "CA",
		Zip:      "94117",
	}
	p.Licenses = []domain.License{{State: "CA", CommissionNumber: "2188826", Expiration: "02/04/2026"}}

	for _, row := range []struct {
		desc, amount string
	}{
		{"Single loan refi w/edocs", "125.00"},
		{"Single loan refi w/overnight docs", "100.00"},
		{"Seller edocs", "100.00"},
		{"Reverse Mortgage", "150.00"},
		{"Scan-backs +$25.00", "25.00"},
		{"Reverse Mortgage w/edocs", "125.00"},
		{"HELOC w/edocs", "100.00"},
	} {
		p.Pricing = append(p.Pricing, domain.PricingItem{
			Description: row.desc,
			Amount:      decimal.NewNullDecimal(decimal.RequireFromString(row.amount)),
		})
	}

	for _, name := range sampleCapabilities {
		p.Capabilities = append(p.Capabilities, domain.Capability{Name: name, Enabled: sampleEnabled[name]})
	}
	p.CustomFields = append(p.CustomFields, domain.CustomField{
		Field: "otherCapabilityInformation",
		Value: "Two HP Dual tray laser printers and scanners",
	})

	for i := range p.Availability.Days {
		p.Availability.Days[i].Enabled = p.Availability.Days[i].Name != "Sun"
	}
	for i := range p.Availability.Hours {
		p.Availability.Hours[i].Enabled = true
	}
	return p
}
