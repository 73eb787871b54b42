package usecase

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notary-profile/internal/domain"
	"notary-profile/internal/model"
)

func mustRaw(t *testing.T, body string) model.RawDirectoryResponse {
	t.Helper()
	raw, err := model.DecodeRaw([]byte(body))
	require.NoError(t, err)
	return raw
}

func TestNormalizeMissingDirectory(t *testing.T) {
	for name, body := range map[string]string{
		"empty object":        `{}`,
		"null":                `null`,
		"array":               `[1,2,3]`,
		"null directory":      `{"userDirectory":null}`,
		"string directory":    `{"userDirectory":"nope"}`,
		"unrelated top level": `{"status":"ok","data":{}}`,
	} {
		t.Run(name, func(t *testing.T) {
			p := Normalize(mustRaw(t, body))

			assert.Equal(t, "Unknown", p.Name)
			assert.Empty(t, p.FirstName)
			assert.Empty(t, p.LastName)
			assert.NotNil(t, p.Phones)
			assert.Empty(t, p.Phones)
			assert.Empty(t, p.Licenses)
			assert.Empty(t, p.Insurances)
			assert.Empty(t, p.BackgroundChecks)
			assert.Empty(t, p.Pricing)
			assert.Empty(t, p.Languages)
			assert.Empty(t, p.Websites)
			assert.Empty(t, p.CustomFields)
			assert.Empty(t, p.Capabilities)
			assert.Empty(t, p.DocumentLinks)
			assert.Empty(t, p.ServiceableAreas)
			assert.Nil(t, p.BillingAddress)
			assert.Nil(t, p.ShippingAddress)
		})
	}
}

func TestNormalizeZeroValueRaw(t *testing.T) {
	p := Normalize(model.RawDirectoryResponse{})
	assert.Equal(t, "Unknown", p.Name)
	assert.Len(t, p.Availability.Days, 7)
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		full              string
		name, first, last string
	}{
		{`"Jane Q Public"`, "Jane Q Public", "Jane", "Q Public"},
		{`"  Jane   Q  Public "`, "Jane Q Public", "Jane", "Q Public"},
		{`"Cher"`, "Cher", "Cher", ""},
		{`""`, "Unknown", "", ""},
		{`42`, "42", "42", ""},
		{`{"first":"x"}`, "Unknown", "", ""},
	}
	for _, c := range cases {
		t.Run(c.full, func(t *testing.T) {
			p := Normalize(mustRaw(t, `{"userDirectory":{"userId":{"fullName":`+c.full+`}}}`))
			assert.Equal(t, c.name, p.Name)
			assert.Equal(t, c.first, p.FirstName)
			assert.Equal(t, c.last, p.LastName)
		})
	}
}

func TestNormalizeLicense(t *testing.T) {
	t.Run("defaults state to CA", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"commisionDetails":{"commissionNumber":"2188826","commissionExpiration":"2026-02-04T00:00:00.000Z"}}}`))
		require.Len(t, p.Licenses, 1)
		assert.Equal(t, domain.License{State: "CA", CommissionNumber: "2188826", Expiration: "02/04/2026"}, p.Licenses[0])
	})

	t.Run("keeps commissioned state and reads epoch millis", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"commisionDetails":{"commissionedState":"NV","commissionExpiration":1770163200000}}}`))
		require.Len(t, p.Licenses, 1)
		assert.Equal(t, "NV", p.Licenses[0].State)
		assert.Equal(t, "02/04/2026", p.Licenses[0].Expiration)
	})

	t.Run("empty commission object still yields one entry", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"commisionDetails":{}}}`))
		require.Len(t, p.Licenses, 1)
		assert.Equal(t, "CA", p.Licenses[0].State)
		assert.Empty(t, p.Licenses[0].Expiration)
	})

	t.Run("absent commission yields empty list", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"commisionDetails":null}}`))
		assert.NotNil(t, p.Licenses)
		assert.Empty(t, p.Licenses)
	})
}

func TestNormalizeOutOfRangeEpochKeepsText(t *testing.T) {
	p := Normalize(mustRaw(t, `{"userDirectory":{
		"commisionDetails":{"commissionExpiration":1e300},
		"backgroundCheck":{"conducted":"-99999999999999999999","expiration":253402300800000}
	}}`))

	require.Len(t, p.Licenses, 1)
	assert.Equal(t, "1e300", p.Licenses[0].Expiration)
	require.Len(t, p.BackgroundChecks, 1)
	assert.Equal(t, "-99999999999999999999", p.BackgroundChecks[0].Conducted)
	assert.Equal(t, "253402300800000", p.BackgroundChecks[0].Expiration)
}

func TestNormalizeInsuranceAndBackgroundCheck(t *testing.T) {
	p := Normalize(mustRaw(t, `{"userDirectory":{
		"insuranceCheck":{"insuranceCompany":"Travelers","coverageAmount":1000000},
		"backgroundCheck":{"provider":"NNA","conductedOn":"2024-03-01","expirationDate":1772323200,"referenceNumber":"BG-7"}
	}}`))

	require.Len(t, p.Insurances, 1)
	assert.Equal(t, domain.Insurance{Carrier: "Travelers", Amount: "1000000"}, p.Insurances[0])

	require.Len(t, p.BackgroundChecks, 1)
	assert.Equal(t, domain.BackgroundCheck{
		Provider:        "NNA",
		Conducted:       "03/01/2024",
		Expiration:      "03/01/2026",
		ReferenceNumber: "BG-7",
	}, p.BackgroundChecks[0])
}

func TestNormalizePricing(t *testing.T) {
	t.Run("string cost parses to decimal", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"fullServices":[{"name":"Refi","cost":"125.00"}]}}`))
		require.Len(t, p.Pricing, 1)
		assert.Equal(t, "Refi", p.Pricing[0].Description)
		require.True(t, p.Pricing[0].Amount.Valid)
		assert.True(t, decimal.RequireFromString("125.00").Equal(p.Pricing[0].Amount.Decimal))
	})

	t.Run("numeric, currency and invalid costs", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"fullServices":[
			{"name":"Seller","cost":100},
			{"name":"HELOC","cost":"$1,100.50"},
			{"name":"Scan-backs","cost":"call me"},
			{"name":"Reverse"},
			{"name":"Weird","cost":{"x":1}},
			"not an object"
		]}}`))
		require.Len(t, p.Pricing, 5)
		assert.True(t, decimal.NewFromInt(100).Equal(p.Pricing[0].Amount.Decimal))
		assert.True(t, decimal.RequireFromString("1100.50").Equal(p.Pricing[1].Amount.Decimal))
		for _, it := range p.Pricing[2:] {
			assert.False(t, it.Amount.Valid, it.Description)
		}
	})

	t.Run("out of range magnitudes are not a number", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"fullServices":[
			{"name":"huge","cost":"1e999999999"},
			{"name":"tiny","cost":"1e-999999999"},
			{"name":"float","cost":1e300},
			{"name":"wide","cost":"123456789012345678901234567890123456789012345"},
			{"name":"ok","cost":"1e3"}
		]}}`))
		require.Len(t, p.Pricing, 5)
		for _, it := range p.Pricing[:4] {
			assert.False(t, it.Amount.Valid, it.Description)
		}
		require.True(t, p.Pricing[4].Amount.Valid)
		assert.True(t, decimal.NewFromInt(1000).Equal(p.Pricing[4].Amount.Decimal))
	})
}

func TestNormalizeMappings(t *testing.T) {
	p := Normalize(mustRaw(t, `{"userDirectory":{
		"customFields":{"zeta":"last","alpha":"first","nested":{"a":1},"count":3},
		"capabilities":{"fax":true,"ronCapable":false,"csa":"true"}
	}}`))

	assert.Equal(t, []domain.CustomField{
		{Field: "alpha", Value: "first"},
		{Field: "count", Value: "3"},
		{Field: "nested", Value: `{"a":1}`},
		{Field: "zeta", Value: "last"},
	}, p.CustomFields)

	assert.Equal(t, []domain.Capability{
		{Name: "CSA", Enabled: true},
		{Name: "FAX", Enabled: true},
		{Name: "RONCAPABLE", Enabled: false},
	}, p.Capabilities)
}

func TestNormalizeMappingsDropBlankKeys(t *testing.T) {
	p := Normalize(mustRaw(t, `{"userDirectory":{
		"customFields":{"":"x","  ":"y","notaryType":"loan"},
		"capabilities":{"":true,"fax":true}
	}}`))

	assert.Equal(t, []domain.CustomField{{Field: "notaryType", Value: "loan"}}, p.CustomFields)
	assert.Equal(t, []domain.Capability{{Name: "FAX", Enabled: true}}, p.Capabilities)
}

func TestNormalizeAvailability(t *testing.T) {
	t.Run("only monday set", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"availability":{"monday":true}}}`))

		require.Len(t, p.Availability.Days, 7)
		enabled := []string{}
		for _, d := range p.Availability.Days {
			if d.Enabled {
				enabled = append(enabled, d.Name)
			}
		}
		assert.Equal(t, []string{"Mon"}, enabled)
		assert.Equal(t, []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}, toggleNames(p.Availability.Days))
		assert.Equal(t, []domain.Toggle{{Name: "AM"}, {Name: "PM"}}, p.Availability.Hours)
		assert.Equal(t, DefaultAvailabilityNotes, p.Availability.Notes)
	})

	t.Run("absent availability is all false", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{}}`))
		require.Len(t, p.Availability.Days, 7)
		require.Len(t, p.Availability.Hours, 2)
		for _, d := range append(p.Availability.Days, p.Availability.Hours...) {
			assert.False(t, d.Enabled, d.Name)
		}
	})

	t.Run("periods and notes", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"availability":{"am":false,"pm":true,"sunday":1,"notes":"Evenings only"}}}`))
		assert.Equal(t, []domain.Toggle{{Name: "AM"}, {Name: "PM", Enabled: true}}, p.Availability.Hours)
		assert.True(t, p.Availability.Days[6].Enabled)
		assert.Equal(t, "Evenings only", p.Availability.Notes)
	})
}

func TestNormalizePhones(t *testing.T) {
	t.Run("single number is one entry answering every channel", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"userId":{"phoneNumber":"415 730-8955"}}}`))
		assert.Equal(t, []domain.PhoneNumber{{Channel: domain.ChannelPhone, Number: "415 730-8955"}}, p.Phones)
		assert.Equal(t, "415 730-8955", p.Phone())
		assert.Equal(t, "415 730-8955", p.Office())
		assert.Equal(t, "415 730-8955", p.Mobile())
		assert.Equal(t, "415 730-8955", p.Home())
		assert.Equal(t, "415 730-8955", p.Alternate())
	})

	t.Run("distinct channels stay distinct and duplicates collapse", func(t *testing.T) {
		p := Normalize(mustRaw(t, `{"userDirectory":{"officeNumber":"111","userId":{"phoneNumber":"222","mobileNumber":"222"}}}`))
		assert.Equal(t, []domain.PhoneNumber{
			{Channel: domain.ChannelPhone, Number: "222"},
			{Channel: domain.ChannelOffice, Number: "111"},
		}, p.Phones)
		assert.Equal(t, "111", p.Office())
		assert.Equal(t, "222", p.Mobile())
	})
}

func TestNormalizeIdentityContactAndLists(t *testing.T) {
	p := Normalize(mustRaw(t, `{"userDirectory":{
		"companyName":"Bay Signings",
		"businessSince":"01/17/2006",
		"bio":"Closing loans since 2006.",
		"userId":{"fullName":"Jane Q Public","email":"jane@example.com","profileImage":"https://cdn.example.com/jane.png"},
		"billingAddress":{"address1":"480 Fillmore St., #2","city":"San Francisco","state":"CA","zip":94117},
		"spokenLanguages":["English",{"name":"Spanish"},"",null],
		"websites":[{"url":"https://www.example.com"},"jane.example.org"],
		"documentLinks":[{"documentType":"W9","url":"https://x/w9.pdf","description":"Tax form"}],
		"serviceableAreas":[{"completeAddress":"San Mateo, CA","city":"San Mateo","area":"County"}]
	}}`))

	assert.Equal(t, "Bay Signings", p.CompanyName)
	assert.Equal(t, "01/17/2006", p.BusinessSince)
	assert.Equal(t, "Closing loans since 2006.", p.Introduction)
	assert.Equal(t, "https://cdn.example.com/jane.png", p.ProfileImage)
	assert.Equal(t, "jane@example.com", p.Email)
	assert.Empty(t, p.WorkEmail, "work e-mail falls back at display time only")
	require.NotNil(t, p.BillingAddress)
	assert.Equal(t, domain.Address{Address1: "480 Fillmore St., #2", City: "San Francisco", State: "CA", Zip: "94117"}, *p.BillingAddress)
	assert.Nil(t, p.ShippingAddress)
	assert.Equal(t, []string{"English", "Spanish"}, p.Languages)
	assert.Equal(t, []string{"https://www.example.com", "jane.example.org"}, p.Websites)
	assert.Equal(t, []domain.DocumentLink{{DocumentType: "W9", URL: "https://x/w9.pdf", Description: "Tax form"}}, p.DocumentLinks)
	assert.Equal(t, []domain.ServiceableArea{{CompleteAddress: "San Mateo, CA", City: "San Mateo", Area: "County"}}, p.ServiceableAreas)
}

func TestNormalizeWrongTypesNeverPanic(t *testing.T) {
	body := `{"userDirectory":{
		"userId":[1,2],
		"billingAddress":"somewhere",
		"commisionDetails":[],
		"insuranceCheck":true,
		"backgroundCheck":7,
		"fullServices":{"name":"x"},
		"spokenLanguages":"English",
		"websites":42,
		"customFields":["a"],
		"capabilities":"fax",
		"availability":[true],
		"documentLinks":[null,1,"x"],
		"serviceableAreas":{}
	}}`
	var p domain.Profile
	require.NotPanics(t, func() { p = Normalize(mustRaw(t, body)) })
	assert.Equal(t, "Unknown", p.Name)
	assert.Empty(t, p.Licenses)
	assert.Empty(t, p.Pricing)
	assert.Empty(t, p.DocumentLinks)
	assert.Len(t, p.Availability.Days, 7)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := mustRaw(t, `{"userDirectory":{
		"userId":{"fullName":"Jane Q Public","phoneNumber":"415"},
		"fullServices":[{"name":"Refi","cost":"125.00"},{"name":"Bad","cost":"n/a"}],
		"capabilities":{"b":true,"a":false},
		"customFields":{"y":"2","x":"1"},
		"availability":{"friday":true}
	}}`)

	first := Normalize(raw)
	second := Normalize(raw)
	assert.Equal(t, first, second)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func toggleNames(in []domain.Toggle) []string {
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, t.Name)
	}
	return out
}
