package usecase

import (
	"strings"

	"notary-profile/internal/domain"
	"notary-profile/internal/model"
)

const (
	// UnknownName is stored when the record carries no full name.
	UnknownName = "Unknown"
	// DefaultLicenseState applies when a commission omits its state.
	DefaultLicenseState = "CA"
	// DefaultAvailabilityNotes is shown when the record has no notes field.
	DefaultAvailabilityNotes = "Weekdays Mon-Fri 10 AM-6 PM"
)

var weekdays = []struct{ key, label string }{
	{"monday", "Mon"},
	{"tuesday", "Tue"},
	{"wednesday", "Wed"},
	{"thursday", "Thu"},
	{"friday", "Fri"},
	{"saturday", "Sat"},
	{"sunday", "Sun"},
}

var periods = []struct{ key, label string }{
	{"am", "AM"},
	{"pm", "PM"},
}

var phoneSources = []struct {
	key     string
	channel domain.PhoneChannel
}{
	{"phoneNumber", domain.ChannelPhone},
	{"officeNumber", domain.ChannelOffice},
	{"mobileNumber", domain.ChannelMobile},
	{"homeNumber", domain.ChannelHome},
	{"alternateNumber", domain.ChannelAlternate},
}

// Normalize maps a raw directory payload into a Profile. It never fails:
// every absent, null or mistyped field degrades to an empty value.
func Normalize(raw model.RawDirectoryResponse) domain.Profile {
	doc := raw.Body
	dir, _ := asMap(lookup(doc, "$.userDirectory"))
	user, _ := asMap(lookup(doc, "$.userDirectory.userId"))

	p := emptyProfile()

	p.Name, p.FirstName, p.LastName = splitName(asString(user["fullName"]))
	p.CompanyName = firstString(dir, "companyName")
	p.BusinessSince = firstString(dir, "businessSince")
	p.ProfileImage = firstString(dir, "profileImage")
	if p.ProfileImage == "" {
		p.ProfileImage = firstString(user, "profileImage", "profilePicture")
	}
	p.Introduction = firstString(dir, "introduction", "bio")

	p.Email = firstString(user, "email")
	p.WorkEmail = firstString(dir, "workEmail")
	p.Phones = phones(user, dir)

	p.BillingAddress = address(lookup(doc, "$.userDirectory.billingAddress"))
	p.ShippingAddress = address(lookup(doc, "$.userDirectory.shippingAddress"))

	if c, ok := asMap(lookup(doc, "$.userDirectory.commisionDetails")); ok {
		p.Licenses = append(p.Licenses, license(c))
	}
	if c, ok := asMap(lookup(doc, "$.userDirectory.insuranceCheck")); ok {
		p.Insurances = append(p.Insurances, domain.Insurance{
			Carrier: firstString(c, "carrier", "insuranceCompany", "company"),
			Amount:  firstString(c, "amount", "coverageAmount", "coverage"),
		})
	}
	if c, ok := asMap(lookup(doc, "$.userDirectory.backgroundCheck")); ok {
		p.BackgroundChecks = append(p.BackgroundChecks, domain.BackgroundCheck{
			Provider:        firstString(c, "provider", "company"),
			Conducted:       formatDate(firstValue(c, "conducted", "conductedOn", "conductedDate")),
			Expiration:      formatDate(firstValue(c, "expiration", "expirationDate")),
			ReferenceNumber: firstString(c, "referenceNumber"),
		})
	}

	for _, it := range asSlice(lookup(doc, "$.userDirectory.fullServices")) {
		svc, ok := asMap(it)
		if !ok {
			continue
		}
		p.Pricing = append(p.Pricing, domain.PricingItem{
			Description: asString(svc["name"]),
			Amount:      parseDecimal(svc["cost"]),
		})
	}

	p.Languages = stringList(lookup(doc, "$.userDirectory.spokenLanguages"), "name", "language")
	p.Websites = stringList(lookup(doc, "$.userDirectory.websites"), "url")

	if m, ok := asMap(lookup(doc, "$.userDirectory.customFields")); ok {
		for _, k := range sortedKeys(m) {
			if strings.TrimSpace(k) == "" {
				continue
			}
			p.CustomFields = append(p.CustomFields, domain.CustomField{Field: k, Value: describe(m[k])})
		}
	}
	if m, ok := asMap(lookup(doc, "$.userDirectory.capabilities")); ok {
		for _, k := range sortedKeys(m) {
			if strings.TrimSpace(k) == "" {
				continue
			}
			p.Capabilities = append(p.Capabilities, domain.Capability{Name: strings.ToUpper(k), Enabled: asBool(m[k])})
		}
	}

	p.Availability = availability(lookup(doc, "$.userDirectory.availability"))

	for _, it := range asSlice(lookup(doc, "$.userDirectory.documentLinks")) {
		if m, ok := asMap(it); ok {
			p.DocumentLinks = append(p.DocumentLinks, domain.DocumentLink{
				DocumentType: firstString(m, "documentType"),
				URL:          firstString(m, "url"),
				Description:  firstString(m, "description"),
			})
		}
	}
	for _, it := range asSlice(lookup(doc, "$.userDirectory.serviceableAreas")) {
		if m, ok := asMap(it); ok {
			p.ServiceableAreas = append(p.ServiceableAreas, domain.ServiceableArea{
				CompleteAddress: firstString(m, "completeAddress"),
				City:            firstString(m, "city"),
				Area:            firstString(m, "area"),
			})
		}
	}

	return p
}

// emptyProfile is the Profile of a payload with no usable fields: every
// list is empty rather than nil and availability has its fixed shape.
func emptyProfile() domain.Profile {
	return domain.Profile{
		Name:             UnknownName,
		Phones:           []domain.PhoneNumber{},
		Licenses:         []domain.License{},
		Insurances:       []domain.Insurance{},
		BackgroundChecks: []domain.BackgroundCheck{},
		Pricing:          []domain.PricingItem{},
		Languages:        []string{},
		Websites:         []string{},
		CustomFields:     []domain.CustomField{},
		Capabilities:     []domain.Capability{},
		Availability:     availability(nil),
		DocumentLinks:    []domain.DocumentLink{},
		ServiceableAreas: []domain.ServiceableArea{},
	}
}

// splitName returns the stored name plus first token and remainder.
func splitName(full string) (name, first, last string) {
	tokens := strings.Fields(full)
	if len(tokens) == 0 {
		return UnknownName, "", ""
	}
	return strings.Join(tokens, " "), tokens[0], strings.Join(tokens[1:], " ")
}

// phones builds the sparse channel list; a number already listed under
// another channel is not repeated.
func phones(user, dir map[string]interface{}) []domain.PhoneNumber {
	out := []domain.PhoneNumber{}
	seen := map[string]bool{}
	for _, src := range phoneSources {
		n := firstString(user, src.key)
		if n == "" {
			n = firstString(dir, src.key)
		}
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, domain.PhoneNumber{Channel: src.channel, Number: n})
	}
	return out
}

func address(v interface{}) *domain.Address {
	m, ok := asMap(v)
	if !ok {
		return nil
	}
	return &domain.Address{
		Address1: firstString(m, "address1", "street", "addressLine1"),
		Address2: firstString(m, "address2", "addressLine2"),
		City:     firstString(m, "city"),
		State:    firstString(m, "state"),
		Zip:      firstString(m, "zip", "zipCode", "postalCode"),
	}
}

func license(c map[string]interface{}) domain.License {
	state := firstString(c, "commissionedState")
	if state == "" {
		state = DefaultLicenseState
	}
	return domain.License{
		State:            state,
		CommissionNumber: firstString(c, "commissionNumber"),
		Expiration:       formatDate(firstValue(c, "commissionExpiration", "expirationDate", "expiration")),
	}
}

func availability(v interface{}) domain.Availability {
	m, _ := asMap(v)
	a := domain.Availability{
		Days:  make([]domain.Toggle, 0, len(weekdays)),
		Hours: make([]domain.Toggle, 0, len(periods)),
		Notes: firstString(m, "notes"),
	}
	for _, d := range weekdays {
		a.Days = append(a.Days, domain.Toggle{Name: d.label, Enabled: asBool(m[d.key])})
	}
	for _, h := range periods {
		a.Hours = append(a.Hours, domain.Toggle{Name: h.label, Enabled: asBool(m[h.key])})
	}
	if a.Notes == "" {
		a.Notes = DefaultAvailabilityNotes
	}
	return a
}

// firstValue returns the first value among keys that is neither null nor blank text.
func firstValue(m map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		v := m[k]
		if v == nil {
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		return v
	}
	return nil
}
