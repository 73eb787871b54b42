package formatters

import (
	"fmt"
	"strings"
	"unicode"

	"notary-profile/internal/domain"
)

type Row struct {
	Label string
	Value string
}

type Check struct {
	Label   string
	Checked bool
}

type Link struct {
	Label string
	URL   string
	Note  string
}

type Table struct {
	Header []string
	Rows   [][]string
}

// Section is one card of the profile page. Exactly one of Rows, Table,
// Checks, Links or Items is populated; Empty marks a card with no data.
type Section struct {
	Key    string
	Title  string
	Rows   []Row
	Table  *Table
	Checks []Check
	Links  []Link
	Items  []string
	Note   string
	Empty  bool
}

// View is the display-ready projection of a Profile shared by the HTML,
// terminal and TUI renderers. Sentinels are applied here, never stored.
type View struct {
	FullName     string
	Initials     string
	ProfileImage string
	Introduction string
	Sample       bool
	Sections     []Section
}

// BuildView projects p for display using the default labels.
func BuildView(p domain.Profile) View {
	labels := DefaultLabels()
	full := FullName(p.Name, p.FirstName, p.LastName)

	v := View{
		FullName:     full,
		Initials:     Initials(full),
		ProfileImage: p.ProfileImage,
		Introduction: OrNA(p.Introduction),
		Sample:       p.Sample,
	}

	v.Sections = append(v.Sections,
		Section{Key: SectionNameCompany, Rows: []Row{
			{"Name", full},
			{"Company Name", OrNA(p.CompanyName)},
			{"In Business Since", OrNA(p.BusinessSince)},
		}},
		phonesSection(p),
		addressSection(SectionBilling, p.BillingAddress),
		addressSection(SectionShipping, p.ShippingAddress),
		Section{Key: SectionEmails, Table: &Table{
			Header: []string{"Type", "Address"},
			Rows:   [][]string{{"Work", OrNA(Or(p.WorkEmail, p.Email))}},
		}},
		licensesSection(p.Licenses),
		pricingSection(p.Pricing),
		capabilitiesSection(p.Capabilities),
		availabilitySection(p.Availability),
		documentLinksSection(p.DocumentLinks),
		insurancesSection(p.Insurances),
		backgroundSection(p.BackgroundChecks),
		Section{Key: SectionLanguages, Items: p.Languages, Empty: len(p.Languages) == 0},
		websitesSection(p.Websites),
		customFieldsSection(p.CustomFields),
		areasSection(p.ServiceableAreas),
	)

	for i := range v.Sections {
		v.Sections[i].Title = labels[v.Sections[i].Key]
	}
	return v
}

func phonesSection(p domain.Profile) Section {
	s := Section{Key: SectionPhones, Empty: len(p.Phones) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"Type", "Number"}}
	for _, ph := range p.Phones {
		t.Rows = append(t.Rows, []string{string(ph.Channel), ph.Number})
	}
	s.Table = t
	return s
}

func addressSection(key string, a *domain.Address) Section {
	if a == nil {
		return Section{Key: key, Empty: true}
	}
	return Section{Key: key, Rows: []Row{
		{"Address 1", OrNA(a.Address1)},
		{"Address 2", a.Address2},
		{"City", OrNA(a.City)},
		{"State", OrNA(a.State)},
		{"Zip", OrNA(a.Zip)},
	}}
}

func licensesSection(in []domain.License) Section {
	s := Section{Key: SectionLicenses, Empty: len(in) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"State", "Comm.#", "Expiration"}}
	for _, l := range in {
		t.Rows = append(t.Rows, []string{l.State, OrNA(l.CommissionNumber), OrNA(l.Expiration)})
	}
	s.Table = t
	return s
}

func pricingSection(in []domain.PricingItem) Section {
	s := Section{Key: SectionPricing, Empty: len(in) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"Description", "Amount"}}
	for i, it := range in {
		t.Rows = append(t.Rows, []string{fmt.Sprintf("%d. %s", i+1, OrNA(it.Description)), Money(it.Amount)})
	}
	s.Table = t
	return s
}

func capabilitiesSection(in []domain.Capability) Section {
	s := Section{Key: SectionCapabilities, Empty: len(in) == 0}
	for _, c := range in {
		s.Checks = append(s.Checks, Check{Label: c.Name, Checked: c.Enabled})
	}
	return s
}

func availabilitySection(a domain.Availability) Section {
	s := Section{Key: SectionAvailability, Note: a.Notes}
	for _, d := range a.Days {
		s.Checks = append(s.Checks, Check{Label: d.Name, Checked: d.Enabled})
	}
	for _, h := range a.Hours {
		s.Checks = append(s.Checks, Check{Label: h.Name, Checked: h.Enabled})
	}
	s.Empty = len(s.Checks) == 0
	return s
}

func documentLinksSection(in []domain.DocumentLink) Section {
	s := Section{Key: SectionDocumentLinks, Empty: len(in) == 0}
	for _, d := range in {
		s.Links = append(s.Links, Link{Label: OrNA(d.DocumentType), URL: Href(d.URL), Note: d.Description})
	}
	return s
}

func insurancesSection(in []domain.Insurance) Section {
	s := Section{Key: SectionInsurances, Empty: len(in) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"Carrier", "Amount"}}
	for _, it := range in {
		t.Rows = append(t.Rows, []string{OrNA(it.Carrier), OrNA(it.Amount)})
	}
	s.Table = t
	return s
}

func backgroundSection(in []domain.BackgroundCheck) Section {
	s := Section{Key: SectionBackgroundChecks, Empty: len(in) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"Provider", "Conducted", "Expiration", "Reference #"}}
	for _, b := range in {
		t.Rows = append(t.Rows, []string{OrNA(b.Provider), OrNA(b.Conducted), OrNA(b.Expiration), OrNA(b.ReferenceNumber)})
	}
	s.Table = t
	return s
}

func websitesSection(in []string) Section {
	s := Section{Key: SectionWebsites, Empty: len(in) == 0}
	for _, w := range in {
		s.Links = append(s.Links, Link{Label: WebsiteLabel(w), URL: Href(w)})
	}
	return s
}

func customFieldsSection(in []domain.CustomField) Section {
	s := Section{Key: SectionCustomFields, Empty: len(in) == 0}
	for i, f := range in {
		s.Rows = append(s.Rows, Row{Label: CustomFieldLabel(f.Field, i), Value: OrNA(f.Value)})
	}
	return s
}

func areasSection(in []domain.ServiceableArea) Section {
	s := Section{Key: SectionServiceableAreas, Empty: len(in) == 0}
	if s.Empty {
		return s
	}
	t := &Table{Header: []string{"Address", "City", "Area"}}
	for _, a := range in {
		t.Rows = append(t.Rows, []string{OrNA(a.CompleteAddress), OrNA(a.City), OrNA(a.Area)})
	}
	s.Table = t
	return s
}

// CustomFieldLabel humanizes a source key ("preferredTitle" -> "Preferred
// Title"). Keys without any letter fall back to "Custom Field N".
func CustomFieldLabel(key string, index int) string {
	hasLetter := false
	for _, r := range key {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return fmt.Sprintf("Custom Field %d", index+1)
	}

	var words []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	prevLower := false
	for _, r := range key {
		switch {
		case r == '_' || r == '-' || unicode.IsSpace(r):
			flush()
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			flush()
		}
		cur = append(cur, r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	flush()

	for i, w := range words {
		rs := []rune(w)
		rs[0] = unicode.ToUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}
