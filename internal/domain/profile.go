package domain

import "github.com/shopspring/decimal"

// Profile is the canonical, display-ready view of one directory record.
// It is built once per fetch cycle and replaced wholesale on refetch.
type Profile struct {
	Name          string `json:"name"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	CompanyName   string `json:"companyName"`
	BusinessSince string `json:"businessSince"`
	ProfileImage  string `json:"profileImage"`
	Introduction  string `json:"introduction"`

	Email     string        `json:"email"`
	WorkEmail string        `json:"workEmail"`
	Phones    []PhoneNumber `json:"phones"`

	BillingAddress  *Address `json:"billingAddress,omitempty"`
	ShippingAddress *Address `json:"shippingAddress,omitempty"`

	Licenses         []License         `json:"licenses"`
	Insurances       []Insurance       `json:"insurances"`
	BackgroundChecks []BackgroundCheck `json:"backgroundChecks"`
	Pricing          []PricingItem     `json:"pricing"`

	Languages        []string          `json:"languages"`
	Websites         []string          `json:"websites"`
	CustomFields     []CustomField     `json:"customFields"`
	Capabilities     []Capability      `json:"capabilities"`
	Availability     Availability      `json:"availability"`
	DocumentLinks    []DocumentLink    `json:"documentLinks"`
	ServiceableAreas []ServiceableArea `json:"serviceableAreas"`

	// Sample marks the built-in demo profile so it is never mistaken for a fetched record.
	Sample bool `json:"sample,omitempty"`
}

type PhoneChannel string

const (
	ChannelPhone     PhoneChannel = "Phone"
	ChannelOffice    PhoneChannel = "Office"
	ChannelMobile    PhoneChannel = "Mobile"
	ChannelHome      PhoneChannel = "Home"
	ChannelAlternate PhoneChannel = "Alternate"
)

type PhoneNumber struct {
	Channel PhoneChannel `json:"channel"`
	Number  string       `json:"number"`
}

type Address struct {
	Address1 string `json:"address1"`
	Address2 string `json:"address2"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

type License struct {
	State            string `json:"state"`
	CommissionNumber string `json:"commissionNumber,omitempty"`
	Expiration       string `json:"expiration"`
}

type Insurance struct {
	Carrier string `json:"carrier"`
	Amount  string `json:"amount"`
}

type BackgroundCheck struct {
	Provider        string `json:"provider"`
	Conducted       string `json:"conducted"`
	Expiration      string `json:"expiration"`
	ReferenceNumber string `json:"referenceNumber"`
}

// PricingItem amount is invalid (Valid=false) when the source cost is not a number.
type PricingItem struct {
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
}

type CustomField struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type Capability struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Toggle struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type Availability struct {
	Days  []Toggle `json:"days"`
	Hours []Toggle `json:"hours"`
	Notes string   `json:"notes,omitempty"`
}

type DocumentLink struct {
	DocumentType string `json:"documentType"`
	URL          string `json:"url"`
	Description  string `json:"description"`
}

type ServiceableArea struct {
	CompleteAddress string `json:"completeAddress"`
	City            string `json:"city"`
	Area            string `json:"area"`
}

// PhoneFor returns the number recorded for channel. When the record only
// exposes a single generic number, that number answers for every channel.
func (p Profile) PhoneFor(channel PhoneChannel) string {
	var generic string
	for _, ph := range p.Phones {
		if ph.Channel == channel {
			return ph.Number
		}
		if ph.Channel == ChannelPhone && generic == "" {
			generic = ph.Number
		}
	}
	return generic
}

// Phone returns the generic number, or the first number of any channel.
func (p Profile) Phone() string {
	if n := p.PhoneFor(ChannelPhone); n != "" {
		return n
	}
	if len(p.Phones) > 0 {
		return p.Phones[0].Number
	}
	return ""
}

func (p Profile) Mobile() string    { return p.PhoneFor(ChannelMobile) }
func (p Profile) Office() string    { return p.PhoneFor(ChannelOffice) }
func (p Profile) Home() string      { return p.PhoneFor(ChannelHome) }
func (p Profile) Alternate() string { return p.PhoneFor(ChannelAlternate) }
