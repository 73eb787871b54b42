package formatters

// Section keys used by every renderer.
const (
	SectionIntroduction     = "introduction"
	SectionNameCompany      = "name_company"
	SectionPhones           = "phone_numbers"
	SectionBilling          = "billing"
	SectionShipping         = "shipping"
	SectionEmails           = "email_addresses"
	SectionLicenses         = "state_licenses"
	SectionPricing          = "pricing"
	SectionCapabilities     = "capabilities"
	SectionAvailability     = "availability"
	SectionDocumentLinks    = "document_links"
	SectionInsurances       = "insurances"
	SectionBackgroundChecks = "background_checks"
	SectionLanguages        = "spoken_languages"
	SectionWebsites         = "websites"
	SectionCustomFields     = "custom_fields"
	SectionServiceableAreas = "serviceable_areas"
	SectionContact          = "send_email"
)

// NoData is shown in place of a section body that has nothing to list.
const NoData = "No profile data available"

// DefaultLabels returns the English section headings.
func DefaultLabels() map[string]string {
	return map[string]string{
		SectionIntroduction:     "Professional Introduction & Experience",
		SectionNameCompany:      "Name & Company",
		SectionPhones:           "Phone Numbers",
		SectionBilling:          "Billing",
		SectionShipping:         "Shipping",
		SectionEmails:           "Email Addresses",
		SectionLicenses:         "State Licenses",
		SectionPricing:          "Pricing Information",
		SectionCapabilities:     "Capabilities",
		SectionAvailability:     "Availability",
		SectionDocumentLinks:    "Document Links",
		SectionInsurances:       "Insurances",
		SectionBackgroundChecks: "Background Checks",
		SectionLanguages:        "Spoken Languages",
		SectionWebsites:         "Websites",
		SectionCustomFields:     "Custom Fields",
		SectionServiceableAreas: "Serviceable Areas",
		SectionContact:          "Send an E-mail",
	}
}
