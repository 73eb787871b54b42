package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notary-profile/internal/domain"
)

func TestRenderLoaded(t *testing.T) {
	p := domain.Profile{
		Name:      "Jane Q Public",
		FirstName: "Jane",
		LastName:  "Q Public",
		Websites:  []string{"https://www.example.com"},
		Availability: domain.Availability{
			Days:  []domain.Toggle{{Name: "Mon", Enabled: true}},
			Hours: []domain.Toggle{{Name: "AM"}},
			Notes: "Weekdays Mon-Fri 10 AM-6 PM",
		},
	}
	html, err := RenderString(domain.ViewState{Status: domain.StatusLoaded, Profile: &p}, true)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Jane Q Public</h1>")
	assert.Contains(t, html, `<span class="initials">JQP</span>`)
	assert.Contains(t, html, "example.com</a>")
	assert.Contains(t, html, "No profile data available")
	assert.Contains(t, html, `action="/contact"`)
	assert.Contains(t, html, "Weekdays Mon-Fri 10 AM-6 PM")
	assert.Contains(t, html, "<style>")
}

func TestRenderError(t *testing.T) {
	s := domain.ViewState{Status: domain.StatusError, Message: "Failed to fetch profile data: 503 Service Unavailable"}

	html, err := RenderString(s, true)
	require.NoError(t, err)
	assert.Contains(t, html, "Failed to fetch profile data: 503 Service Unavailable")
	assert.Contains(t, html, "Try again")

	static, err := RenderString(s, false)
	require.NoError(t, err)
	assert.NotContains(t, static, "Try again")
}

func TestRenderEmptyAndLoading(t *testing.T) {
	html, err := RenderString(domain.ViewState{Status: domain.StatusEmpty}, false)
	require.NoError(t, err)
	assert.Contains(t, html, "No profile data available")
	assert.NotContains(t, html, "<h1>")

	html, err = RenderString(domain.ViewState{Status: domain.StatusLoading}, false)
	require.NoError(t, err)
	assert.Contains(t, html, "Loading profile...")
}

func TestRenderSampleBanner(t *testing.T) {
	p := domain.Profile{Name: "Sample Notary", Sample: true}
	html, err := RenderString(domain.ViewState{Status: domain.StatusEmpty, Profile: &p}, false)
	require.NoError(t, err)
	assert.Contains(t, html, "Sample profile")
	assert.Contains(t, html, "<h1>Sample Notary</h1>")
}
