package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsPatch_Apply(t *testing.T) {
	s := DefaultSiteSettings()
	title := "Gadget Garage"
	useLogo := true
	empty := ""

	SettingsPatch{HeroTitle: &title, UseLogoImage: &useLogo, ContactEmail: &empty}.Apply(&s)

	assert.Equal(t, "Gadget Garage", s.HeroTitle)
	assert.True(t, s.UseLogoImage)
	assert.Equal(t, "", s.ContactEmail)
	assert.Equal(t, "Kitchen Cursor", s.LogoText)
}

func TestDefaultSiteSettings(t *testing.T) {
	s := DefaultSiteSettings()
	assert.Equal(t, "contact@kitchencursor.com", s.ContactEmail)
	assert.Contains(t, s.TermsContent, "## Terms of Use")
	assert.Contains(t, s.PrivacyContent, "## Privacy Policy")
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("connection refused")

	internal := &InternalError{Op: "create post", Err: cause}
	assert.True(t, IsInternal(internal))
	assert.ErrorIs(t, internal, cause)

	external := &ExternalServiceError{Service: "text generator", Err: cause}
	assert.True(t, IsExternal(external))
	assert.False(t, IsInternal(external))

	assert.Equal(t, "topic: must not be empty", NewValidationError("topic", "must not be empty").Error())
}
