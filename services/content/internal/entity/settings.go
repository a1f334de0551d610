package entity

import "time"

type SiteSettings struct {
	LogoText        string    `json:"logo_text"`
	LogoImage       string    `json:"logo_image"`
	UseLogoImage    bool      `json:"use_logo_image"`
	FacebookURL     string    `json:"facebook_url"`
	TwitterURL      string    `json:"twitter_url"`
	InstagramURL    string    `json:"instagram_url"`
	TiktokURL       string    `json:"tiktok_url"`
	YoutubeURL      string    `json:"youtube_url"`
	LinkedinURL     string    `json:"linkedin_url"`
	FooterAboutText string    `json:"footer_about_text"`
	ContactEmail    string    `json:"contact_email"`
	SEOTitle        string    `json:"seo_title"`
	SEODescription  string    `json:"seo_description"`
	SEOKeywords     string    `json:"seo_keywords"`
	HeroTitle       string    `json:"hero_title"`
	HeroDescription string    `json:"hero_description"`
	TermsContent    string    `json:"terms_content"`
	PrivacyContent  string    `json:"privacy_content"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SettingsPatch struct {
	LogoText        *string `json:"logo_text"`
	LogoImage       *string `json:"logo_image"`
	UseLogoImage    *bool   `json:"use_logo_image"`
	FacebookURL     *string `json:"facebook_url"`
	TwitterURL      *string `json:"twitter_url"`
	InstagramURL    *string `json:"instagram_url"`
	TiktokURL       *string `json:"tiktok_url"`
	YoutubeURL      *string `json:"youtube_url"`
	LinkedinURL     *string `json:"linkedin_url"`
	FooterAboutText *string `json:"footer_about_text"`
	ContactEmail    *string `json:"contact_email"`
	SEOTitle        *string `json:"seo_title"`
	SEODescription  *string `json:"seo_description"`
	SEOKeywords     *string `json:"seo_keywords"`
	HeroTitle       *string `json:"hero_title"`
	HeroDescription *string `json:"hero_description"`
	TermsContent    *string `json:"terms_content"`
	PrivacyContent  *string `json:"privacy_content"`
}

// Apply copies every non-nil patch field onto s.
func (p SettingsPatch) Apply(s *SiteSettings) {
	setString(&s.LogoText, p.LogoText)
	setString(&s.LogoImage, p.LogoImage)
	if p.UseLogoImage != nil {
		s.UseLogoImage = *p.UseLogoImage
	}
	setString(&s.FacebookURL, p.FacebookURL)
	setString(&s.TwitterURL, p.TwitterURL)
	setString(&s.InstagramURL, p.InstagramURL)
	setString(&s.TiktokURL, p.TiktokURL)
	setString(&s.YoutubeURL, p.YoutubeURL)
	setString(&s.LinkedinURL, p.LinkedinURL)
	setString(&s.FooterAboutText, p.FooterAboutText)
	setString(&s.ContactEmail, p.ContactEmail)
	setString(&s.SEOTitle, p.SEOTitle)
	setString(&s.SEODescription, p.SEODescription)
	setString(&s.SEOKeywords, p.SEOKeywords)
	setString(&s.HeroTitle, p.HeroTitle)
	setString(&s.HeroDescription, p.HeroDescription)
	setString(&s.TermsContent, p.TermsContent)
	setString(&s.PrivacyContent, p.PrivacyContent)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// DefaultSiteSettings is the copy a fresh installation starts with.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		LogoText:        "Kitchen Cursor",
		FooterAboutText: "Discover in-depth product reviews, expert insights, and buying guides to help you make informed decisions on the products that matter most. From kitchen gadgets to tech gear, we test everything so you don't have to.",
		ContactEmail:    "contact@kitchencursor.com",
		SEOTitle:        "Kitchen Cursor - Product Reviews & Tech Blog",
		SEODescription:  "Discover in-depth product reviews, tech insights, and buying guides to help you make informed decisions.",
		SEOKeywords:     "product reviews, tech blog, buying guides, affiliate marketing",
		HeroTitle:       "Discover Amazing Products",
		HeroDescription: "In-depth reviews, expert insights, and buying guides to help you make informed decisions on the products that matter most.",
		TermsContent:    defaultTerms,
		PrivacyContent:  defaultPrivacy,
	}
}

const defaultTerms = `## Terms of Use

Welcome to Kitchen Cursor. By accessing our website, you agree to these terms and conditions.

### 1. Acceptance of Terms
By using this website, you accept and agree to be bound by the terms and provision of this agreement.

### 2. Use License
Permission is granted to temporarily download one copy of the materials on Kitchen Cursor's website for personal, non-commercial transitory viewing only.

### 3. Disclaimer
The materials on Kitchen Cursor's website are provided on an 'as is' basis. Kitchen Cursor makes no warranties, expressed or implied.

### 4. Limitations
In no event shall Kitchen Cursor or its suppliers be liable for any damages arising out of the use or inability to use the materials on Kitchen Cursor's website.

### 5. Links
Kitchen Cursor has not reviewed all of the sites linked to its website and is not responsible for the contents of any such linked site.

### 6. Modifications
Kitchen Cursor may revise these terms of use for its website at any time without notice.`

const defaultPrivacy = `## Privacy Policy

Your privacy is important to us. This privacy policy explains how we collect, use, and protect your information.

### 1. Information We Collect
We collect information you provide directly to us, such as when you subscribe to our newsletter or contact us.

### 2. How We Use Your Information
- Provide, maintain, and improve our services
- Respond to your comments, questions, and requests
- Communicate with you about products, services, offers, and events

### 3. Information Sharing
We do not sell, trade, or otherwise transfer your personally identifiable information to third parties without your consent.

### 4. Cookies
We use cookies and similar tracking technologies to track activity on our service.

### 5. Affiliate Links
Some links on this site are affiliate links. We may earn a commission when you buy through them, at no extra cost to you.

### 6. Contact Us
If you have any questions about this Privacy Policy, please contact us at the email address provided on our website.`
