package models

import "time"

// SiteSettingsID is the fixed primary key of the settings singleton row.
const SiteSettingsID uint = 1

type SiteSettings struct {
	ID              uint      `gorm:"primaryKey;autoIncrement:false" json:"id"`
	LogoText        string    `gorm:"type:varchar(255)" json:"logo_text"`
	LogoImage       string    `gorm:"type:varchar(1000)" json:"logo_image"`
	UseLogoImage    bool      `gorm:"default:false" json:"use_logo_image"`
	FacebookURL     string    `gorm:"column:facebook_url;type:varchar(500)" json:"facebook_url"`
	TwitterURL      string    `gorm:"column:twitter_url;type:varchar(500)" json:"twitter_url"`
	InstagramURL    string    `gorm:"column:instagram_url;type:varchar(500)" json:"instagram_url"`
	TiktokURL       string    `gorm:"column:tiktok_url;type:varchar(500)" json:"tiktok_url"`
	YoutubeURL      string    `gorm:"column:youtube_url;type:varchar(500)" json:"youtube_url"`
	LinkedinURL     string    `gorm:"column:linkedin_url;type:varchar(500)" json:"linkedin_url"`
	FooterAboutText string    `gorm:"type:text" json:"footer_about_text"`
	ContactEmail    string    `gorm:"type:varchar(255)" json:"contact_email"`
	SEOTitle        string    `gorm:"column:seo_title;type:varchar(255)" json:"seo_title"`
	SEODescription  string    `gorm:"column:seo_description;type:text" json:"seo_description"`
	SEOKeywords     string    `gorm:"column:seo_keywords;type:text" json:"seo_keywords"`
	HeroTitle       string    `gorm:"type:varchar(255)" json:"hero_title"`
	HeroDescription string    `gorm:"type:text" json:"hero_description"`
	TermsContent    string    `gorm:"type:text" json:"terms_content"`
	PrivacyContent  string    `gorm:"type:text" json:"privacy_content"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
