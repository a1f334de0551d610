package persistent

import (
	"affiliate-blog/pkg/models"
	"affiliate-blog/services/content/internal/entity"
)

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:             m.ID,
		Title:          m.Title,
		Slug:           m.Slug,
		Excerpt:        m.Excerpt,
		Content:        m.Content,
		HeroImage:      m.HeroImage,
		Status:         entity.PostStatus(m.Status),
		SEOTitle:       m.SEOTitle,
		SEODescription: m.SEODescription,
		SEOKeywords:    m.SEOKeywords,
		FocusKeyword:   m.FocusKeyword,
		ReadingTime:    m.ReadingTime,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if len(m.ProductReviews) > 0 {
		post.ProductReviews = make([]entity.ProductReview, len(m.ProductReviews))
		for i := range m.ProductReviews {
			post.ProductReviews[i] = *ToReviewEntity(&m.ProductReviews[i])
		}
	}

	if len(m.FeaturedProducts) > 0 {
		post.FeaturedProducts = make([]entity.FeaturedProduct, len(m.FeaturedProducts))
		for i := range m.FeaturedProducts {
			post.FeaturedProducts[i] = *ToFeaturedProductEntity(&m.FeaturedProducts[i])
		}
	}

	return post
}

// ToPostModel maps the scalar columns only; associations are written by
// their own repositories.
func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	return &models.Post{
		ID:             e.ID,
		Title:          e.Title,
		Slug:           e.Slug,
		Excerpt:        e.Excerpt,
		Content:        e.Content,
		HeroImage:      e.HeroImage,
		Status:         string(e.Status),
		SEOTitle:       e.SEOTitle,
		SEODescription: e.SEODescription,
		SEOKeywords:    e.SEOKeywords,
		FocusKeyword:   e.FocusKeyword,
		ReadingTime:    e.ReadingTime,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToReviewEntity(m *models.ProductReview) *entity.ProductReview {
	if m == nil {
		return nil
	}

	review := &entity.ProductReview{
		ID:            m.ID,
		ProductTitle:  m.ProductTitle,
		ProductImage:  m.ProductImage,
		ProductLink:   m.ProductLink,
		Rating:        m.Rating,
		ReviewContent: m.ReviewContent,
		Status:        entity.ReviewStatus(m.Status),
		PostID:        m.PostID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if m.Post != nil {
		review.Post = &entity.PostRef{
			ID:    m.Post.ID,
			Title: m.Post.Title,
			Slug:  m.Post.Slug,
		}
	}

	return review
}

func ToReviewModel(e *entity.ProductReview) *models.ProductReview {
	if e == nil {
		return nil
	}

	return &models.ProductReview{
		ID:            e.ID,
		ProductTitle:  e.ProductTitle,
		ProductImage:  e.ProductImage,
		ProductLink:   e.ProductLink,
		Rating:        e.Rating,
		ReviewContent: e.ReviewContent,
		Status:        string(e.Status),
		PostID:        e.PostID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ToFeaturedProductEntity(m *models.FeaturedProduct) *entity.FeaturedProduct {
	if m == nil {
		return nil
	}

	return &entity.FeaturedProduct{
		ID:           m.ID,
		ProductName:  m.ProductName,
		ProductImage: m.ProductImage,
		ProductLink:  m.ProductLink,
		Price:        m.Price,
		Rating:       m.Rating,
		Description:  m.Description,
		PostID:       m.PostID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToFeaturedProductModel(e *entity.FeaturedProduct) *models.FeaturedProduct {
	if e == nil {
		return nil
	}

	return &models.FeaturedProduct{
		ID:           e.ID,
		ProductName:  e.ProductName,
		ProductImage: e.ProductImage,
		ProductLink:  e.ProductLink,
		Price:        e.Price,
		Rating:       e.Rating,
		Description:  e.Description,
		PostID:       e.PostID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToSettingsEntity(m *models.SiteSettings) *entity.SiteSettings {
	if m == nil {
		return nil
	}

	return &entity.SiteSettings{
		LogoText:        m.LogoText,
		LogoImage:       m.LogoImage,
		UseLogoImage:    m.UseLogoImage,
		FacebookURL:     m.FacebookURL,
		TwitterURL:      m.TwitterURL,
		InstagramURL:    m.InstagramURL,
		TiktokURL:       m.TiktokURL,
		YoutubeURL:      m.YoutubeURL,
		LinkedinURL:     m.LinkedinURL,
		FooterAboutText: m.FooterAboutText,
		ContactEmail:    m.ContactEmail,
		SEOTitle:        m.SEOTitle,
		SEODescription:  m.SEODescription,
		SEOKeywords:     m.SEOKeywords,
		HeroTitle:       m.HeroTitle,
		HeroDescription: m.HeroDescription,
		TermsContent:    m.TermsContent,
		PrivacyContent:  m.PrivacyContent,
		UpdatedAt:       m.UpdatedAt,
	}
}

// ToSettingsModel always targets the singleton row.
func ToSettingsModel(e *entity.SiteSettings) *models.SiteSettings {
	if e == nil {
		return nil
	}

	return &models.SiteSettings{
		ID:              models.SiteSettingsID,
		LogoText:        e.LogoText,
		LogoImage:       e.LogoImage,
		UseLogoImage:    e.UseLogoImage,
		FacebookURL:     e.FacebookURL,
		TwitterURL:      e.TwitterURL,
		InstagramURL:    e.InstagramURL,
		TiktokURL:       e.TiktokURL,
		YoutubeURL:      e.YoutubeURL,
		LinkedinURL:     e.LinkedinURL,
		FooterAboutText: e.FooterAboutText,
		ContactEmail:    e.ContactEmail,
		SEOTitle:        e.SEOTitle,
		SEODescription:  e.SEODescription,
		SEOKeywords:     e.SEOKeywords,
		HeroTitle:       e.HeroTitle,
		HeroDescription: e.HeroDescription,
		TermsContent:    e.TermsContent,
		PrivacyContent:  e.PrivacyContent,
		UpdatedAt:       e.UpdatedAt,
	}
}
