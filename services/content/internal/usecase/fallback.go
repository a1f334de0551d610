package usecase

import (
	"fmt"
	"html"

	"affiliate-blog/services/content/internal/entity"
)

// FallbackArticle is the templated article used when text generation fails.
// It depends only on topic.
func FallbackArticle(topic string) *entity.Article {
	t := html.EscapeString(topic)
	return &entity.Article{
		Title:   fmt.Sprintf("Ultimate Guide to %s", topic),
		Excerpt: fmt.Sprintf("Discover everything you need to know about %s in this comprehensive guide.", topic),
		Content: fmt.Sprintf(`<h1>Ultimate Guide to %[1]s</h1>
<p>This is a comprehensive guide about %[1]s. We'll cover everything you need to know.</p>
<h2>What is %[1]s?</h2>
<p>%[1]s is an important topic that many people are interested in learning about.</p>
<h2>Key Features</h2>
<ul>
<li>Important feature 1</li>
<li>Important feature 2</li>
<li>Important feature 3</li>
</ul>
<h2>Conclusion</h2>
<p>In conclusion, %[1]s is a fascinating subject with many applications and benefits.</p>`, t),
		Provenance: entity.ProvenanceFallback,
	}
}
