package content

import (
	"github.com/ngenohkevin/maishamaua/internal/strapi"
)

// Bundled copies of the bootstrap dataset, served whenever the CMS is
// unreachable at render time. Image URLs point at the statically hosted
// assets so a CMS outage never breaks the page.

// FallbackCategories returns the static category set.
func FallbackCategories() []strapi.Category {
	return []strapi.Category{
		{ID: 1, Name: "Standard Bouquets", Slug: "standard-bouquets", Description: "Our regular collection of beautiful mixed bouquets", SortOrder: 1},
		{ID: 2, Name: "Custom Orders", Slug: "custom-orders", Description: "Specialty bouquets requiring advance orders", SortOrder: 2},
	}
}

// FallbackProducts returns the static standard bouquet list.
func FallbackProducts() []strapi.Product {
	category := &strapi.Category{ID: 1, Name: "Standard Bouquets", Slug: "standard-bouquets", SortOrder: 1}
	return []strapi.Product{
		{ID: 1, Name: "Economy Bouquet", Slug: "economy-bouquet", Price: 1200, Description: "Beautiful starter arrangement", Size: strapi.SizeSmall, SortOrder: 1, Featured: true, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/warm-bouquet.jpeg", AlternativeText: "Economy Bouquet"}}},
		{ID: 2, Name: "Small Mixed Bouquet", Slug: "small-mixed-bouquet", Price: 1500, Description: "Lovely mixed flower selection", Size: strapi.SizeSmall, SortOrder: 2, Featured: true, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/autumn-bloom.jpeg", AlternativeText: "Small Mixed Bouquet"}}},
		{ID: 3, Name: "Medium Mixed Bouquet", Slug: "medium-mixed-bouquet", Price: 2300, Description: "Perfect balance of blooms", Size: strapi.SizeMedium, SortOrder: 3, Featured: true, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/pink-roses.jpeg", AlternativeText: "Medium Mixed Bouquet"}}},
		{ID: 4, Name: "Large Mixed Bouquet", Slug: "large-mixed-bouquet", Price: 3000, Description: "Generous flower arrangement", Size: strapi.SizeLarge, SortOrder: 4, Featured: true, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/colorful-mix.jpeg", AlternativeText: "Large Mixed Bouquet"}}},
		{ID: 5, Name: "Extra Large Bouquet", Slug: "extra-large-bouquet", Price: 4500, Description: "Stunning statement piece", Size: strapi.SizeExtraLarge, SortOrder: 5, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/purple-elegance.jpeg", AlternativeText: "Extra Large Bouquet"}}},
		{ID: 6, Name: "Blast Bouquet", Slug: "blast-bouquet", Price: 6000, Description: "Impressive floral explosion", Size: strapi.SizeExtraLarge, SortOrder: 6, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/sunflower-mix.jpeg", AlternativeText: "Blast Bouquet"}}},
		{ID: 7, Name: "Premium Beauty", Slug: "premium-beauty", Price: 10000, Description: "Luxurious premium collection", Size: strapi.SizeExtraLarge, SortOrder: 7, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/hero-bouquet.jpeg", AlternativeText: "Premium Beauty"}}},
		{ID: 8, Name: "Just For You", Slug: "just-for-you", Price: 12000, Description: "Ultimate luxury bouquet", Size: strapi.SizeExtraLarge, SortOrder: 8, Available: true, Category: category, Images: []strapi.Image{{URL: "/images/green-yellow.jpeg", AlternativeText: "Just For You"}}},
	}
}

// FallbackCustomProducts returns the static custom-order bouquets. Prices
// are starting estimates.
func FallbackCustomProducts() []strapi.Product {
	category := &strapi.Category{ID: 2, Name: "Custom Orders", Slug: "custom-orders", SortOrder: 2}
	return []strapi.Product{
		{ID: 9, Name: "Money Bouquet", Slug: "money-bouquet", Price: 5000, Description: "Real currency beautifully arranged with flowers", Size: strapi.SizeCustom, SortOrder: 1, Available: true, CustomOrder: true, Category: category, Images: []strapi.Image{{URL: "/images/money_bouquet.jpeg", AlternativeText: "Money Bouquet"}}},
		{ID: 10, Name: "Lilies Only", Slug: "lilies-only", Price: 4000, Description: "Elegant pure lily arrangement", Size: strapi.SizeCustom, SortOrder: 2, Available: true, CustomOrder: true, Category: category, Images: []strapi.Image{{URL: "/images/hero-bouquet.jpeg", AlternativeText: "Lilies Only"}}},
		{ID: 11, Name: "Sunflowers Only", Slug: "sunflowers-only", Price: 3500, Description: "Cheerful sunflower collection", Size: strapi.SizeCustom, SortOrder: 3, Available: true, CustomOrder: true, Category: category, Images: []strapi.Image{{URL: "/images/sunflower-mix.jpeg", AlternativeText: "Sunflowers Only"}}},
		{ID: 12, Name: "Peonies Only", Slug: "peonies-only", Price: 5000, Description: "Romantic peony bouquet", Size: strapi.SizeCustom, SortOrder: 4, Available: true, CustomOrder: true, Category: category, Images: []strapi.Image{{URL: "/images/pink-roses.jpeg", AlternativeText: "Peonies Only"}}},
	}
}

// FallbackGalleryImages returns the static gallery set.
func FallbackGalleryImages() []strapi.GalleryImage {
	entries := []struct {
		title    string
		category string
		url      string
	}{
		{"Beautiful bouquet arrangement", strapi.GalleryArrangements, "/images/photo_2025-12-31 10.54.06.jpeg"},
		{"Fresh flower arrangement", strapi.GalleryDaily, "/images/photo_2025-12-31 11.23.08.jpeg"},
		{"Colorful mixed bouquet", strapi.GalleryArrangements, "/images/photo_2025-12-31 11.23.11.jpeg"},
		{"Elegant flower display", strapi.GallerySpecial, "/images/photo_2025-12-31 11.23.14.jpeg"},
		{"Premium bouquet collection", strapi.GallerySpecial, "/images/photo_2025-12-31 11.23.34.jpeg"},
		{"Romantic flower arrangement", strapi.GalleryWeddings, "/images/photo_2025-12-31 11.23.37.jpeg"},
		{"Autumn inspired bouquet", strapi.GalleryDaily, "/images/photo_2025-12-31 11.23.43.jpeg"},
		{"Vibrant flower mix", strapi.GalleryArrangements, "/images/photo_2025-12-31 11.23.47.jpeg"},
		{"Special occasion flowers", strapi.GalleryEvents, "/images/photo_2025-12-31 11.23.50.jpeg"},
		{"Celebration bouquet", strapi.GalleryEvents, "/images/photo_2025-12-31 11.23.53.jpeg"},
	}

	images := make([]strapi.GalleryImage, 0, len(entries))
	for i, e := range entries {
		images = append(images, strapi.GalleryImage{
			ID:              i + 1,
			Title:           e.title,
			GalleryCategory: e.category,
			SortOrder:       i + 1,
			Featured:        i+1 <= 8,
			Image:           &strapi.Image{URL: e.url, AlternativeText: e.title},
		})
	}
	return images
}

// FallbackSiteSettings returns the static site settings.
func FallbackSiteSettings() *strapi.SiteSettings {
	return &strapi.SiteSettings{
		BusinessName:      "Maisha Maua",
		Tagline:           "Give them their flowers while they're still here",
		Description:       "Fresh flowers and customized bouquets in Nairobi, Kenya. We specialize in beautiful arrangements for all occasions.",
		Phone:             "+254725496220",
		WhatsappLink:      "https://wa.me/message/CRZL573DJ5NSF1",
		Email:             "hello@maishamaua.co.ke",
		Address:           "Ruaka, Nairobi, Kenya",
		Instagram:         "https://www.instagram.com/maishamaua.flower.shop.ruaka",
		Facebook:          "https://www.facebook.com/share/1ByLchvJvv/",
		Tiktok:            "https://www.tiktok.com/@maisha.maua",
		HeroTitle:         "Celebrate Life With Flowers",
		HeroSubtitle:      "Why wait for a special occasion? Show love, gratitude, and appreciation with customized bouquets and gifts — while they are still here.",
		PhilosophyTitle:   "Our Philosophy",
		PhilosophyContent: "At Maisha Maua, we believe that life's most meaningful moments deserve to be celebrated while people are still here. Flowers and gifts are not just for special occasions — they are a way to express love, gratitude, and appreciation in real time. We specialize in customized bouquets thoughtfully designed to reflect the personality, preferences, and purpose of each recipient.",
		FooterText:        "Flowers for life's beautiful moments — not for farewells.",
		Logo:              &strapi.Image{URL: "/images/logo.jpeg", AlternativeText: "Maisha Maua"},
		HeroImage:         &strapi.Image{URL: "/images/hero-bouquet.jpeg", AlternativeText: "Hero bouquet"},
	}
}
