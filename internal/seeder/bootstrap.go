package seeder

import "github.com/ngenohkevin/maishamaua/internal/strapi"

// The fixed bootstrap dataset the seeding workflow inserts on first run.
// This is the same content the frontend bundles as fallback.

type bootstrapCategory struct {
	Name        string
	Slug        string
	Description string
	SortOrder   int
}

type bootstrapProduct struct {
	Name         string
	Price        int
	Description  string
	Size         string
	SortOrder    int
	CategorySlug string
	CustomOrder  bool
}

type bootstrapGalleryEntry struct {
	Title     string
	Category  string
	SortOrder int
}

type galleryImageFile struct {
	File     string
	Title    string
	Category string
}

var bootstrapCategories = []bootstrapCategory{
	{Name: "Standard Bouquets", Slug: "standard-bouquets", Description: "Our regular collection of beautiful mixed bouquets", SortOrder: 1},
	{Name: "Custom Orders", Slug: "custom-orders", Description: "Specialty bouquets requiring advance orders", SortOrder: 2},
}

var bootstrapProducts = []bootstrapProduct{
	{Name: "Economy Bouquet", Price: 1200, Description: "Beautiful starter arrangement", Size: strapi.SizeSmall, SortOrder: 1, CategorySlug: "standard-bouquets"},
	{Name: "Small Mixed Bouquet", Price: 1500, Description: "Lovely mixed flower selection", Size: strapi.SizeSmall, SortOrder: 2, CategorySlug: "standard-bouquets"},
	{Name: "Medium Mixed Bouquet", Price: 2300, Description: "Perfect balance of blooms", Size: strapi.SizeMedium, SortOrder: 3, CategorySlug: "standard-bouquets"},
	{Name: "Large Mixed Bouquet", Price: 3000, Description: "Generous flower arrangement", Size: strapi.SizeLarge, SortOrder: 4, CategorySlug: "standard-bouquets"},
	{Name: "Extra Large Bouquet", Price: 4500, Description: "Stunning statement piece", Size: strapi.SizeExtraLarge, SortOrder: 5, CategorySlug: "standard-bouquets"},
	{Name: "Blast Bouquet", Price: 6000, Description: "Impressive floral explosion", Size: strapi.SizeExtraLarge, SortOrder: 6, CategorySlug: "standard-bouquets"},
	{Name: "Premium Beauty", Price: 10000, Description: "Luxurious premium collection", Size: strapi.SizeExtraLarge, SortOrder: 7, CategorySlug: "standard-bouquets"},
	{Name: "Just For You", Price: 12000, Description: "Ultimate luxury bouquet", Size: strapi.SizeExtraLarge, SortOrder: 8, CategorySlug: "standard-bouquets"},
	{Name: "Money Bouquet", Price: 5000, Description: "Real currency beautifully arranged with flowers", Size: strapi.SizeCustom, SortOrder: 1, CategorySlug: "custom-orders", CustomOrder: true},
	{Name: "Lilies Only", Price: 4000, Description: "Elegant pure lily arrangement", Size: strapi.SizeCustom, SortOrder: 2, CategorySlug: "custom-orders", CustomOrder: true},
	{Name: "Sunflowers Only", Price: 3500, Description: "Cheerful sunflower collection", Size: strapi.SizeCustom, SortOrder: 3, CategorySlug: "custom-orders", CustomOrder: true},
	{Name: "Peonies Only", Price: 5000, Description: "Romantic peony bouquet", Size: strapi.SizeCustom, SortOrder: 4, CategorySlug: "custom-orders", CustomOrder: true},
}

// Metadata-only gallery entries; binaries are attached later through the
// gallery-images upload command or the CMS admin.
var bootstrapGalleryEntries = []bootstrapGalleryEntry{
	{Title: "Beautiful bouquet arrangement", Category: strapi.GalleryArrangements, SortOrder: 1},
	{Title: "Fresh flower arrangement", Category: strapi.GalleryDaily, SortOrder: 2},
	{Title: "Colorful mixed bouquet", Category: strapi.GalleryArrangements, SortOrder: 3},
	{Title: "Elegant flower display", Category: strapi.GallerySpecial, SortOrder: 4},
	{Title: "Premium bouquet collection", Category: strapi.GallerySpecial, SortOrder: 5},
	{Title: "Romantic flower arrangement", Category: strapi.GalleryWeddings, SortOrder: 6},
	{Title: "Autumn inspired bouquet", Category: strapi.GalleryDaily, SortOrder: 7},
	{Title: "Vibrant flower mix", Category: strapi.GalleryArrangements, SortOrder: 8},
	{Title: "Special occasion flowers", Category: strapi.GalleryEvents, SortOrder: 9},
	{Title: "Celebration bouquet", Category: strapi.GalleryEvents, SortOrder: 10},
}

var bootstrapSiteSettings = strapi.SiteSettingsInput{
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
}

// productImageFiles maps product slugs to local image file names.
var productImageFiles = map[string]string{
	"economy-bouquet":      "warm-bouquet.jpeg",
	"small-mixed-bouquet":  "autumn-bloom.jpeg",
	"medium-mixed-bouquet": "pink-roses.jpeg",
	"large-mixed-bouquet":  "colorful-mix.jpeg",
	"extra-large-bouquet":  "purple-elegance.jpeg",
	"blast-bouquet":        "sunflower-mix.jpeg",
	"premium-beauty":       "hero-bouquet.jpeg",
	"just-for-you":         "green-yellow.jpeg",
	"money-bouquet":        "money_bouquet.jpeg",
	"lilies-only":          "hero-bouquet.jpeg",
	"sunflowers-only":      "sunflower-mix.jpeg",
	"peonies-only":         "pink-roses.jpeg",
}

var galleryImageFiles = []galleryImageFile{
	{File: "photo_2025-12-31 10.54.06.jpeg", Title: "Beautiful bouquet arrangement", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.23.08.jpeg", Title: "Fresh flower arrangement", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.23.11.jpeg", Title: "Colorful mixed bouquet", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.23.14.jpeg", Title: "Elegant flower display", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.23.34.jpeg", Title: "Premium bouquet collection", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.23.37.jpeg", Title: "Romantic flower arrangement", Category: strapi.GalleryWeddings},
	{File: "photo_2025-12-31 11.23.43.jpeg", Title: "Autumn inspired bouquet", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.23.47.jpeg", Title: "Vibrant flower mix", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.23.50.jpeg", Title: "Special occasion flowers", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 11.23.53.jpeg", Title: "Celebration bouquet", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 11.23.56.jpeg", Title: "Gift-ready arrangement", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.24.02.jpeg", Title: "Handcrafted bouquet", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.24.05.jpeg", Title: "Fresh floral design", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.24.07.jpeg", Title: "Artistic flower arrangement", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.24.11.jpeg", Title: "Luxury flower collection", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.24.14.jpeg", Title: "Thoughtful bouquet design", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.24.17.jpeg", Title: "Custom flower arrangement", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.24.21.jpeg", Title: "Colorful celebration flowers", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 11.24.24.jpeg", Title: "Beautiful bloom selection", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.24.26.jpeg", Title: "Special delivery bouquet", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.24.29.jpeg", Title: "Premium floral design", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.24.32.jpeg", Title: "Elegant flower gift", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 11.24.35.jpeg", Title: "Fresh bouquet arrangement", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 11.24.42.jpeg", Title: "Stunning flower display", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 11.24.45.jpeg", Title: "Beautiful floral creation", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.33.07.jpeg", Title: "Appreciation bouquet", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.33.09.jpeg", Title: "Milestone celebration flowers", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 12.33.13.jpeg", Title: "Green and yellow arrangement", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.33.16.jpeg", Title: "Warm toned bouquet", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.33.18.jpeg", Title: "Fresh flower selection", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.33.21.jpeg", Title: "Custom designed bouquet", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.33.24.jpeg", Title: "Elegant floral gift", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 12.33.26.jpeg", Title: "Premium flower arrangement", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 12.33.29.jpeg", Title: "Beautiful bloom bouquet", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.33.32.jpeg", Title: "Celebration ready flowers", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 12.33.39.jpeg", Title: "Fresh floral creation", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.33.49.jpeg", Title: "Pink roses arrangement", Category: strapi.GalleryWeddings},
	{File: "photo_2025-12-31 12.33.53.jpeg", Title: "Special occasion bouquet", Category: strapi.GalleryEvents},
	{File: "photo_2025-12-31 12.33.56.jpeg", Title: "Thoughtful flower gift", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.34.00.jpeg", Title: "Sunflower mix bouquet", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.34.06.jpeg", Title: "Handcrafted floral design", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.34.10.jpeg", Title: "Fresh flower arrangement", Category: strapi.GalleryDaily},
	{File: "photo_2025-12-31 12.34.14.jpeg", Title: "Beautiful bouquet creation", Category: strapi.GalleryArrangements},
	{File: "photo_2025-12-31 12.34.18.jpeg", Title: "Elegant flower selection", Category: strapi.GallerySpecial},
	{File: "photo_2025-12-31 12.34.23.jpeg", Title: "Premium floral gift", Category: strapi.GallerySpecial},
}
