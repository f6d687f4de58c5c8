package strapi

// Image is a CMS media asset. URLs may be relative to the CMS host.
type Image struct {
	ID              int           `json:"id"`
	DocumentID      string        `json:"documentId"`
	Name            string        `json:"name,omitempty"`
	URL             string        `json:"url"`
	AlternativeText string        `json:"alternativeText,omitempty"`
	Width           int           `json:"width,omitempty"`
	Height          int           `json:"height,omitempty"`
	Formats         *ImageFormats `json:"formats,omitempty"`
}

// ImageFormats holds the resized renditions the CMS generates on upload.
type ImageFormats struct {
	Thumbnail *ImageFormat `json:"thumbnail,omitempty"`
	Small     *ImageFormat `json:"small,omitempty"`
	Medium    *ImageFormat `json:"medium,omitempty"`
	Large     *ImageFormat `json:"large,omitempty"`
}

type ImageFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Category struct {
	ID          int    `json:"id"`
	DocumentID  string `json:"documentId"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       *Image `json:"image,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// Product sizes as defined by the CMS content type.
const (
	SizeSmall      = "small"
	SizeMedium     = "medium"
	SizeLarge      = "large"
	SizeExtraLarge = "extra-large"
	SizeCustom     = "custom"
)

type Product struct {
	ID               int       `json:"id"`
	DocumentID       string    `json:"documentId"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Price            int       `json:"price"`
	CompareAtPrice   int       `json:"compareAtPrice,omitempty"`
	Images           []Image   `json:"images,omitempty"`
	Category         *Category `json:"category,omitempty"`
	Featured         bool      `json:"featured"`
	Available        bool      `json:"available"`
	SortOrder        int       `json:"sortOrder"`
	Size             string    `json:"size,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
	// CustomOrder marks arrangements that need advance ordering; the price
	// is a starting estimate rather than a final amount.
	CustomOrder bool `json:"customOrder"`
}

// Gallery categories as defined by the CMS content type.
const (
	GalleryWeddings     = "weddings"
	GalleryEvents       = "events"
	GalleryDaily        = "daily"
	GallerySpecial      = "special"
	GalleryArrangements = "arrangements"
)

type GalleryImage struct {
	ID              int    `json:"id"`
	DocumentID      string `json:"documentId"`
	Title           string `json:"title"`
	Image           *Image `json:"image,omitempty"`
	Alt             string `json:"alt,omitempty"`
	GalleryCategory string `json:"galleryCategory"`
	Featured        bool   `json:"featured"`
	SortOrder       int    `json:"sortOrder"`
}

type Testimonial struct {
	ID            int    `json:"id"`
	DocumentID    string `json:"documentId"`
	CustomerName  string `json:"customerName"`
	CustomerTitle string `json:"customerTitle,omitempty"`
	Content       string `json:"content"`
	Rating        int    `json:"rating"`
	Image         *Image `json:"image,omitempty"`
	Featured      bool   `json:"featured"`
	SortOrder     int    `json:"sortOrder"`
}

// BusinessHours is one row of the weekly schedule component.
type BusinessHours struct {
	Day    string `json:"day"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// SiteSettings is the single-type record holding every site-wide field.
type SiteSettings struct {
	ID                int             `json:"id"`
	DocumentID        string          `json:"documentId"`
	BusinessName      string          `json:"businessName"`
	Tagline           string          `json:"tagline,omitempty"`
	Description       string          `json:"description,omitempty"`
	Phone             string          `json:"phone,omitempty"`
	WhatsappLink      string          `json:"whatsappLink,omitempty"`
	Email             string          `json:"email,omitempty"`
	Address           string          `json:"address,omitempty"`
	Instagram         string          `json:"instagram,omitempty"`
	Facebook          string          `json:"facebook,omitempty"`
	Tiktok            string          `json:"tiktok,omitempty"`
	BusinessHours     []BusinessHours `json:"businessHours,omitempty"`
	HeroTitle         string          `json:"heroTitle,omitempty"`
	HeroSubtitle      string          `json:"heroSubtitle,omitempty"`
	HeroImage         *Image          `json:"heroImage,omitempty"`
	PhilosophyTitle   string          `json:"philosophyTitle,omitempty"`
	PhilosophyContent string          `json:"philosophyContent,omitempty"`
	PhilosophyImage   *Image          `json:"philosophyImage,omitempty"`
	FooterText        string          `json:"footerText,omitempty"`
	Logo              *Image          `json:"logo,omitempty"`
}

// Envelope is the response wrapper every CMS endpoint uses.
type Envelope[T any] struct {
	Data T     `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page      int `json:"page,omitempty"`
	PageSize  int `json:"pageSize,omitempty"`
	PageCount int `json:"pageCount,omitempty"`
	Total     int `json:"total,omitempty"`
	Limit     int `json:"limit,omitempty"`
}

// CategoryInput is the write payload for category creation.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	SortOrder   int    `json:"sortOrder"`
}

// ProductInput is the write payload for product creation. Category carries
// the numeric id of an existing category record.
type ProductInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	Size        string `json:"size,omitempty"`
	SortOrder   int    `json:"sortOrder"`
	Featured    bool   `json:"featured"`
	Available   bool   `json:"available"`
	CustomOrder bool   `json:"customOrder"`
	Category    int    `json:"category"`
}

// GalleryImageInput is the write payload for gallery entry creation. Image
// is the numeric id of an uploaded asset, zero when the entry is metadata
// only.
type GalleryImageInput struct {
	Title           string `json:"title"`
	GalleryCategory string `json:"galleryCategory"`
	Image           int    `json:"image,omitempty"`
	SortOrder       int    `json:"sortOrder"`
	Featured        bool   `json:"featured"`
}

// SiteSettingsInput is the write payload for the site settings singleton.
type SiteSettingsInput struct {
	BusinessName      string `json:"businessName"`
	Tagline           string `json:"tagline,omitempty"`
	Description       string `json:"description,omitempty"`
	Phone             string `json:"phone,omitempty"`
	WhatsappLink      string `json:"whatsappLink,omitempty"`
	Email             string `json:"email,omitempty"`
	Address           string `json:"address,omitempty"`
	Instagram         string `json:"instagram,omitempty"`
	Facebook          string `json:"facebook,omitempty"`
	Tiktok            string `json:"tiktok,omitempty"`
	HeroTitle         string `json:"heroTitle,omitempty"`
	HeroSubtitle      string `json:"heroSubtitle,omitempty"`
	PhilosophyTitle   string `json:"philosophyTitle,omitempty"`
	PhilosophyContent string `json:"philosophyContent,omitempty"`
	FooterText        string `json:"footerText,omitempty"`
}

// ProductUpdate carries the fields an update call may replace. Images
// replaces the product's image list outright.
type ProductUpdate struct {
	Images []int `json:"images,omitempty"`
}
