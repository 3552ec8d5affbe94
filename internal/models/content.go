package models

// Contenus singleton du site : une seule ligne par table, adressée par une
// clé fixe, mise à jour sur place (jamais créée/supprimée après le seed).

type AboutContent struct {
	Tagline          string   `json:"tagline"`
	Heading          string   `json:"heading"`
	Paragraphs       []string `json:"paragraphs"`
	ImagePlaceholder string   `json:"imagePlaceholder"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Address  string `json:"address"`
}

type SocialMedia struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

type SiteInfo struct {
	Name        string `json:"name"`
	Tagline     string `json:"tagline"`
	Description string `json:"description"`
	Year        int    `json:"year"`
}

// --- Hero ---

type HeroStat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type HeroButton struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type HeroButtons struct {
	Primary   HeroButton `json:"primary"`
	Secondary HeroButton `json:"secondary"`
}

type HeroHeading struct {
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type HeroContent struct {
	Badge       string      `json:"badge"`
	Heading     HeroHeading `json:"heading"`
	Description string      `json:"description"`
	Buttons     HeroButtons `json:"buttons"`
	Stats       []HeroStat  `json:"stats"`
	HeroImage   string      `json:"heroImage"`
}

// HeroRow est la ligne brute (colonnes à plat) du singleton hero_content.
type HeroRow struct {
	Badge               string     `json:"badge" db:"badge"`
	HeadingLine1        string     `json:"heading_line1" db:"heading_line1"`
	HeadingLine2        string     `json:"heading_line2" db:"heading_line2"`
	Description         string     `json:"description" db:"description"`
	PrimaryButtonText   string     `json:"primary_button_text" db:"primary_button_text"`
	PrimaryButtonLink   string     `json:"primary_button_link" db:"primary_button_link"`
	SecondaryButtonText string     `json:"secondary_button_text" db:"secondary_button_text"`
	SecondaryButtonLink string     `json:"secondary_button_link" db:"secondary_button_link"`
	Stats               []HeroStat `json:"stats" db:"stats"`
	HeroImage           string     `json:"hero_image" db:"hero_image"`
}

// --- Features (cartes "pourquoi nous" de la home) ---

// Icônes connues côté front. Un nom inconnu retombe sur Sparkles.
var KnownFeatureIcons = map[string]bool{
	"Sparkles": true,
	"Clock":    true,
	"Leaf":     true,
	"Wind":     true,
}

type Feature struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SortOrder   int    `json:"sort_order"`
}

// --- Liens de navigation et de footer ---

type LinkRow struct {
	SortOrder int    `json:"sort_order" db:"sort_order"`
	Name      string `json:"name" db:"name"`
	Href      string `json:"href" db:"href"`
}

type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}
