package catalog

import (
	"time"

	"sent_back_end/internal/models"
)

// Table centrale des contenus de repli : un seul endroit pour tous les
// littéraux servis quand le store est injoignable, au lieu de les
// redéfinir dans chaque fonction.

func DefaultSiteInfo() models.SiteInfo {
	return models.SiteInfo{
		Name:        "Sent.",
		Tagline:     "Scented Candles",
		Description: "Creating warmth and ambiance for your home, one candle at a time.",
		Year:        time.Now().Year(),
	}
}

func DefaultAboutContent() models.AboutContent {
	return models.AboutContent{
		Tagline:          "Our Story",
		Heading:          "About Sent. Candles",
		Paragraphs:       []string{"Default content"},
		ImagePlaceholder: "",
	}
}

func DefaultContactInfo() models.ContactInfo {
	return models.ContactInfo{}
}

func DefaultSocialMedia() models.SocialMedia {
	return models.SocialMedia{}
}

func DefaultHeroContent() models.HeroContent {
	return models.HeroContent{
		Badge: "Handcrafted with Love",
		Heading: models.HeroHeading{
			Line1: "Hand-Crafted",
			Line2: "Candles",
		},
		Description: "Each candle is a carefully crafted vessel, preserving the intangible: a Sentiment.",
		Buttons: models.HeroButtons{
			Primary:   models.HeroButton{Text: "View Collection", Link: "/products"},
			Secondary: models.HeroButton{Text: "Our Story", Link: "#about"},
		},
		Stats: []models.HeroStat{
			{Value: "100%", Label: "Soy Wax"},
			{Value: "15+", Label: "Hours Burn"},
			{Value: "17+", Label: "Scents"},
		},
		HeroImage: "",
	}
}
