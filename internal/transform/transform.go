// Package transform remet en forme les lignes brutes du store pour le
// storefront : renommage snake_case → camelCase, tris, aplatissements.
// Fonctions pures, totales sur une entrée bien formée, nil → nil.
// Aucune validation métier ici (un prix négatif passe tel quel).
package transform

import (
	"sort"

	"sent_back_end/internal/models"
	"sent_back_end/internal/store"
)

// Product transforme un produit brut et ses lignes enfants en forme front :
// variants renommées, images triées par sort_order puis aplaties en URLs
// (l'ordre ne survit que par la position dans la slice), senteurs aplaties.
func Product(p *store.RawProduct) *models.Product {
	if p == nil {
		return nil
	}

	variants := make([]models.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, models.Variant{
			Name:        v.Name,
			Price:       v.Price,
			StockStatus: v.StockStatus,
		})
	}

	imageUrls := sortedImageURLs(p.Images)

	scents := make([]string, 0, len(p.Scents))
	for _, s := range p.Scents {
		scents = append(scents, s.Scent)
	}

	return &models.Product{
		ID:              p.Row.ID,
		Name:            p.Row.Name,
		Scent:           p.Row.Scent,
		Description:     p.Row.Description,
		Size:            p.Row.Size,
		BurnTime:        p.Row.BurnTime,
		Category:        p.Row.CategorySlug,
		Featured:        p.Row.Featured,
		Variants:        variants,
		ImageUrls:       imageUrls,
		AvailableScents: scents,
	}
}

// Products transforme une liste de produits bruts (jamais nil en sortie).
func Products(raw []store.RawProduct) []models.Product {
	products := make([]models.Product, 0, len(raw))
	for i := range raw {
		products = append(products, *Product(&raw[i]))
	}
	return products
}

func sortedImageURLs(images []models.ProductImageRow) []string {
	sorted := make([]models.ProductImageRow, len(images))
	copy(sorted, images)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	urls := make([]string, 0, len(sorted))
	for _, img := range sorted {
		urls = append(urls, img.URL)
	}
	return urls
}

// Event transforme un événement brut, date formatée YYYY-MM-DD, images
// triées par sort_order puis aplaties en URLs.
func Event(e *store.RawEvent) *models.Event {
	if e == nil {
		return nil
	}

	var eventDate *string
	if e.Row.EventDate != nil {
		d := e.Row.EventDate.Format("2006-01-02")
		eventDate = &d
	}

	sorted := make([]models.EventImageRow, len(e.Images))
	copy(sorted, e.Images)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].SortOrder < sorted[j].SortOrder })

	urls := make([]string, 0, len(sorted))
	for _, img := range sorted {
		urls = append(urls, img.URL)
	}

	return &models.Event{
		ID:          e.Row.ID,
		Title:       e.Row.Title,
		EventDate:   eventDate,
		Description: e.Row.Description,
		Category:    e.Row.Category,
		ImageUrls:   urls,
	}
}

// Events transforme une liste d'événements bruts.
func Events(raw []store.RawEvent) []models.Event {
	events := make([]models.Event, 0, len(raw))
	for i := range raw {
		events = append(events, *Event(&raw[i]))
	}
	return events
}

// Category : le slug sert d'identité côté front.
func Category(row models.CategoryRow) models.Category {
	return models.Category{
		ID:   row.Slug,
		Name: row.Name,
		Slug: row.Slug,
	}
}

func Categories(rows []models.CategoryRow) []models.Category {
	cats := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		cats = append(cats, Category(row))
	}
	return cats
}

// Asset renomme alt_text / sort_order pour le front.
func Asset(row *models.AssetRow) *models.Asset {
	if row == nil {
		return nil
	}
	return &models.Asset{
		ID:          row.ID,
		Key:         row.Key,
		Type:        row.Type,
		URL:         row.URL,
		AltText:     row.AltText,
		Description: row.Description,
		SortOrder:   row.SortOrder,
	}
}

func Assets(rows []models.AssetRow) []models.Asset {
	assets := make([]models.Asset, 0, len(rows))
	for i := range rows {
		assets = append(assets, *Asset(&rows[i]))
	}
	return assets
}

// Hero reconstruit la forme imbriquée du hero depuis les colonnes à plat.
func Hero(row *models.HeroRow) *models.HeroContent {
	if row == nil {
		return nil
	}

	stats := row.Stats
	if stats == nil {
		stats = []models.HeroStat{}
	}

	return &models.HeroContent{
		Badge: row.Badge,
		Heading: models.HeroHeading{
			Line1: row.HeadingLine1,
			Line2: row.HeadingLine2,
		},
		Description: row.Description,
		Buttons: models.HeroButtons{
			Primary:   models.HeroButton{Text: row.PrimaryButtonText, Link: row.PrimaryButtonLink},
			Secondary: models.HeroButton{Text: row.SecondaryButtonText, Link: row.SecondaryButtonLink},
		},
		Stats:     stats,
		HeroImage: row.HeroImage,
	}
}

// Links aplatit les lignes de liens (le sort_order ne survit pas).
func Links(rows []models.LinkRow) []models.Link {
	links := make([]models.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, models.Link{Name: row.Name, Href: row.Href})
	}
	return links
}

// FeatureIcon résout un nom d'icône vers un nom connu du front,
// Sparkles par défaut (table fixe, pas de réflexion).
func FeatureIcon(name string) string {
	if models.KnownFeatureIcons[name] {
		return name
	}
	return "Sparkles"
}
