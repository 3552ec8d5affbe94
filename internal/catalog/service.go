// Package catalog est la façade de lecture publique : aucune méthode ne
// retourne d'erreur. Sur échec du store, on loggue et on renvoie le
// fallback de defaults.go — le storefront affiche un contenu dégradé au
// lieu de planter. Disponibilité avant signalement, comme l'original.
package catalog

import (
	"log"

	"sent_back_end/internal/models"
	"sent_back_end/internal/store"
	"sent_back_end/internal/transform"
)

// Store est la partie lecture de la couche d'accès brut.
type Store interface {
	Products() ([]store.RawProduct, error)
	ProductByID(id int) (*store.RawProduct, error)
	ProductsByCategory(slug string) ([]store.RawProduct, error)
	FeaturedProducts() ([]store.RawProduct, error)
	Categories() ([]models.CategoryRow, error)
	Events() ([]store.RawEvent, error)
	EventByID(id int) (*store.RawEvent, error)
	AboutContent() (*models.AboutContent, error)
	ContactInfo() (*models.ContactInfo, error)
	SocialMedia() (*models.SocialMedia, error)
	SiteInfo() (*models.SiteInfo, error)
	HeroContent() (*models.HeroRow, error)
	Features() ([]models.Feature, error)
	NavLinks() ([]models.LinkRow, error)
	FooterLinks() ([]models.LinkRow, error)
	Assets() ([]models.AssetRow, error)
	AssetByKey(key string) (*models.AssetRow, error)
}

type Service struct {
	store Store
}

func NewService(s Store) *Service {
	return &Service{store: s}
}

// fetchOr est l'unique enveloppe de contention d'erreur de la façade :
// valeur du store si la lecture passe, fallback loggué sinon.
func fetchOr[T any](resource string, get func() (T, error), fallback T) T {
	v, err := get()
	if err != nil {
		log.Printf("❌ Lecture %s échouée, fallback appliqué: %v", resource, err)
		return fallback
	}
	return v
}

// --- Produits ---

func (s *Service) Products() []models.Product {
	if cached, ok := cachedProducts(keyProductsAll); ok {
		return cached
	}

	raw, err := s.store.Products()
	if err != nil {
		log.Printf("❌ Lecture products échouée, fallback appliqué: %v", err)
		return []models.Product{}
	}

	products := transform.Products(raw)
	cacheProducts(keyProductsAll, products)
	return products
}

func (s *Service) ProductByID(id int) *models.Product {
	raw, err := s.store.ProductByID(id)
	if err != nil {
		log.Printf("❌ Lecture product %d échouée, fallback appliqué: %v", id, err)
		return nil
	}
	return transform.Product(raw)
}

func (s *Service) ProductsByCategory(slug string) []models.Product {
	raw, err := s.store.ProductsByCategory(slug)
	if err != nil {
		log.Printf("❌ Lecture products catégorie %s échouée, fallback appliqué: %v", slug, err)
		return []models.Product{}
	}
	return transform.Products(raw)
}

func (s *Service) FeaturedProducts() []models.Product {
	raw, err := s.store.FeaturedProducts()
	if err != nil {
		log.Printf("❌ Lecture produits mis en avant échouée, fallback appliqué: %v", err)
		return []models.Product{}
	}
	return transform.Products(raw)
}

// --- Catégories ---

func (s *Service) Categories() []models.Category {
	if cached, ok := cachedCategories(); ok {
		return cached
	}

	rows, err := s.store.Categories()
	if err != nil {
		log.Printf("❌ Lecture categories échouée, fallback appliqué: %v", err)
		return []models.Category{}
	}

	cats := transform.Categories(rows)
	cacheCategories(cats)
	return cats
}

// --- Événements ---

func (s *Service) Events() []models.Event {
	raw, err := s.store.Events()
	if err != nil {
		log.Printf("❌ Lecture events échouée, fallback appliqué: %v", err)
		return []models.Event{}
	}
	return transform.Events(raw)
}

func (s *Service) EventByID(id int) *models.Event {
	raw, err := s.store.EventByID(id)
	if err != nil {
		log.Printf("❌ Lecture event %d échouée, fallback appliqué: %v", id, err)
		return nil
	}
	return transform.Event(raw)
}

// --- Contenus du site ---

func (s *Service) AboutContent() models.AboutContent {
	return fetchOr("about_content", func() (models.AboutContent, error) {
		a, err := s.store.AboutContent()
		if err != nil {
			return models.AboutContent{}, err
		}
		return *a, nil
	}, DefaultAboutContent())
}

func (s *Service) ContactInfo() models.ContactInfo {
	return fetchOr("contact_info", func() (models.ContactInfo, error) {
		c, err := s.store.ContactInfo()
		if err != nil {
			return models.ContactInfo{}, err
		}
		return *c, nil
	}, DefaultContactInfo())
}

func (s *Service) SocialMedia() models.SocialMedia {
	return fetchOr("social_media", func() (models.SocialMedia, error) {
		sm, err := s.store.SocialMedia()
		if err != nil {
			return models.SocialMedia{}, err
		}
		return *sm, nil
	}, DefaultSocialMedia())
}

func (s *Service) SiteInfo() models.SiteInfo {
	return fetchOr("site_info", func() (models.SiteInfo, error) {
		si, err := s.store.SiteInfo()
		if err != nil {
			return models.SiteInfo{}, err
		}
		return *si, nil
	}, DefaultSiteInfo())
}

func (s *Service) HeroContent() models.HeroContent {
	return fetchOr("hero_content", func() (models.HeroContent, error) {
		row, err := s.store.HeroContent()
		if err != nil {
			return models.HeroContent{}, err
		}
		return *transform.Hero(row), nil
	}, DefaultHeroContent())
}

func (s *Service) Features() []models.Feature {
	rows := fetchOr("features", s.store.Features, []models.Feature{})
	features := make([]models.Feature, 0, len(rows))
	for _, f := range rows {
		f.Icon = transform.FeatureIcon(f.Icon)
		features = append(features, f)
	}
	return features
}

func (s *Service) NavLinks() []models.Link {
	return transform.Links(fetchOr("nav_links", s.store.NavLinks, nil))
}

func (s *Service) FooterLinks() []models.Link {
	return transform.Links(fetchOr("footer_links", s.store.FooterLinks, nil))
}

// --- Assets ---

func (s *Service) Assets() []models.Asset {
	return transform.Assets(fetchOr("assets", s.store.Assets, nil))
}

func (s *Service) AssetByKey(key string) *models.Asset {
	row, err := s.store.AssetByKey(key)
	if err != nil {
		log.Printf("❌ Lecture asset %s échouée, fallback appliqué: %v", key, err)
		return nil
	}
	return transform.Asset(row)
}
