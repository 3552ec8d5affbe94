// Package admin orchestre les écritures du back-office. Une entité
// composite (produit + variantes/images/senteurs, événement + images) se
// persiste en plusieurs écritures mono-table : le store n'expose aucune
// transaction multi-tables. Les étapes sont séquentielles, la première
// erreur interrompt la séquence et remonte à l'appelant ; les écritures
// déjà appliquées ne sont PAS annulées (risque d'écriture partielle
// assumé, comme l'original).
package admin

import (
	"github.com/gocql/gocql"

	"sent_back_end/internal/models"
)

// Store est la partie écriture (et allocation d'identité) de la couche
// d'accès brut.
type Store interface {
	MaxProductID() (int, error)
	InsertProduct(row models.ProductRow) error
	UpdateProduct(id int, row models.ProductRow) error
	DeleteProduct(id int) error
	InsertVariant(row models.ProductVariantRow) error
	InsertProductImage(row models.ProductImageRow) error
	InsertProductScent(row models.ProductScentRow) error
	DeleteVariantsByProduct(productID int) error
	DeleteImagesByProduct(productID int) error
	DeleteScentsByProduct(productID int) error

	MaxEventID() (int, error)
	InsertEvent(row models.EventRow) error
	UpdateEvent(id int, row models.EventRow) error
	DeleteEvent(id int) error
	InsertEventImage(row models.EventImageRow) error
	DeleteImagesByEvent(eventID int) error

	InsertCategory(row models.CategoryRow) error
	UpdateCategory(slug, name string) error
	DeleteCategory(slug string) error

	UpdateAboutContent(a models.AboutContent) error
	UpdateContactInfo(c models.ContactInfo) error
	UpdateSocialMedia(s models.SocialMedia) error
	UpdateSiteInfo(s models.SiteInfo) error
	UpdateHeroContent(h models.HeroRow) error

	MaxFeatureID() (int, error)
	InsertFeature(f models.Feature) error
	UpdateFeature(id int, f models.Feature) error
	DeleteFeature(id int) error

	MaxAssetID() (int, error)
	InsertAsset(row models.AssetRow) error
	UpdateAsset(id int, row models.AssetRow) error
	DeleteAsset(id int) error
}

type Orchestrator struct {
	store Store
}

func NewOrchestrator(s Store) *Orchestrator {
	return &Orchestrator{store: s}
}

// newVariantID isole gocql.TimeUUID pour garder les méthodes testables.
var newVariantID = gocql.TimeUUID
