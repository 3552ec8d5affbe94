// Package store est la couche d'accès brut : une méthode par ressource,
// chaque méthode exécute ses requêtes ScyllaDB et remonte l'erreur du store
// telle quelle. Pas de retry, pas de transformation, pas de valeur par défaut.
package store

import (
	"sent_back_end/internal/models"
)

// Scylla implémente l'accès brut au-dessus des sessions gérées par
// internal/database. La valeur zéro est utilisable.
type Scylla struct{}

// RawProduct regroupe une ligne produit et ses lignes enfants, l'équivalent
// du select imbriqué côté base relationnelle (Scylla n'a pas de jointures).
type RawProduct struct {
	Row      models.ProductRow
	Variants []models.ProductVariantRow
	Images   []models.ProductImageRow
	Scents   []models.ProductScentRow
}

// RawEvent regroupe une ligne événement et ses images.
type RawEvent struct {
	Row    models.EventRow
	Images []models.EventImageRow
}
