package admin

import "sent_back_end/internal/models"

// L'orchestrateur ne fait AUCUN contrôle d'intégrité référentielle sur les
// catégories : le garde-fou "catégorie encore utilisée par un produit" vit
// dans le handler, avant d'appeler DeleteCategory.

func (o *Orchestrator) CreateCategory(slug, name string) (models.Category, error) {
	row := models.CategoryRow{Slug: slug, Name: name}
	if err := o.store.InsertCategory(row); err != nil {
		return models.Category{}, err
	}
	return models.Category{ID: slug, Name: name, Slug: slug}, nil
}

func (o *Orchestrator) UpdateCategory(slug, name string) (models.Category, error) {
	if err := o.store.UpdateCategory(slug, name); err != nil {
		return models.Category{}, err
	}
	return models.Category{ID: slug, Name: name, Slug: slug}, nil
}

func (o *Orchestrator) DeleteCategory(slug string) error {
	return o.store.DeleteCategory(slug)
}

// CategoryInUse dit si au moins un produit chargé référence le slug.
// C'est le pré-contrôle côté client du store, pas une contrainte du store.
func CategoryInUse(products []models.Product, slug string) bool {
	for _, p := range products {
		if p.Category == slug {
			return true
		}
	}
	return false
}
