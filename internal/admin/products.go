package admin

import (
	"time"

	"sent_back_end/internal/models"
)

// ProductInput est le payload composite du formulaire admin (camelCase).
type ProductInput struct {
	Name            string         `json:"name"`
	Scent           string         `json:"scent"`
	Description     string         `json:"description"`
	Size            string         `json:"size"`
	BurnTime        string         `json:"burnTime"`
	Category        string         `json:"category"`
	Featured        bool           `json:"featured"`
	Variants        []VariantInput `json:"variants"`
	ImageUrls       []string       `json:"imageUrls"`
	AvailableScents []string       `json:"availableScents"`
}

type VariantInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	StockStatus string  `json:"stockStatus"`
}

// variantRow normalise une variante saisie : statut de stock par défaut
// "in-stock", prix négatif ramené à 0 (le formulaire rebuild les variantes
// depuis du texte libre).
func variantRow(productID int, v VariantInput) models.ProductVariantRow {
	status := v.StockStatus
	if status == "" {
		status = models.StockStatusInStock
	}
	price := v.Price
	if price < 0 {
		price = 0
	}
	return models.ProductVariantRow{
		ProductID:   productID,
		ID:          newVariantID(),
		Name:        v.Name,
		Price:       price,
		StockStatus: status,
	}
}

func (input ProductInput) row(id int, now time.Time) models.ProductRow {
	return models.ProductRow{
		ID:           id,
		Name:         input.Name,
		Scent:        input.Scent,
		Description:  input.Description,
		Size:         input.Size,
		BurnTime:     input.BurnTime,
		CategorySlug: input.Category,
		Featured:     input.Featured,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// insertProductChildren insère les lignes enfants dans l'ordre : variantes,
// puis images (sort_order = index du tableau), puis senteurs. Chaque insert
// est attendu avant le suivant ; la première erreur stoppe tout.
func (o *Orchestrator) insertProductChildren(productID int, input ProductInput) error {
	for _, v := range input.Variants {
		if err := o.store.InsertVariant(variantRow(productID, v)); err != nil {
			return err
		}
	}
	for i, url := range input.ImageUrls {
		if err := o.store.InsertProductImage(models.ProductImageRow{
			ProductID: productID,
			SortOrder: i,
			URL:       url,
		}); err != nil {
			return err
		}
	}
	for _, scent := range input.AvailableScents {
		if err := o.store.InsertProductScent(models.ProductScentRow{
			ProductID: productID,
			Scent:     scent,
		}); err != nil {
			return err
		}
	}
	return nil
}

// CreateProduct alloue un id (max + 1), insère la ligne parent puis les
// lignes enfants.
func (o *Orchestrator) CreateProduct(input ProductInput) (*models.ProductRow, error) {
	id := nextID(o.store.MaxProductID())

	row := input.row(id, time.Now())
	if err := o.store.InsertProduct(row); err != nil {
		return nil, err
	}
	if err := o.insertProductChildren(id, input); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateProduct remplace l'entité entière : mise à jour des scalaires du
// parent, suppression de TOUTES les lignes enfants existantes, puis
// ré-insertion depuis le payload. Les lignes enfants n'ont pas d'identité
// stable côté client d'une édition à l'autre : le remplacement intégral
// est plus simple et plus sûr qu'un diff.
func (o *Orchestrator) UpdateProduct(id int, input ProductInput) error {
	if err := o.store.UpdateProduct(id, input.row(id, time.Now())); err != nil {
		return err
	}
	if err := o.store.DeleteVariantsByProduct(id); err != nil {
		return err
	}
	if err := o.store.DeleteImagesByProduct(id); err != nil {
		return err
	}
	if err := o.store.DeleteScentsByProduct(id); err != nil {
		return err
	}
	return o.insertProductChildren(id, input)
}

// DeleteProduct supprime les lignes enfants puis le parent (pas de cascade
// dans le store).
func (o *Orchestrator) DeleteProduct(id int) error {
	if err := o.store.DeleteVariantsByProduct(id); err != nil {
		return err
	}
	if err := o.store.DeleteImagesByProduct(id); err != nil {
		return err
	}
	if err := o.store.DeleteScentsByProduct(id); err != nil {
		return err
	}
	return o.store.DeleteProduct(id)
}
