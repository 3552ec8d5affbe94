package store

import (
	"sort"
	"time"

	"github.com/gocql/gocql"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

// fetchProductChildren récupère variantes, images et senteurs d'un produit.
// Une requête par table enfant, chacune sur une seule partition.
func fetchProductChildren(session *gocql.Session, p *RawProduct) error {
	iter := session.Query(`SELECT product_id, id, name, price, stock_status FROM product_variants WHERE product_id = ?`, p.Row.ID).Iter()
	var v models.ProductVariantRow
	for iter.Scan(&v.ProductID, &v.ID, &v.Name, &v.Price, &v.StockStatus) {
		p.Variants = append(p.Variants, v)
		v = models.ProductVariantRow{}
	}
	if err := iter.Close(); err != nil {
		return err
	}

	iter = session.Query(`SELECT product_id, sort_order, url FROM product_images WHERE product_id = ?`, p.Row.ID).Iter()
	var img models.ProductImageRow
	for iter.Scan(&img.ProductID, &img.SortOrder, &img.URL) {
		p.Images = append(p.Images, img)
		img = models.ProductImageRow{}
	}
	if err := iter.Close(); err != nil {
		return err
	}

	iter = session.Query(`SELECT product_id, scent FROM product_scents WHERE product_id = ?`, p.Row.ID).Iter()
	var s models.ProductScentRow
	for iter.Scan(&s.ProductID, &s.Scent) {
		p.Scents = append(p.Scents, s)
		s = models.ProductScentRow{}
	}
	return iter.Close()
}

func scanProducts(iter *gocql.Iter) ([]models.ProductRow, error) {
	var rows []models.ProductRow
	var p models.ProductRow
	for iter.Scan(&p.ID, &p.Name, &p.Scent, &p.Description, &p.Size, &p.BurnTime, &p.CategorySlug, &p.Featured, &p.CreatedAt, &p.UpdatedAt) {
		rows = append(rows, p)
		p = models.ProductRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return rows, nil
}

const productColumns = `id, name, scent, description, size, burn_time, category_slug, featured, created_at, updated_at`

func (Scylla) assembleProducts(session *gocql.Session, rows []models.ProductRow) ([]RawProduct, error) {
	// Scylla ne trie pas un scan complet : tri id décroissant en mémoire,
	// comme le front l'attend (produits les plus récents d'abord)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })

	products := make([]RawProduct, 0, len(rows))
	for _, row := range rows {
		p := RawProduct{Row: row}
		if err := fetchProductChildren(session, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

// Products retourne tous les produits avec leurs lignes enfants, id décroissant.
func (s Scylla) Products() ([]RawProduct, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	rows, err := scanProducts(session.Query(`SELECT ` + productColumns + ` FROM products`).Iter())
	if err != nil {
		return nil, err
	}
	return s.assembleProducts(session, rows)
}

// ProductByID retourne un produit et ses enfants, gocql.ErrNotFound si absent.
func (Scylla) ProductByID(id int) (*RawProduct, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var p RawProduct
	q := session.Query(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	if err := q.Scan(&p.Row.ID, &p.Row.Name, &p.Row.Scent, &p.Row.Description, &p.Row.Size,
		&p.Row.BurnTime, &p.Row.CategorySlug, &p.Row.Featured, &p.Row.CreatedAt, &p.Row.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fetchProductChildren(session, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProductsByCategory retourne les produits d'une catégorie, id décroissant.
func (s Scylla) ProductsByCategory(slug string) ([]RawProduct, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	rows, err := scanProducts(session.Query(`SELECT `+productColumns+` FROM products WHERE category_slug = ? ALLOW FILTERING`, slug).Iter())
	if err != nil {
		return nil, err
	}
	return s.assembleProducts(session, rows)
}

// FeaturedProducts retourne les produits mis en avant, id décroissant.
func (s Scylla) FeaturedProducts() ([]RawProduct, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	rows, err := scanProducts(session.Query(`SELECT ` + productColumns + ` FROM products WHERE featured = true ALLOW FILTERING`).Iter())
	if err != nil {
		return nil, err
	}
	return s.assembleProducts(session, rows)
}

// MaxProductID retourne le plus grand id de la table products (0 si vide).
func (Scylla) MaxProductID() (int, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return 0, err
	}

	var max int
	if err := session.Query(`SELECT MAX(id) FROM products`).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

// InsertProduct insère la ligne parent d'un produit (id déjà alloué).
func (Scylla) InsertProduct(row models.ProductRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	return session.Query(`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Name, row.Scent, row.Description, row.Size, row.BurnTime,
		row.CategorySlug, row.Featured, row.CreatedAt, row.UpdatedAt).Exec()
}

// UpdateProduct met à jour les champs scalaires de la ligne parent.
func (Scylla) UpdateProduct(id int, row models.ProductRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}

	return session.Query(`UPDATE products SET name = ?, scent = ?, description = ?, size = ?, burn_time = ?, category_slug = ?, featured = ?, updated_at = ? WHERE id = ?`,
		row.Name, row.Scent, row.Description, row.Size, row.BurnTime,
		row.CategorySlug, row.Featured, time.Now(), id).Exec()
}

// DeleteProduct supprime la ligne parent (les enfants sont supprimés à part,
// il n'y a pas de cascade côté store).
func (Scylla) DeleteProduct(id int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM products WHERE id = ?`, id).Exec()
}

// --- Lignes enfants ---

func (Scylla) InsertVariant(row models.ProductVariantRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO product_variants (product_id, id, name, price, stock_status) VALUES (?, ?, ?, ?, ?)`,
		row.ProductID, row.ID, row.Name, row.Price, row.StockStatus).Exec()
}

func (Scylla) InsertProductImage(row models.ProductImageRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO product_images (product_id, sort_order, url) VALUES (?, ?, ?)`,
		row.ProductID, row.SortOrder, row.URL).Exec()
}

func (Scylla) InsertProductScent(row models.ProductScentRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO product_scents (product_id, scent) VALUES (?, ?)`,
		row.ProductID, row.Scent).Exec()
}

// Les tables enfants ont product_id en clé de partition : supprimer tous les
// enfants d'un produit est une suppression de partition, en une requête.

func (Scylla) DeleteVariantsByProduct(productID int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM product_variants WHERE product_id = ?`, productID).Exec()
}

func (Scylla) DeleteImagesByProduct(productID int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM product_images WHERE product_id = ?`, productID).Exec()
}

func (Scylla) DeleteScentsByProduct(productID int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM product_scents WHERE product_id = ?`, productID).Exec()
}
