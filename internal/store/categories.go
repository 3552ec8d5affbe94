package store

import (
	"sort"
	"time"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

// Categories retourne toutes les catégories, création décroissante.
func (Scylla) Categories() ([]models.CategoryRow, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT slug, name, created_at FROM categories`).Iter()
	var rows []models.CategoryRow
	var c models.CategoryRow
	for iter.Scan(&c.Slug, &c.Name, &c.CreatedAt) {
		rows = append(rows, c)
		c = models.CategoryRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sortCategoriesNewestFirst(rows)
	return rows, nil
}

// sortCategoriesNewestFirst trie par création décroissante, les lignes
// sans date en dernier.
func sortCategoriesNewestFirst(rows []models.CategoryRow) {
	sort.Slice(rows, func(i, j int) bool {
		return categoryBefore(rows[i], rows[j])
	})
}

func categoryBefore(a, b models.CategoryRow) bool {
	if a.CreatedAt == nil {
		return false
	}
	if b.CreatedAt == nil {
		return true
	}
	return a.CreatedAt.After(*b.CreatedAt)
}

func (Scylla) InsertCategory(row models.CategoryRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	now := time.Now()
	return session.Query(`INSERT INTO categories (slug, name, created_at) VALUES (?, ?, ?)`,
		row.Slug, row.Name, now).Exec()
}

func (Scylla) UpdateCategory(slug, name string) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE categories SET name = ? WHERE slug = ?`, name, slug).Exec()
}

func (Scylla) DeleteCategory(slug string) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM categories WHERE slug = ?`, slug).Exec()
}
