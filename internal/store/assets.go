package store

import (
	"sort"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

// Assets retourne tous les assets, sort_order croissant.
func (Scylla) Assets() ([]models.AssetRow, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, key, type, url, alt_text, description, sort_order FROM assets`).Iter()
	var rows []models.AssetRow
	var a models.AssetRow
	for iter.Scan(&a.ID, &a.Key, &a.Type, &a.URL, &a.AltText, &a.Description, &a.SortOrder) {
		rows = append(rows, a)
		a = models.AssetRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	return rows, nil
}

// AssetByKey retourne l'asset portant une clé logique (ex: "homeHero").
func (Scylla) AssetByKey(key string) (*models.AssetRow, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var a models.AssetRow
	if err := session.Query(`SELECT id, key, type, url, alt_text, description, sort_order FROM assets WHERE key = ? ALLOW FILTERING`, key).
		Scan(&a.ID, &a.Key, &a.Type, &a.URL, &a.AltText, &a.Description, &a.SortOrder); err != nil {
		return nil, err
	}
	return &a, nil
}

func (Scylla) MaxAssetID() (int, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return 0, err
	}

	var max int
	if err := session.Query(`SELECT MAX(id) FROM assets`).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (Scylla) InsertAsset(row models.AssetRow) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO assets (id, key, type, url, alt_text, description, sort_order) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Key, row.Type, row.URL, row.AltText, row.Description, row.SortOrder).Exec()
}

func (Scylla) UpdateAsset(id int, row models.AssetRow) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE assets SET key = ?, type = ?, url = ?, alt_text = ?, description = ?, sort_order = ? WHERE id = ?`,
		row.Key, row.Type, row.URL, row.AltText, row.Description, row.SortOrder, id).Exec()
}

func (Scylla) DeleteAsset(id int) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM assets WHERE id = ?`, id).Exec()
}
