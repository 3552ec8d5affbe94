package store

import (
	"sort"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

// Les contenus singleton sont adressés par la clé fixe id = true,
// comme une ligne unique mise à jour sur place.

func (Scylla) AboutContent() (*models.AboutContent, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var a models.AboutContent
	if err := session.Query(`SELECT tagline, heading, paragraphs, image_placeholder FROM about_content WHERE id = true`).
		Scan(&a.Tagline, &a.Heading, &a.Paragraphs, &a.ImagePlaceholder); err != nil {
		return nil, err
	}
	return &a, nil
}

func (Scylla) UpdateAboutContent(a models.AboutContent) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE about_content SET tagline = ?, heading = ?, paragraphs = ?, image_placeholder = ? WHERE id = true`,
		a.Tagline, a.Heading, a.Paragraphs, a.ImagePlaceholder).Exec()
}

func (Scylla) ContactInfo() (*models.ContactInfo, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var c models.ContactInfo
	if err := session.Query(`SELECT email, phone, location, address FROM contact_info WHERE id = true`).
		Scan(&c.Email, &c.Phone, &c.Location, &c.Address); err != nil {
		return nil, err
	}
	return &c, nil
}

func (Scylla) UpdateContactInfo(c models.ContactInfo) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE contact_info SET email = ?, phone = ?, location = ?, address = ? WHERE id = true`,
		c.Email, c.Phone, c.Location, c.Address).Exec()
}

func (Scylla) SocialMedia() (*models.SocialMedia, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var s models.SocialMedia
	if err := session.Query(`SELECT facebook, instagram FROM social_media WHERE id = true`).
		Scan(&s.Facebook, &s.Instagram); err != nil {
		return nil, err
	}
	return &s, nil
}

func (Scylla) UpdateSocialMedia(s models.SocialMedia) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE social_media SET facebook = ?, instagram = ? WHERE id = true`,
		s.Facebook, s.Instagram).Exec()
}

func (Scylla) SiteInfo() (*models.SiteInfo, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var s models.SiteInfo
	if err := session.Query(`SELECT name, tagline, description, year FROM site_info WHERE id = true`).
		Scan(&s.Name, &s.Tagline, &s.Description, &s.Year); err != nil {
		return nil, err
	}
	return &s, nil
}

func (Scylla) UpdateSiteInfo(s models.SiteInfo) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE site_info SET name = ?, tagline = ?, description = ?, year = ? WHERE id = true`,
		s.Name, s.Tagline, s.Description, s.Year).Exec()
}

func (Scylla) HeroContent() (*models.HeroRow, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	var h models.HeroRow
	var stats []map[string]string
	if err := session.Query(`SELECT badge, heading_line1, heading_line2, description, primary_button_text, primary_button_link, secondary_button_text, secondary_button_link, stats, hero_image FROM hero_content WHERE id = true`).
		Scan(&h.Badge, &h.HeadingLine1, &h.HeadingLine2, &h.Description,
			&h.PrimaryButtonText, &h.PrimaryButtonLink,
			&h.SecondaryButtonText, &h.SecondaryButtonLink,
			&stats, &h.HeroImage); err != nil {
		return nil, err
	}
	for _, st := range stats {
		h.Stats = append(h.Stats, models.HeroStat{Value: st["value"], Label: st["label"]})
	}
	return &h, nil
}

func (Scylla) UpdateHeroContent(h models.HeroRow) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}

	stats := make([]map[string]string, 0, len(h.Stats))
	for _, st := range h.Stats {
		stats = append(stats, map[string]string{"value": st.Value, "label": st.Label})
	}
	return session.Query(`UPDATE hero_content SET badge = ?, heading_line1 = ?, heading_line2 = ?, description = ?, primary_button_text = ?, primary_button_link = ?, secondary_button_text = ?, secondary_button_link = ?, stats = ?, hero_image = ? WHERE id = true`,
		h.Badge, h.HeadingLine1, h.HeadingLine2, h.Description,
		h.PrimaryButtonText, h.PrimaryButtonLink,
		h.SecondaryButtonText, h.SecondaryButtonLink,
		stats, h.HeroImage).Exec()
}

// --- Features ---

func (Scylla) Features() ([]models.Feature, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT id, title, description, icon, sort_order FROM features`).Iter()
	var rows []models.Feature
	var f models.Feature
	for iter.Scan(&f.ID, &f.Title, &f.Description, &f.Icon, &f.SortOrder) {
		rows = append(rows, f)
		f = models.Feature{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	return rows, nil
}

func (Scylla) MaxFeatureID() (int, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return 0, err
	}

	var max int
	if err := session.Query(`SELECT MAX(id) FROM features`).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (Scylla) InsertFeature(f models.Feature) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO features (id, title, description, icon, sort_order) VALUES (?, ?, ?, ?, ?)`,
		f.ID, f.Title, f.Description, f.Icon, f.SortOrder).Exec()
}

func (Scylla) UpdateFeature(id int, f models.Feature) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE features SET title = ?, description = ?, icon = ?, sort_order = ? WHERE id = ?`,
		f.Title, f.Description, f.Icon, f.SortOrder, id).Exec()
}

func (Scylla) DeleteFeature(id int) error {
	session, err := database.GetContentSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM features WHERE id = ?`, id).Exec()
}

// --- Liens de navigation / footer ---

func (Scylla) linkRows(table string) ([]models.LinkRow, error) {
	session, err := database.GetContentSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT sort_order, name, href FROM ` + table).Iter()
	var rows []models.LinkRow
	var l models.LinkRow
	for iter.Scan(&l.SortOrder, &l.Name, &l.Href) {
		rows = append(rows, l)
		l = models.LinkRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SortOrder < rows[j].SortOrder })
	return rows, nil
}

func (s Scylla) NavLinks() ([]models.LinkRow, error) {
	return s.linkRows("nav_links")
}

func (s Scylla) FooterLinks() ([]models.LinkRow, error) {
	return s.linkRows("footer_links")
}
