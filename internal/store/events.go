package store

import (
	"sort"
	"time"

	"github.com/gocql/gocql"

	"sent_back_end/internal/database"
	"sent_back_end/internal/models"
)

const eventColumns = `id, title, event_date, description, category, created_at, updated_at`

func fetchEventImages(session *gocql.Session, e *RawEvent) error {
	iter := session.Query(`SELECT event_id, sort_order, url FROM event_images WHERE event_id = ?`, e.Row.ID).Iter()
	var img models.EventImageRow
	for iter.Scan(&img.EventID, &img.SortOrder, &img.URL) {
		e.Images = append(e.Images, img)
		img = models.EventImageRow{}
	}
	return iter.Close()
}

// Events retourne tous les événements avec leurs images, date décroissante
// (les événements sans date passent en dernier).
func (Scylla) Events() ([]RawEvent, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + eventColumns + ` FROM events`).Iter()
	var rows []models.EventRow
	var e models.EventRow
	for iter.Scan(&e.ID, &e.Title, &e.EventDate, &e.Description, &e.Category, &e.CreatedAt, &e.UpdatedAt) {
		rows = append(rows, e)
		e = models.EventRow{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool {
		switch {
		case rows[i].EventDate == nil:
			return false
		case rows[j].EventDate == nil:
			return true
		default:
			return rows[i].EventDate.After(*rows[j].EventDate)
		}
	})

	events := make([]RawEvent, 0, len(rows))
	for _, row := range rows {
		ev := RawEvent{Row: row}
		if err := fetchEventImages(session, &ev); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// EventByID retourne un événement et ses images, gocql.ErrNotFound si absent.
func (Scylla) EventByID(id int) (*RawEvent, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil, err
	}

	var e RawEvent
	if err := session.Query(`SELECT `+eventColumns+` FROM events WHERE id = ?`, id).
		Scan(&e.Row.ID, &e.Row.Title, &e.Row.EventDate, &e.Row.Description, &e.Row.Category, &e.Row.CreatedAt, &e.Row.UpdatedAt); err != nil {
		return nil, err
	}
	if err := fetchEventImages(session, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// MaxEventID retourne le plus grand id de la table events (0 si vide).
func (Scylla) MaxEventID() (int, error) {
	session, err := database.GetCatalogSession()
	if err != nil {
		return 0, err
	}

	var max int
	if err := session.Query(`SELECT MAX(id) FROM events`).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (Scylla) InsertEvent(row models.EventRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO events (`+eventColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		row.ID, row.Title, row.EventDate, row.Description, row.Category, row.CreatedAt, row.UpdatedAt).Exec()
}

func (Scylla) UpdateEvent(id int, row models.EventRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`UPDATE events SET title = ?, event_date = ?, description = ?, category = ?, updated_at = ? WHERE id = ?`,
		row.Title, row.EventDate, row.Description, row.Category, time.Now(), id).Exec()
}

func (Scylla) DeleteEvent(id int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM events WHERE id = ?`, id).Exec()
}

func (Scylla) InsertEventImage(row models.EventImageRow) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`INSERT INTO event_images (event_id, sort_order, url) VALUES (?, ?, ?)`,
		row.EventID, row.SortOrder, row.URL).Exec()
}

func (Scylla) DeleteImagesByEvent(eventID int) error {
	session, err := database.GetCatalogSession()
	if err != nil {
		return err
	}
	return session.Query(`DELETE FROM event_images WHERE event_id = ?`, eventID).Exec()
}
