package admin

import (
	"time"

	"sent_back_end/internal/models"
)

// EventInput est le payload composite du formulaire événements.
// EventDate au format YYYY-MM-DD, vide pour une annonce sans date.
type EventInput struct {
	Title       string   `json:"title"`
	EventDate   string   `json:"eventDate"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	ImageUrls   []string `json:"imageUrls"`
}

func (input EventInput) row(id int, now time.Time) (models.EventRow, error) {
	var eventDate *time.Time
	if input.EventDate != "" {
		d, err := time.Parse("2006-01-02", input.EventDate)
		if err != nil {
			return models.EventRow{}, err
		}
		eventDate = &d
	}
	return models.EventRow{
		ID:          id,
		Title:       input.Title,
		EventDate:   eventDate,
		Description: input.Description,
		Category:    input.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (o *Orchestrator) insertEventImages(eventID int, urls []string) error {
	for i, url := range urls {
		if err := o.store.InsertEventImage(models.EventImageRow{
			EventID:   eventID,
			SortOrder: i,
			URL:       url,
		}); err != nil {
			return err
		}
	}
	return nil
}

// CreateEvent alloue un id (max + 1), insère l'événement puis ses images.
func (o *Orchestrator) CreateEvent(input EventInput) (*models.EventRow, error) {
	id := nextID(o.store.MaxEventID())

	row, err := input.row(id, time.Now())
	if err != nil {
		return nil, err
	}
	if err := o.store.InsertEvent(row); err != nil {
		return nil, err
	}
	if err := o.insertEventImages(id, input.ImageUrls); err != nil {
		return nil, err
	}
	return &row, nil
}

// UpdateEvent met à jour les scalaires puis remplace intégralement les
// images (même stratégie que les produits).
func (o *Orchestrator) UpdateEvent(id int, input EventInput) error {
	row, err := input.row(id, time.Now())
	if err != nil {
		return err
	}
	if err := o.store.UpdateEvent(id, row); err != nil {
		return err
	}
	if err := o.store.DeleteImagesByEvent(id); err != nil {
		return err
	}
	return o.insertEventImages(id, input.ImageUrls)
}

// DeleteEvent supprime les images puis l'événement.
func (o *Orchestrator) DeleteEvent(id int) error {
	if err := o.store.DeleteImagesByEvent(id); err != nil {
		return err
	}
	return o.store.DeleteEvent(id)
}
