package admin

import (
	"sent_back_end/internal/models"
	"sent_back_end/internal/transform"
)

// Les singletons de contenu se mettent à jour sur place (clé fixe),
// une seule écriture chacun.

func (o *Orchestrator) UpdateAboutContent(a models.AboutContent) error {
	return o.store.UpdateAboutContent(a)
}

func (o *Orchestrator) UpdateContactInfo(c models.ContactInfo) error {
	return o.store.UpdateContactInfo(c)
}

func (o *Orchestrator) UpdateSocialMedia(s models.SocialMedia) error {
	return o.store.UpdateSocialMedia(s)
}

func (o *Orchestrator) UpdateSiteInfo(s models.SiteInfo) error {
	return o.store.UpdateSiteInfo(s)
}

func (o *Orchestrator) UpdateHeroContent(h models.HeroContent) error {
	return o.store.UpdateHeroContent(models.HeroRow{
		Badge:               h.Badge,
		HeadingLine1:        h.Heading.Line1,
		HeadingLine2:        h.Heading.Line2,
		Description:         h.Description,
		PrimaryButtonText:   h.Buttons.Primary.Text,
		PrimaryButtonLink:   h.Buttons.Primary.Link,
		SecondaryButtonText: h.Buttons.Secondary.Text,
		SecondaryButtonLink: h.Buttons.Secondary.Link,
		Stats:               h.Stats,
		HeroImage:           h.HeroImage,
	})
}

// --- Features ---

func (o *Orchestrator) CreateFeature(f models.Feature) (models.Feature, error) {
	f.ID = nextID(o.store.MaxFeatureID())
	f.Icon = transform.FeatureIcon(f.Icon)
	if err := o.store.InsertFeature(f); err != nil {
		return models.Feature{}, err
	}
	return f, nil
}

func (o *Orchestrator) UpdateFeature(id int, f models.Feature) (models.Feature, error) {
	f.ID = id
	f.Icon = transform.FeatureIcon(f.Icon)
	if err := o.store.UpdateFeature(id, f); err != nil {
		return models.Feature{}, err
	}
	return f, nil
}

func (o *Orchestrator) DeleteFeature(id int) error {
	return o.store.DeleteFeature(id)
}

// --- Assets ---

type AssetInput struct {
	Key         string `json:"key"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	AltText     string `json:"altText"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

func (input AssetInput) row(id int) models.AssetRow {
	return models.AssetRow{
		ID:          id,
		Key:         input.Key,
		Type:        input.Type,
		URL:         input.URL,
		AltText:     input.AltText,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}
}

func (o *Orchestrator) CreateAsset(input AssetInput) (*models.AssetRow, error) {
	id := nextID(o.store.MaxAssetID())

	row := input.row(id)
	if err := o.store.InsertAsset(row); err != nil {
		return nil, err
	}
	return &row, nil
}

func (o *Orchestrator) UpdateAsset(id int, input AssetInput) error {
	return o.store.UpdateAsset(id, input.row(id))
}

func (o *Orchestrator) DeleteAsset(id int) error {
	return o.store.DeleteAsset(id)
}
