package admin

import (
	"errors"
	"testing"

	"github.com/gocql/gocql"

	"sent_back_end/internal/models"
)

// fakeStore enregistre chaque appel d'écriture dans l'ordre, et sert des
// valeurs de max configurables.
type fakeStore struct {
	maxProductID  int
	maxProductErr error
	maxEventID    int
	maxEventErr   error
	maxFeatureID  int
	maxAssetID    int

	failOn string // nom de l'opération qui doit échouer

	calls    []string
	variants []models.ProductVariantRow
	images   []models.ProductImageRow
	scents   []models.ProductScentRow
	events   []models.EventRow
	features []models.Feature
	assets   []models.AssetRow
}

func (f *fakeStore) fail(op string) error {
	f.calls = append(f.calls, op)
	if f.failOn == op {
		return errors.New(op + " failed")
	}
	return nil
}

func (f *fakeStore) MaxProductID() (int, error) { return f.maxProductID, f.maxProductErr }
func (f *fakeStore) InsertProduct(row models.ProductRow) error {
	return f.fail("InsertProduct")
}
func (f *fakeStore) UpdateProduct(id int, row models.ProductRow) error {
	return f.fail("UpdateProduct")
}
func (f *fakeStore) DeleteProduct(id int) error { return f.fail("DeleteProduct") }
func (f *fakeStore) InsertVariant(row models.ProductVariantRow) error {
	f.variants = append(f.variants, row)
	return f.fail("InsertVariant")
}
func (f *fakeStore) InsertProductImage(row models.ProductImageRow) error {
	f.images = append(f.images, row)
	return f.fail("InsertProductImage")
}
func (f *fakeStore) InsertProductScent(row models.ProductScentRow) error {
	f.scents = append(f.scents, row)
	return f.fail("InsertProductScent")
}
func (f *fakeStore) DeleteVariantsByProduct(productID int) error {
	f.variants = nil
	return f.fail("DeleteVariantsByProduct")
}
func (f *fakeStore) DeleteImagesByProduct(productID int) error {
	f.images = nil
	return f.fail("DeleteImagesByProduct")
}
func (f *fakeStore) DeleteScentsByProduct(productID int) error {
	f.scents = nil
	return f.fail("DeleteScentsByProduct")
}

func (f *fakeStore) MaxEventID() (int, error) { return f.maxEventID, f.maxEventErr }
func (f *fakeStore) InsertEvent(row models.EventRow) error {
	f.events = append(f.events, row)
	return f.fail("InsertEvent")
}
func (f *fakeStore) UpdateEvent(id int, row models.EventRow) error {
	return f.fail("UpdateEvent")
}
func (f *fakeStore) DeleteEvent(id int) error { return f.fail("DeleteEvent") }
func (f *fakeStore) InsertEventImage(row models.EventImageRow) error {
	return f.fail("InsertEventImage")
}
func (f *fakeStore) DeleteImagesByEvent(eventID int) error {
	return f.fail("DeleteImagesByEvent")
}

func (f *fakeStore) InsertCategory(row models.CategoryRow) error {
	return f.fail("InsertCategory")
}
func (f *fakeStore) UpdateCategory(slug, name string) error { return f.fail("UpdateCategory") }
func (f *fakeStore) DeleteCategory(slug string) error       { return f.fail("DeleteCategory") }

func (f *fakeStore) UpdateAboutContent(a models.AboutContent) error {
	return f.fail("UpdateAboutContent")
}
func (f *fakeStore) UpdateContactInfo(c models.ContactInfo) error {
	return f.fail("UpdateContactInfo")
}
func (f *fakeStore) UpdateSocialMedia(s models.SocialMedia) error {
	return f.fail("UpdateSocialMedia")
}
func (f *fakeStore) UpdateSiteInfo(s models.SiteInfo) error { return f.fail("UpdateSiteInfo") }
func (f *fakeStore) UpdateHeroContent(h models.HeroRow) error {
	return f.fail("UpdateHeroContent")
}

func (f *fakeStore) MaxFeatureID() (int, error) { return f.maxFeatureID, nil }
func (f *fakeStore) InsertFeature(feat models.Feature) error {
	f.features = append(f.features, feat)
	return f.fail("InsertFeature")
}
func (f *fakeStore) UpdateFeature(id int, feat models.Feature) error {
	return f.fail("UpdateFeature")
}
func (f *fakeStore) DeleteFeature(id int) error { return f.fail("DeleteFeature") }

func (f *fakeStore) MaxAssetID() (int, error) { return f.maxAssetID, nil }
func (f *fakeStore) InsertAsset(row models.AssetRow) error {
	f.assets = append(f.assets, row)
	return f.fail("InsertAsset")
}
func (f *fakeStore) UpdateAsset(id int, row models.AssetRow) error { return f.fail("UpdateAsset") }
func (f *fakeStore) DeleteAsset(id int) error                      { return f.fail("DeleteAsset") }

func TestNextID(t *testing.T) {
	tests := []struct {
		name string
		max  int
		err  error
		want int
	}{
		{name: "empty table starts at one", max: 0, err: nil, want: 1},
		{name: "increments observed max", max: 41, err: nil, want: 42},
		{name: "read failure falls back to one", max: 99, err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextID(tt.max, tt.err); got != tt.want {
				t.Errorf("nextID(%d, %v) = %d, want %d", tt.max, tt.err, got, tt.want)
			}
		})
	}
}

// Deux sessions admin lisant le même max calculent le même id : l'allocation
// n'est sûre que sous écrivain unique. Ce test épingle ce comportement.
func TestConcurrentCreateProductIDCollision(t *testing.T) {
	a := &fakeStore{maxProductID: 7}
	b := &fakeStore{maxProductID: 7}

	rowA, err := NewOrchestrator(a).CreateProduct(ProductInput{Name: "Amber"})
	if err != nil {
		t.Fatal(err)
	}
	rowB, err := NewOrchestrator(b).CreateProduct(ProductInput{Name: "Cedar"})
	if err != nil {
		t.Fatal(err)
	}

	if rowA.ID != rowB.ID {
		t.Errorf("expected both writers to allocate the same id, got %d and %d", rowA.ID, rowB.ID)
	}
	if rowA.ID != 8 {
		t.Errorf("expected id 8, got %d", rowA.ID)
	}
}

func TestCreateProductInsertsChildrenInOrder(t *testing.T) {
	origID := newVariantID
	newVariantID = func() gocql.UUID { return gocql.UUID{} }
	defer func() { newVariantID = origID }()

	f := &fakeStore{maxProductID: 2}
	o := NewOrchestrator(f)

	input := ProductInput{
		Name:            "Vanilla Bloom",
		Category:        "classics",
		Variants:        []VariantInput{{Name: "Small", Price: 12.5}, {Name: "Large", Price: 24, StockStatus: models.StockStatusPreOrder}},
		ImageUrls:       []string{"img-b.jpg", "img-a.jpg"},
		AvailableScents: []string{"Vanilla", "Tonka"},
	}

	row, err := o.CreateProduct(input)
	if err != nil {
		t.Fatal(err)
	}
	if row.ID != 3 {
		t.Fatalf("expected id 3, got %d", row.ID)
	}

	want := []string{
		"InsertProduct",
		"InsertVariant", "InsertVariant",
		"InsertProductImage", "InsertProductImage",
		"InsertProductScent", "InsertProductScent",
	}
	if len(f.calls) != len(want) {
		t.Fatalf("expected %d calls, got %d: %v", len(want), len(f.calls), f.calls)
	}
	for i, op := range want {
		if f.calls[i] != op {
			t.Errorf("call %d: expected %s, got %s", i, op, f.calls[i])
		}
	}

	// sort_order des images = position dans le payload
	if f.images[0].URL != "img-b.jpg" || f.images[0].SortOrder != 0 {
		t.Errorf("first image should keep payload position: %+v", f.images[0])
	}
	if f.images[1].URL != "img-a.jpg" || f.images[1].SortOrder != 1 {
		t.Errorf("second image should keep payload position: %+v", f.images[1])
	}
}

func TestVariantNormalization(t *testing.T) {
	tests := []struct {
		name       string
		input      VariantInput
		wantStatus string
		wantPrice  float64
	}{
		{name: "defaults empty status to in-stock", input: VariantInput{Name: "Std", Price: 10}, wantStatus: models.StockStatusInStock, wantPrice: 10},
		{name: "keeps explicit status", input: VariantInput{Name: "Std", Price: 10, StockStatus: models.StockStatusOutOfStock}, wantStatus: models.StockStatusOutOfStock, wantPrice: 10},
		{name: "clamps negative price to zero", input: VariantInput{Name: "Std", Price: -4}, wantStatus: models.StockStatusInStock, wantPrice: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := variantRow(1, tt.input)
			if row.StockStatus != tt.wantStatus {
				t.Errorf("stock status = %q, want %q", row.StockStatus, tt.wantStatus)
			}
			if row.Price != tt.wantPrice {
				t.Errorf("price = %v, want %v", row.Price, tt.wantPrice)
			}
		})
	}
}

func TestUpdateProductReplacesAllChildren(t *testing.T) {
	origID := newVariantID
	newVariantID = func() gocql.UUID { return gocql.UUID{} }
	defer func() { newVariantID = origID }()

	f := &fakeStore{}
	o := NewOrchestrator(f)

	input := ProductInput{
		Name:      "Ocean Mist",
		Variants:  []VariantInput{{Name: "Only", Price: 18}},
		ImageUrls: []string{"new.jpg"},
	}
	if err := o.UpdateProduct(5, input); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"UpdateProduct",
		"DeleteVariantsByProduct", "DeleteImagesByProduct", "DeleteScentsByProduct",
		"InsertVariant", "InsertProductImage",
	}
	if len(f.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, f.calls)
	}
	for i, op := range want {
		if f.calls[i] != op {
			t.Errorf("call %d: expected %s, got %s", i, op, f.calls[i])
		}
	}

	if len(f.variants) != 1 || f.variants[0].Name != "Only" {
		t.Errorf("children should be exactly the new payload, got %+v", f.variants)
	}
	if len(f.scents) != 0 {
		t.Errorf("scents absent from payload should stay deleted, got %+v", f.scents)
	}
}

// La première écriture en échec interrompt la séquence ; les écritures déjà
// appliquées restent en place.
func TestUpdateProductStopsOnFirstError(t *testing.T) {
	f := &fakeStore{failOn: "DeleteImagesByProduct"}
	o := NewOrchestrator(f)

	err := o.UpdateProduct(5, ProductInput{Name: "Ocean Mist"})
	if err == nil {
		t.Fatal("expected an error")
	}

	last := f.calls[len(f.calls)-1]
	if last != "DeleteImagesByProduct" {
		t.Errorf("sequence should stop at the failing step, last call was %s", last)
	}
}

func TestDeleteProductRemovesChildrenFirst(t *testing.T) {
	f := &fakeStore{}
	if err := NewOrchestrator(f).DeleteProduct(9); err != nil {
		t.Fatal(err)
	}

	want := []string{"DeleteVariantsByProduct", "DeleteImagesByProduct", "DeleteScentsByProduct", "DeleteProduct"}
	for i, op := range want {
		if f.calls[i] != op {
			t.Errorf("call %d: expected %s, got %s", i, op, f.calls[i])
		}
	}
}

func TestCreateEventParsesDate(t *testing.T) {
	f := &fakeStore{maxEventID: 1}
	o := NewOrchestrator(f)

	row, err := o.CreateEvent(EventInput{Title: "Workshop", EventDate: "2026-10-08"})
	if err != nil {
		t.Fatal(err)
	}
	if row.ID != 2 {
		t.Errorf("expected id 2, got %d", row.ID)
	}
	if row.EventDate == nil || row.EventDate.Format("2006-01-02") != "2026-10-08" {
		t.Errorf("event date not parsed: %v", row.EventDate)
	}

	// Date vide : annonce sans date
	row, err = o.CreateEvent(EventInput{Title: "Coming soon"})
	if err != nil {
		t.Fatal(err)
	}
	if row.EventDate != nil {
		t.Errorf("empty date should stay nil, got %v", row.EventDate)
	}

	// Date mal formée : rien ne doit être écrit
	before := len(f.events)
	if _, err := o.CreateEvent(EventInput{Title: "Bad", EventDate: "08/10/2026"}); err == nil {
		t.Error("expected an error for a malformed date")
	}
	if len(f.events) != before {
		t.Error("malformed date should not reach the store")
	}
}

func TestCreateFeatureResolvesIcon(t *testing.T) {
	f := &fakeStore{maxFeatureID: 3}
	o := NewOrchestrator(f)

	feature, err := o.CreateFeature(models.Feature{Title: "Hand-poured", Icon: "Rocket"})
	if err != nil {
		t.Fatal(err)
	}
	if feature.ID != 4 {
		t.Errorf("expected id 4, got %d", feature.ID)
	}
	if feature.Icon != "Sparkles" {
		t.Errorf("unknown icon should fall back to Sparkles, got %q", feature.Icon)
	}

	feature, err = o.CreateFeature(models.Feature{Title: "Clean burn", Icon: "Leaf"})
	if err != nil {
		t.Fatal(err)
	}
	if feature.Icon != "Leaf" {
		t.Errorf("known icon should be kept, got %q", feature.Icon)
	}
}

func TestCreateAssetAllocatesID(t *testing.T) {
	f := &fakeStore{maxAssetID: 10}
	o := NewOrchestrator(f)

	row, err := o.CreateAsset(AssetInput{Key: "hero-banner", URL: "banner.jpg"})
	if err != nil {
		t.Fatal(err)
	}
	if row.ID != 11 {
		t.Errorf("expected id 11, got %d", row.ID)
	}
	if len(f.assets) != 1 || f.assets[0].Key != "hero-banner" {
		t.Errorf("asset row not persisted as given: %+v", f.assets)
	}
}

func TestCategoryInUse(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Amber Glow", Category: "classics"},
		{ID: 2, Name: "Sea Salt", Category: "fresh"},
	}

	tests := []struct {
		slug string
		want bool
	}{
		{slug: "classics", want: true},
		{slug: "fresh", want: true},
		{slug: "seasonal", want: false},
		{slug: "", want: false},
	}

	for _, tt := range tests {
		if got := CategoryInUse(products, tt.slug); got != tt.want {
			t.Errorf("CategoryInUse(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}
