package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"sent_back_end/internal/admin"
)

// countingAdminStore ne couvre que DeleteCategory ; tout autre appel
// passerait par le Store embarqué nil et paniquerait.
type countingAdminStore struct {
	admin.Store
	deleteCategoryCalls int
}

func (s *countingAdminStore) DeleteCategory(slug string) error {
	s.deleteCategoryCalls++
	return nil
}

func TestDeleteCategoryBlockedWhenInUse(t *testing.T) {
	withFakeCatalog(t)
	st := &countingAdminStore{}
	orig := Orchestrator
	Orchestrator = admin.NewOrchestrator(st)
	t.Cleanup(func() { Orchestrator = orig })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/api/admin/categories/:slug", DeleteCategory)

	// "classics" est encore référencée par un produit : refus net,
	// sans jamais toucher le store.
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/categories/classics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusConflict)
	}
	if st.deleteCategoryCalls != 0 {
		t.Errorf("store DeleteCategory called %d times, want 0", st.deleteCategoryCalls)
	}

	// Une catégorie orpheline passe et atteint le store.
	req = httptest.NewRequest(http.MethodDelete, "/api/admin/categories/seasonal", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if st.deleteCategoryCalls != 1 {
		t.Errorf("store DeleteCategory called %d times, want 1", st.deleteCategoryCalls)
	}
}
