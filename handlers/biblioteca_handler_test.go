package handlers

import (
	"net/http"
	"testing"
)

func TestBibliotecaCRUD(t *testing.T) {
	setupTestDB(t)
	h := NewBibliotecaHandler()

	c, rec := newContext(t, http.MethodPost, "/api/biblioteca", map[string]any{
		"nombreLibro": "Doña Bárbara",
		"autor":       "Rómulo Gallegos",
		"portada":     "https://cdn.example.com/barbara.jpg",
		"pdf":         "https://cdn.example.com/barbara.pdf",
		"materia":     "Castellano",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)
	id := decodeBody(t, rec)["id"]
	if id == nil {
		t.Fatal("libro sin id")
	}

	c, rec = newContext(t, http.MethodGet, "/api/biblioteca/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody(t, rec)["nombreLibro"]; got != "Doña Bárbara" {
		t.Errorf("nombreLibro = %v", got)
	}

	c, rec = newContext(t, http.MethodPut, "/api/biblioteca/1", map[string]any{
		"nombreLibro": "Doña Bárbara",
		"autor":       "Rómulo Gallegos",
		"materia":     "Literatura",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)
	if got := decodeBody(t, rec)["materia"]; got != "Literatura" {
		t.Errorf("materia = %v", got)
	}

	c, rec = newContext(t, http.MethodDelete, "/api/biblioteca/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)
	if msg := decodeBody(t, rec)["message"]; msg != "Libro deleted successfully" {
		t.Errorf("message = %v", msg)
	}

	c, rec = newContext(t, http.MethodGet, "/api/biblioteca/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Get(c); err != nil {
		t.Fatalf("Get tras delete: %v", err)
	}
	wantStatus(t, rec, http.StatusNotFound)
}

func TestBibliotecaValidacion(t *testing.T) {
	setupTestDB(t)
	h := NewBibliotecaHandler()

	c, rec := newContext(t, http.MethodPost, "/api/biblioteca", map[string]any{
		"nombreLibro": "  ",
		"autor":       "",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	fields, _ := decodeBody(t, rec)["fields"].(map[string]any)
	for _, campo := range []string{"nombreLibro", "autor", "materia"} {
		if fields[campo] == nil {
			t.Errorf("falta el error del campo %q: %v", campo, fields)
		}
	}
}
