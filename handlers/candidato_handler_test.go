package handlers

import (
	"net/http"
	"testing"

	"github.com/whygabriel1/rccwebpage87/voting"
)

func TestListCandidatosPorTipo(t *testing.T) {
	db := setupTestDB(t)
	h := NewCandidatoHandler()
	seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)
	seedCandidatoVoto(t, db, "4", "A", voting.TipoCarnaval)

	c, rec := newContext(t, http.MethodGet, "/api/candidatos/tipo/carnaval", nil)
	c.SetParamNames("tipo")
	c.SetParamValues("carnaval")
	if err := h.ListByTipo(c); err != nil {
		t.Fatalf("ListByTipo: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)

	var items []map[string]any
	decodeInto(t, rec, &items)
	if len(items) != 1 {
		t.Fatalf("candidatos carnaval = %d, want 1", len(items))
	}
	if items[0]["tipoEleccion"] != voting.TipoCarnaval {
		t.Errorf("tipoEleccion = %v", items[0]["tipoEleccion"])
	}
}

func TestCrearCandidato(t *testing.T) {
	setupTestDB(t)
	h := NewCandidatoHandler()

	c, rec := newContext(t, http.MethodPost, "/api/candidatos", map[string]any{
		"nombre":       "Luisa",
		"apellido":     "Fernandez",
		"grado":        "5",
		"seccion":      "e",
		"tipoEleccion": voting.TipoVocero,
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)
	body := decodeBody(t, rec)
	if body["seccion"] != "E" {
		t.Errorf("seccion = %v, want E", body["seccion"])
	}
}

func TestCrearCandidatoValidacion(t *testing.T) {
	setupTestDB(t)
	h := NewCandidatoHandler()

	c, rec := newContext(t, http.MethodPost, "/api/candidatos", map[string]any{
		"nombre":       "",
		"apellido":     "Fernandez",
		"grado":        "10",
		"seccion":      "EE",
		"tipoEleccion": "presidencial",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	fields, _ := decodeBody(t, rec)["fields"].(map[string]any)
	for _, campo := range []string{"nombre", "grado", "seccion", "tipoEleccion"} {
		if fields[campo] == nil {
			t.Errorf("falta el error del campo %q: %v", campo, fields)
		}
	}
}

func TestActualizarCandidatoActivo(t *testing.T) {
	db := setupTestDB(t)
	h := NewCandidatoHandler()
	cand := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)

	inactivo := false
	c, rec := newContext(t, http.MethodPut, "/api/candidatos/1", map[string]any{
		"nombre":       cand.Nombre,
		"apellido":     cand.Apellido,
		"grado":        cand.Grado,
		"seccion":      cand.Seccion,
		"tipoEleccion": cand.TipoEleccion,
		"activo":       inactivo,
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)
	if body := decodeBody(t, rec); body["activo"] != false {
		t.Errorf("activo = %v, want false", body["activo"])
	}
}

func TestEliminarCandidatoInexistente(t *testing.T) {
	setupTestDB(t)
	h := NewCandidatoHandler()

	c, rec := newContext(t, http.MethodDelete, "/api/candidatos/404", nil)
	c.SetParamNames("id")
	c.SetParamValues("404")
	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	wantStatus(t, rec, http.StatusNotFound)
}
