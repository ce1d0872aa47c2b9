package handlers

import (
	"net/http"
	"testing"

	"gorm.io/gorm"

	"github.com/whygabriel1/rccwebpage87/models"
	"github.com/whygabriel1/rccwebpage87/voting"
)

func seedCandidatoVoto(t *testing.T, db *gorm.DB, grado, seccion, tipo string) models.Candidato {
	t.Helper()
	c := models.Candidato{Nombre: "Gabriel", Apellido: "Martinez", Grado: grado, Seccion: seccion, TipoEleccion: tipo}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("failed to seed candidato: %v", err)
	}
	return c
}

func payloadVoto(candidatoID uint) map[string]any {
	return map[string]any{
		"cedula":       "30250286",
		"nombre":       "Josue",
		"apellido":     "Rodriguez",
		"rol":          "Estudiante",
		"anioSeccion":  "5E",
		"direccion":    "Calle 1",
		"candidatoId":  candidatoID,
		"tipoEleccion": voting.TipoEstudiantiles,
	}
}

func TestCrearVotacion(t *testing.T) {
	db := setupTestDB(t)
	h := NewVotacionHandler()
	cand := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(cand.ID))
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)

	body := decodeBody(t, rec)
	if body["fechaVoto"] == nil || body["fechaVoto"] == "" {
		t.Errorf("fechaVoto no asignada: %v", body)
	}
	if body["id"] == nil {
		t.Errorf("id no asignado: %v", body)
	}
}

func TestCrearVotacionDuplicada(t *testing.T) {
	db := setupTestDB(t)
	h := NewVotacionHandler()
	cand := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)
	otro := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(cand.ID))
	if err := h.Create(c); err != nil {
		t.Fatalf("primer Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)

	// reintento con otro candidato: rechazado, el registro no cambia
	c, rec = newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(otro.ID))
	if err := h.Create(c); err != nil {
		t.Fatalf("segundo Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	if msg := decodeBody(t, rec)["message"]; msg != "Este estudiante ya ha votado en esta elección." {
		t.Errorf("mensaje de duplicado = %v", msg)
	}

	var n int64
	db.Model(&models.Votacion{}).Count(&n)
	if n != 1 {
		t.Errorf("el registro tiene %d votos, want 1", n)
	}
}

func TestCrearVotacionCamposFaltantes(t *testing.T) {
	setupTestDB(t)
	h := NewVotacionHandler()

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", map[string]any{
		"cedula":       "30250286",
		"tipoEleccion": "estudiantiles",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)

	body := decodeBody(t, rec)
	fields, ok := body["fields"].(map[string]any)
	if !ok {
		t.Fatalf("la respuesta no enumera campos: %v", body)
	}
	for _, campo := range []string{"nombre", "apellido", "rol", "anioSeccion", "direccion", "candidatoId"} {
		if fields[campo] == nil {
			t.Errorf("falta el error del campo %q: %v", campo, fields)
		}
	}
}

func TestCrearVotacionTipoInvalido(t *testing.T) {
	db := setupTestDB(t)
	h := NewVotacionHandler()
	cand := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)

	p := payloadVoto(cand.ID)
	p["tipoEleccion"] = "alcalde"
	c, rec := newContext(t, http.MethodPost, "/api/votaciones", p)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	fields, _ := decodeBody(t, rec)["fields"].(map[string]any)
	if fields == nil || fields["tipoEleccion"] == nil {
		t.Errorf("tipo inválido sin error de campo: %s", rec.Body.String())
	}
}

func TestCrearVotacionCandidatoInexistente(t *testing.T) {
	setupTestDB(t)
	h := NewVotacionHandler()

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(999))
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	fields, _ := decodeBody(t, rec)["fields"].(map[string]any)
	if fields == nil || fields["candidatoId"] == nil {
		t.Errorf("candidato inexistente sin error de campo: %s", rec.Body.String())
	}
}

func TestCrearVotacionCandidatoInactivo(t *testing.T) {
	db := setupTestDB(t)
	h := NewVotacionHandler()

	inactivo := false
	cand := models.Candidato{Nombre: "Pedro", Apellido: "L", Grado: "5", Seccion: "E", TipoEleccion: voting.TipoEstudiantiles, Activo: &inactivo}
	if err := db.Create(&cand).Error; err != nil {
		t.Fatalf("failed to seed candidato: %v", err)
	}

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(cand.ID))
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
}

func TestListarVotacionesPorTipo(t *testing.T) {
	db := setupTestDB(t)
	h := NewVotacionHandler()
	est := seedCandidatoVoto(t, db, "5", "E", voting.TipoEstudiantiles)

	c, rec := newContext(t, http.MethodPost, "/api/votaciones", payloadVoto(est.ID))
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)

	c, rec = newContext(t, http.MethodGet, "/api/votaciones/tipo/estudiantiles", nil)
	c.SetParamNames("tipo")
	c.SetParamValues("estudiantiles")
	if err := h.ListByTipo(c); err != nil {
		t.Fatalf("ListByTipo: %v", err)
	}
	wantStatus(t, rec, http.StatusOK)

	c, rec = newContext(t, http.MethodGet, "/api/votaciones/tipo/carnaval", nil)
	c.SetParamNames("tipo")
	c.SetParamValues("carnaval")
	if err := h.ListByTipo(c); err != nil {
		t.Fatalf("ListByTipo: %v", err)
	}
	if rec.Body.String() == "" || rec.Body.String()[0] != '[' {
		t.Errorf("respuesta no es lista: %s", rec.Body.String())
	}
}
