package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/whygabriel1/rccwebpage87/voting"
)

func febrero(dia int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.February, dia, 10, 0, 0, 0, time.UTC)
	}
}

func TestDisponibilidadEndpoint(t *testing.T) {
	setupTestDB(t)

	cases := []struct {
		name       string
		tipo       string
		ahora      func() time.Time
		disponible bool
	}{
		{"estudiantiles siempre abierta", voting.TipoEstudiantiles, febrero(1), true},
		{"carnaval dentro de ventana", voting.TipoCarnaval, febrero(5), true},
		{"carnaval fuera de ventana", voting.TipoCarnaval, febrero(10), false},
		{"vocero fuera de ventana", voting.TipoVocero, febrero(5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &EleccionHandler{Ahora: tc.ahora}
			c, rec := newContext(t, http.MethodGet, "/api/elecciones/disponibilidad/"+tc.tipo, nil)
			c.SetParamNames("tipo")
			c.SetParamValues(tc.tipo)
			if err := h.Disponibilidad(c); err != nil {
				t.Fatalf("Disponibilidad: %v", err)
			}
			wantStatus(t, rec, http.StatusOK)

			body := decodeBody(t, rec)
			if body["disponible"] != tc.disponible {
				t.Errorf("disponible = %v, want %v", body["disponible"], tc.disponible)
			}
			if body["tipoEleccion"] != tc.tipo {
				t.Errorf("tipoEleccion = %v, want %v", body["tipoEleccion"], tc.tipo)
			}
			if !tc.disponible && body["mensaje"] == "" {
				t.Error("ventana cerrada sin mensaje")
			}
		})
	}
}

func TestCrearEleccion(t *testing.T) {
	setupTestDB(t)
	h := NewEleccionHandler()

	c, rec := newContext(t, http.MethodPost, "/api/elecciones", map[string]any{
		"nombre":      "Reina del Carnaval 2025",
		"descripcion": "Elección anual",
		"fecha":       "2025-02-05",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusCreated)
	body := decodeBody(t, rec)
	if body["nombre"] != "Reina del Carnaval 2025" {
		t.Errorf("nombre = %v", body["nombre"])
	}
}

func TestCrearEleccionFechaInvalida(t *testing.T) {
	setupTestDB(t)
	h := NewEleccionHandler()

	c, rec := newContext(t, http.MethodPost, "/api/elecciones", map[string]any{
		"nombre": "Vocero",
		"fecha":  "05-02-2025",
	})
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	wantStatus(t, rec, http.StatusBadRequest)
	fields, _ := decodeBody(t, rec)["fields"].(map[string]any)
	if fields["fecha"] == nil {
		t.Errorf("fecha inválida sin error de campo: %v", fields)
	}
}
