// Package models defines the payloads the CLI exchanges with the API.
package models

import (
	"fmt"
	"strings"
)

// Equipment mirrors the API representation. FechaIngreso is kept as the
// "YYYY-MM-DD" text the server sends.
type Equipment struct {
	ID            int64   `json:"id"`
	NombreDueno   *string `json:"nombre_dueno"`
	ApellidoDueno *string `json:"apellido_dueno"`
	Modelo        *string `json:"modelo"`
	FechaIngreso  *string `json:"fecha_ingreso"`
	Telefono      *string `json:"telefono"`
	Fallo         *string `json:"fallo"`
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// Owner joins first and last name, skipping missing parts.
func (e *Equipment) Owner() string {
	parts := make([]string, 0, 2)
	for _, p := range []*string{e.NombreDueno, e.ApellidoDueno} {
		if p != nil && *p != "" {
			parts = append(parts, *p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// String is the one-line form used in listings.
func (e *Equipment) String() string {
	return fmt.Sprintf("%d\t%s\t%s\t%s", e.ID, orDash(e.FechaIngreso), orDash(e.Modelo), e.Owner())
}

// Details returns one "label: value" line per field.
func (e *Equipment) Details() []string {
	return []string{
		fmt.Sprintf("ID: %d", e.ID),
		"Owner: " + e.Owner(),
		"Phone: " + orDash(e.Telefono),
		"Model: " + orDash(e.Modelo),
		"Received: " + orDash(e.FechaIngreso),
		"Fault: " + orDash(e.Fallo),
	}
}
