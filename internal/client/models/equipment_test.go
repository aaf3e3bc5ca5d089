package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestEquipment_Owner(t *testing.T) {
	tests := []struct {
		name string
		e    Equipment
		want string
	}{
		{"both", Equipment{NombreDueno: ptr("Ana"), ApellidoDueno: ptr("Ruiz")}, "Ana Ruiz"},
		{"first only", Equipment{NombreDueno: ptr("Ana")}, "Ana"},
		{"empty last", Equipment{NombreDueno: ptr("Ana"), ApellidoDueno: ptr("")}, "Ana"},
		{"none", Equipment{}, "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.e.Owner())
		})
	}
}

func TestEquipment_StringAndDetails(t *testing.T) {
	e := &Equipment{ID: 3, NombreDueno: ptr("Ana"), Modelo: ptr("X1"), FechaIngreso: ptr("2024-01-01")}

	assert.Equal(t, "3\t2024-01-01\tX1\tAna", e.String())
	assert.Equal(t, []string{
		"ID: 3",
		"Owner: Ana",
		"Phone: -",
		"Model: X1",
		"Received: 2024-01-01",
		"Fault: -",
	}, e.Details())
}
