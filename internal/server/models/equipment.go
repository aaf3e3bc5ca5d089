package models

// Equipment is a customer's device left for service. Descriptive fields are
// nullable: absent request fields are stored as NULL.
type Equipment struct {
	ID            int64   `json:"id"`
	NombreDueno   *string `json:"nombre_dueno"`
	ApellidoDueno *string `json:"apellido_dueno"`
	Modelo        *string `json:"modelo"`
	FechaIngreso  Date    `json:"fecha_ingreso"`
	Telefono      *string `json:"telefono"`
	Fallo         *string `json:"fallo"`
}
