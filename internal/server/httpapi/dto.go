package httpapi

import "github.com/dmitrijs2005/tallerkeeper/internal/server/models"

type equipmentRequest struct {
	NombreDueno   *string     `json:"nombre_dueno"`
	ApellidoDueno *string     `json:"apellido_dueno"`
	Modelo        *string     `json:"modelo"`
	FechaIngreso  models.Date `json:"fecha_ingreso"`
	Telefono      *string     `json:"telefono"`
	Fallo         *string     `json:"fallo"`
}

func (r *equipmentRequest) toModel(id int64) *models.Equipment {
	return &models.Equipment{
		ID:            id,
		NombreDueno:   r.NombreDueno,
		ApellidoDueno: r.ApellidoDueno,
		Modelo:        r.Modelo,
		FechaIngreso:  r.FechaIngreso,
		Telefono:      r.Telefono,
		Fallo:         r.Fallo,
	}
}

type registerRequest struct {
	NombreUsuario *string `json:"nombreusuario"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type equipmentListResponse struct {
	Message string              `json:"message"`
	Data    []*models.Equipment `json:"data"`
}

type equipmentResponse struct {
	Message string            `json:"message,omitempty"`
	Data    *models.Equipment `json:"data"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

const (
	msgSuccess           = "success"
	msgEquipmentCreated  = "Equipo agregado con éxito"
	msgEquipmentUpdated  = "Equipo actualizado con éxito"
	msgEquipmentDeleted  = "Equipo eliminado con éxito"
	msgEquipmentNotFound = "Equipo no encontrado"
	msgEquipmentFetch    = "Error al obtener el equipo"
	msgUserRegistered    = "Usuario registrado con éxito"
	msgRegisterFailed    = "Error al registrar el usuario"
	msgDuplicateEmail    = "Este correo ya está registrado"
	msgBadCredentials    = "Correo o contraseña incorrectos"
	msgLoginOK           = "Inicio de sesión exitoso"
	msgBadRequest        = "Solicitud inválida"
	msgPoolExhausted     = "Servicio ocupado, intente más tarde"
	msgInternal          = "Error interno del servidor"
)
