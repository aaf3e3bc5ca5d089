package httpapi

import "net/http"

func (s *HTTPServer) handleListEquipment(w http.ResponseWriter, r *http.Request) {
	list, err := s.equipment.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, equipmentListResponse{Message: msgSuccess, Data: list})
}

func (s *HTTPServer) handleCreateEquipment(w http.ResponseWriter, r *http.Request) {
	var req equipmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	created, err := s.equipment.Create(r.Context(), req.toModel(0))
	if err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse{Message: msgEquipmentCreated, Data: created})
}

func (s *HTTPServer) handleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	var req equipmentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	updated, err := s.equipment.Update(r.Context(), req.toModel(id))
	if err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse{Message: msgEquipmentUpdated, Data: updated})
}

func (s *HTTPServer) handleDeleteEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	if err := s.equipment.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msgEquipmentDeleted})
}

func (s *HTTPServer) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err, msgEquipmentFetch)
		return
	}

	e, err := s.equipment.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, msgEquipmentFetch)
		return
	}
	writeJSON(w, http.StatusOK, equipmentResponse{Data: e})
}
