package httpapi

import "net/http"

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgRegisterFailed)
		return
	}

	u, err := s.users.Register(r.Context(), req.NombreUsuario, req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err, msgRegisterFailed)
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{Message: msgUserRegistered, UserID: u.ID})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	if _, err := s.users.Login(r.Context(), req.Email, req.Password); err != nil {
		s.writeError(w, r, err, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: msgLoginOK})
}
