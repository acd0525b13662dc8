package handlers

import "net/http"

// LogoutResponse represents the logout acknowledgement
// swagger:model LogoutResponse
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler acknowledging logout. Tokens are
// stateless; the server keeps no session table, so logout is a client-side
// token discard.
// @Summary Log out
// @Tags users
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Router /api/users/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, LogoutResponse{
			Success: true,
			Message: "Logged out successfully",
		})
	}
}
