package services

import (
	"nouhin-backend/filters"
	"nouhin-backend/models"
	"nouhin-backend/store"
)

// ListUsers filters the read-mostly user collection; users are only ever
// loaded from disk or imported, never managed through the API.
func (s *Service) ListUsers(q filters.Query) ([]models.User, error) {
	var out []models.User
	var err error
	s.store.View(func(st *store.State) {
		out, err = filters.Users(st.Users, q)
	})
	return out, err
}
