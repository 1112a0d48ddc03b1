package filters

import "nouhin-backend/models"

// Users filters the user collection; role is always an exact match.
func Users(list []models.User, q Query) ([]models.User, error) {
	username, hasUsername := q.str("username")
	email, hasEmail := q.str("email")
	role, hasRole := q.str("role")

	out := make([]models.User, 0, len(list))
	for _, u := range list {
		if hasUsername && !textMatches(u.Username, username, q.matchType("username")) {
			continue
		}
		if hasEmail && !textMatches(u.Email, email, q.matchType("email")) {
			continue
		}
		if hasRole && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
