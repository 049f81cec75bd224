package models

import "go.mongodb.org/mongo-driver/bson"

const RoleAdmin = "admin"

// IsAdmin reports whether a stored user document carries the admin role.
// A nil document (no such user) is never an admin.
func IsAdmin(user bson.M) bool {
	if user == nil {
		return false
	}
	role, _ := user["role"].(string)
	return role == RoleAdmin
}
