package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level stored on a user document. Most documents carry
// no role at all; only the admin role grants anything.
type Role string

// RoleAdmin is the only role with elevated access.
const RoleAdmin Role = "admin"

// IsAdmin reports whether the role grants admin access. Absence of a role
// and any unknown role value are both non-admin.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// User is a document in the users collection. Email is the logical identity
// key, enforced by a unique index.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
