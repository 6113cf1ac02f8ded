package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is a document in the cartItems collection. Email is the owner
// key; the menu fields are denormalized from the menu item the customer
// picked so the cart renders without extra lookups.
type CartItem struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	MenuItemID string             `bson:"menuItemId,omitempty" json:"menuItemId,omitempty"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Price      float64            `bson:"price,omitempty" json:"price,omitempty"`
}
