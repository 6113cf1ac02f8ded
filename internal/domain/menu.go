package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a document in the menu collection. The server only reads
// these; the collection is maintained out of band.
type MenuItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Recipe   string             `bson:"recipe,omitempty" json:"recipe,omitempty"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`
	Price    float64            `bson:"price" json:"price"`
}

// Review is a document in the reviews collection, read-only for this server.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name" json:"name"`
	Details string             `bson:"details,omitempty" json:"details,omitempty"`
	Rating  float64            `bson:"rating" json:"rating"`
}
