package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Cuisine is a pre-seeded document of the cuisines collection.
type Cuisine struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// Tag is a pre-seeded document of the tags collection.
type Tag struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}
