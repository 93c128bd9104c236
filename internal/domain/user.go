package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account in the tracker.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username string             `bson:"username" json:"username"`
}
