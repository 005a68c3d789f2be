package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TodoItem is embedded in its owning Account document; it has no
// top-level collection of its own.
type TodoItem struct {
	ID   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Text string             `json:"text" bson:"text"`
}

type Account struct {
	ID       primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
	Password string             `json:"-" bson:"password"`
	Todos    []TodoItem         `json:"todos" bson:"todos"`
}
