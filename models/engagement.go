package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rating is append-only: there is no update or delete path, and a user may
// rate the same product more than once.
type Rating struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ProductID string             `json:"productId" bson:"productId"`
	UserID    string             `json:"userId" bson:"userId"`
	Rating    int                `json:"rating" bson:"rating"` // 1-5
	Review    string             `json:"review,omitempty" bson:"review,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type Answer struct {
	UserID string    `json:"userId" bson:"userId"`
	Name   string    `json:"name" bson:"name"`
	Answer string    `json:"answer" bson:"answer"`
	Date   time.Time `json:"date" bson:"date"`
}

type Question struct {
	ID         primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	QuestionID string             `json:"questionId" bson:"questionId"`
	ProductID  string             `json:"productId" bson:"productId"`
	UserID     string             `json:"userId" bson:"userId"`
	Username   string             `json:"username" bson:"username"`
	Question   string             `json:"question" bson:"question"`
	Answers    []Answer           `json:"answers" bson:"answers"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
}
