package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SliderImage is a standalone promotional banner, unrelated to Product or Category.
type SliderImage struct {
	ID          primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Category    string             `json:"category" bson:"category"`
	ImgURL      string             `json:"imgUrl" bson:"imgUrl"`
}
