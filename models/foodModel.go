package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is the catalog entry behind a cart line's product reference. The order
// core only reads Availiable; stock arithmetic lives in the inventory system.
type Food struct {
	ID         primitive.ObjectID `bson:"_id" json:"-"`
	Food_id    string             `bson:"food_id" json:"food_id"`
	Name       *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Price      *float64           `bson:"price" json:"price" validate:"required,gt=0"`
	Item_type  ItemType           `bson:"item_type" json:"item_type" validate:"required,eq=FOOD|eq=BEVERAGE"`
	Food_image *string            `bson:"food_image" json:"food_image"`
	Availiable *bool              `bson:"availiable" json:"availiable"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
