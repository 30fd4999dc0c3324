package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus est un enum typé : seules les cinq valeurs ci-dessous
// sont acceptées par la mise à jour de statut.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "Order Placed"
	StatusPacking        OrderStatus = "Packing"
	StatusShipped        OrderStatus = "Shipped"
	StatusOutForDelivery OrderStatus = "Out for delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPlaced, StatusPacking, StatusShipped, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID        string             `bson:"user_id" json:"userId"`
	Items         []OrderItem        `bson:"items" json:"items"`
	Address       Address            `bson:"address" json:"address"`
	Amount        float64            `bson:"amount" json:"amount"`
	PaymentMethod string             `bson:"payment_method" json:"paymentMethod"`
	Status        OrderStatus        `bson:"status" json:"status"`
	Date          time.Time          `bson:"date" json:"date"`
}

// OrderItem est un instantané dénormalisé du produit au moment de la
// commande : le produit peut être supprimé ensuite, les liens de
// téléchargement restent.
type OrderItem struct {
	ProductID     string  `bson:"product_id" json:"productId"`
	Title         string  `bson:"title" json:"title"`
	Price         float64 `bson:"price" json:"price"`
	Quantity      int64   `bson:"quantity" json:"quantity"`
	Image         string  `bson:"image" json:"image"`
	ProjectFiles  string  `bson:"project_files" json:"projectFiles"`
	Documentation string  `bson:"documentation" json:"documentation"`
}

type Address struct {
	FirstName string `bson:"first_name" json:"firstName"`
	LastName  string `bson:"last_name" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Street    string `bson:"street" json:"street"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	Zipcode   string `bson:"zipcode" json:"zipcode"`
	Country   string `bson:"country" json:"country"`
	Phone     string `bson:"phone" json:"phone"`
}
