package domain

import "context"

type Store struct {
	ID               int     `json:"id"`
	StoreName        string  `json:"store_name"`
	StoreType        string  `json:"store_type"`
	StoreDescription string  `json:"store_description"`
	ContactNumber    string  `json:"contact_number"`
	Email            string  `json:"email"`
	PasswordHash     string  `json:"-"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// StoreRegistration is the payload accepted by POST /register.
// Coordinates are pointers so that 0.0 is still a provided value.
type StoreRegistration struct {
	StoreName        string   `json:"store_name"`
	StoreType        string   `json:"store_type"`
	StoreDescription string   `json:"store_description"`
	ContactNumber    string   `json:"contact_number"`
	Email            string   `json:"email"`
	Password         string   `json:"password"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type StoreRepository interface {
	CreateStore(ctx context.Context, store *Store) (*Store, error)
	GetStoreByID(ctx context.Context, id int) (*Store, error)
	GetStoreByEmail(ctx context.Context, email string) (*Store, error)
	UpdateStore(ctx context.Context, id int, updates map[string]interface{}) (*Store, error)
	DeleteStore(ctx context.Context, id int) error
}
