package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Product struct {
	ID      int     `json:"id"`
	StoreID int     `json:"store_id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Stock   bool    `json:"stock"`
}

// NewProduct is the body of an add-product request. Stock defaults to true when omitted.
type NewProduct struct {
	Name  string `json:"name"`
	Price Price  `json:"price"`
	Stock *bool  `json:"stock"`
}

// Price accepts a JSON number or a numeric string such as "12.50".
// An empty string decodes as zero.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return NewValidationError(fmt.Errorf("invalid price %q", s))
		}
		*p = Price(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return NewValidationError(fmt.Errorf("invalid price %s", data))
	}
	*p = Price(f)
	return nil
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	ListProductsByStore(ctx context.Context, storeID int) ([]Product, error)
	DeleteProduct(ctx context.Context, storeID, productID int) error
}
