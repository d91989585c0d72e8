package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	domain "arbitrack/pkg/types"
)

// ProductPage is one page of the product catalog.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

// ProductOffers holds both offer sides for one product.
type ProductOffers struct {
	Amazon []domain.AmazonOffer `json:"amazon"`
	Retail []domain.RetailOffer `json:"retail"`
}

// AmazonOfferRequest is the payload for importing an Amazon offer.
type AmazonOfferRequest struct {
	Marketplace  string          `json:"marketplace"`
	Price        decimal.Decimal `json:"price"`
	ShippingCost decimal.Decimal `json:"shipping_cost,omitempty"`
	FBAFee       decimal.Decimal `json:"fba_fee,omitempty"`
	ReferralFee  decimal.Decimal `json:"referral_fee,omitempty"`
	SellersCount int             `json:"sellers_count,omitempty"`
	BuyboxStable bool            `json:"buybox_stable,omitempty"`
	BSR          *int            `json:"bsr,omitempty"`
}

// RetailOfferRequest is the payload for importing a retail offer.
type RetailOfferRequest struct {
	StoreID      string          `json:"store_id"`
	Price        decimal.Decimal `json:"price"`
	ShippingCost decimal.Decimal `json:"shipping_cost,omitempty"`
	Availability bool            `json:"availability"`
	URL          string          `json:"url,omitempty"`
}

// ListProducts returns one page of the product catalog.
func (c *Client) ListProducts(ctx context.Context, limit, offset int) (*ProductPage, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page ProductPage
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct returns a single product by UUID or ASIN.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, "/api/v1/products/"+id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertProduct creates a product or overwrites the existing one with the
// same ASIN.
func (c *Client) UpsertProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var created domain.Product
	req := map[string]string{
		"asin":        p.ASIN,
		"title":       p.Title,
		"brand":       p.Brand,
		"category":    p.Category,
		"image_url":   p.ImageURL,
		"description": p.Description,
	}
	if err := c.post(ctx, "/api/v1/products", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListOffers returns all offers for a product.
func (c *Client) ListOffers(ctx context.Context, productID string) (*ProductOffers, error) {
	var offers ProductOffers
	if err := c.get(ctx, "/api/v1/products/"+productID+"/offers", &offers); err != nil {
		return nil, err
	}
	return &offers, nil
}

// ImportAmazonOffer stores an Amazon offer observation for a product.
func (c *Client) ImportAmazonOffer(
	ctx context.Context,
	productID string,
	req *AmazonOfferRequest,
) (*domain.AmazonOffer, error) {
	var o domain.AmazonOffer
	path := fmt.Sprintf("/api/v1/products/%s/offers/amazon", productID)
	if err := c.post(ctx, path, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// ImportRetailOffer stores a retail offer observation for a product.
func (c *Client) ImportRetailOffer(
	ctx context.Context,
	productID string,
	req *RetailOfferRequest,
) (*domain.RetailOffer, error) {
	var o domain.RetailOffer
	path := fmt.Sprintf("/api/v1/products/%s/offers/retail", productID)
	if err := c.post(ctx, path, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
