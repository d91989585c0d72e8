package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"arbitrack/internal/store"
	domain "arbitrack/pkg/types"
)

// ProductsHandler handles product catalog and offer import endpoints.
type ProductsHandler struct {
	store store.Store
}

// NewProductsHandler creates a new ProductsHandler.
func NewProductsHandler(s store.Store) *ProductsHandler {
	return &ProductsHandler{store: s}
}

// ListProductsInput is the input for listing products.
type ListProductsInput struct {
	Limit  int `query:"limit"  doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset int `query:"offset" doc:"Pagination offset"              minimum:"0"`
}

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	}
}

// ProductIDInput identifies one product by UUID or ASIN.
type ProductIDInput struct {
	ID string `path:"id" doc:"Product UUID or ASIN"`
}

// ProductOutput is the response carrying a single product.
type ProductOutput struct {
	Body domain.Product
}

// UpsertProductInput is the input for creating or updating a product.
type UpsertProductInput struct {
	Body struct {
		ASIN        string `json:"asin"                  minLength:"10" maxLength:"10" doc:"Amazon ASIN" example:"B0C1234567"`
		Title       string `json:"title"                 minLength:"1"                 doc:"Product title"`
		Brand       string `json:"brand,omitempty"`
		Category    string `json:"category,omitempty"`
		ImageURL    string `json:"image_url,omitempty"`
		Description string `json:"description,omitempty"`
	}
}

// AmazonOfferBody is the writable portion of an Amazon offer.
type AmazonOfferBody struct {
	Marketplace  string          `json:"marketplace"             minLength:"1" doc:"Marketplace code" example:"FR"`
	Price        decimal.Decimal `json:"price"                                 doc:"Amazon sale price"`
	ShippingCost decimal.Decimal `json:"shipping_cost,omitempty"`
	FBAFee       decimal.Decimal `json:"fba_fee,omitempty"                     doc:"Observed FBA fee, zero falls back to settings"`
	ReferralFee  decimal.Decimal `json:"referral_fee,omitempty"                doc:"Observed referral fee, zero falls back to settings"`
	SellersCount int             `json:"sellers_count,omitempty"`
	BuyboxStable bool            `json:"buybox_stable,omitempty"`
	BSR          *int            `json:"bsr,omitempty"                         doc:"Best sellers rank, omit when unknown"`
}

// RetailOfferBody is the writable portion of a retail offer.
type RetailOfferBody struct {
	StoreID      string          `json:"store_id"                minLength:"1" doc:"Retail store UUID"`
	Price        decimal.Decimal `json:"price"`
	ShippingCost decimal.Decimal `json:"shipping_cost,omitempty"`
	Availability bool            `json:"availability"`
	URL          string          `json:"url,omitempty"`
}

// ImportAmazonOfferInput is the input for importing one Amazon offer.
type ImportAmazonOfferInput struct {
	ID   string `path:"id" doc:"Product UUID"`
	Body AmazonOfferBody
}

// ImportRetailOfferInput is the input for importing one retail offer.
type ImportRetailOfferInput struct {
	ID   string `path:"id" doc:"Product UUID"`
	Body RetailOfferBody
}

// AmazonOfferOutput is the response carrying a stored Amazon offer.
type AmazonOfferOutput struct {
	Body domain.AmazonOffer
}

// RetailOfferOutput is the response carrying a stored retail offer.
type RetailOfferOutput struct {
	Body domain.RetailOffer
}

// ListOffersOutput is the response carrying all offers for a product.
type ListOffersOutput struct {
	Body struct {
		Amazon []domain.AmazonOffer `json:"amazon"`
		Retail []domain.RetailOffer `json:"retail"`
	}
}

// isASIN reports whether id looks like an ASIN rather than a UUID.
func isASIN(id string) bool {
	return len(id) == 10
}

// ListProducts returns products with pagination.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 50
	}

	products, total, err := h.store.ListProducts(ctx, limit, input.Offset)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing products: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	resp := &ListProductsOutput{}
	resp.Body.Products = products
	resp.Body.Total = total
	return resp, nil
}

// GetProduct returns a single product by UUID or ASIN.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *ProductIDInput,
) (*ProductOutput, error) {
	var (
		p   *domain.Product
		err error
	)
	if isASIN(input.ID) {
		p, err = h.store.GetProductByASIN(ctx, input.ID)
	} else {
		p, err = h.store.GetProduct(ctx, input.ID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product: " + err.Error())
	}

	return &ProductOutput{Body: *p}, nil
}

// UpsertProduct creates a product or overwrites the metadata of an existing
// one with the same ASIN.
func (h *ProductsHandler) UpsertProduct(
	ctx context.Context,
	input *UpsertProductInput,
) (*ProductOutput, error) {
	p := domain.Product{
		ASIN:        input.Body.ASIN,
		Title:       input.Body.Title,
		Brand:       input.Body.Brand,
		Category:    input.Body.Category,
		ImageURL:    input.Body.ImageURL,
		Description: input.Body.Description,
	}

	if err := h.store.UpsertProduct(ctx, &p); err != nil {
		return nil, huma.Error500InternalServerError("upserting product: " + err.Error())
	}

	return &ProductOutput{Body: p}, nil
}

// ImportAmazonOffer stores the Amazon offer for a product on one marketplace,
// replacing any previous observation.
func (h *ProductsHandler) ImportAmazonOffer(
	ctx context.Context,
	input *ImportAmazonOfferInput,
) (*AmazonOfferOutput, error) {
	if _, err := h.store.GetProduct(ctx, input.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product: " + err.Error())
	}

	o := domain.AmazonOffer{
		ProductID:    input.ID,
		Marketplace:  input.Body.Marketplace,
		Price:        input.Body.Price,
		ShippingCost: input.Body.ShippingCost,
		FBAFee:       input.Body.FBAFee,
		ReferralFee:  input.Body.ReferralFee,
		SellersCount: input.Body.SellersCount,
		BuyboxStable: input.Body.BuyboxStable,
		BSR:          input.Body.BSR,
	}

	if err := h.store.UpsertAmazonOffer(ctx, &o); err != nil {
		return nil, huma.Error500InternalServerError("upserting amazon offer: " + err.Error())
	}

	return &AmazonOfferOutput{Body: o}, nil
}

// ImportRetailOffer stores the retail offer for a product at one store,
// replacing any previous observation.
func (h *ProductsHandler) ImportRetailOffer(
	ctx context.Context,
	input *ImportRetailOfferInput,
) (*RetailOfferOutput, error) {
	if _, err := h.store.GetProduct(ctx, input.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, huma.Error404NotFound("product not found")
		}
		return nil, huma.Error500InternalServerError("fetching product: " + err.Error())
	}

	o := domain.RetailOffer{
		ProductID:    input.ID,
		StoreID:      input.Body.StoreID,
		Price:        input.Body.Price,
		ShippingCost: input.Body.ShippingCost,
		Availability: input.Body.Availability,
		URL:          input.Body.URL,
	}

	if err := h.store.UpsertRetailOffer(ctx, &o); err != nil {
		return nil, huma.Error500InternalServerError("upserting retail offer: " + err.Error())
	}

	return &RetailOfferOutput{Body: o}, nil
}

// ListOffers returns all Amazon and retail offers for a product.
func (h *ProductsHandler) ListOffers(
	ctx context.Context,
	input *ProductIDInput,
) (*ListOffersOutput, error) {
	amazon, err := h.store.ListAmazonOffers(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing amazon offers: " + err.Error())
	}

	retail, err := h.store.ListRetailOffers(ctx, input.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing retail offers: " + err.Error())
	}

	resp := &ListOffersOutput{}
	resp.Body.Amazon = amazon
	resp.Body.Retail = retail
	if resp.Body.Amazon == nil {
		resp.Body.Amazon = []domain.AmazonOffer{}
	}
	if resp.Body.Retail == nil {
		resp.Body.Retail = []domain.RetailOffer{}
	}
	return resp, nil
}

// RegisterProductRoutes registers product endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Tags:        []string{"products"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product",
		Description: "Returns a single product by its UUID or ASIN.",
		Tags:        []string{"products"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID:   "upsert-product",
		Method:        http.MethodPost,
		Path:          "/api/v1/products",
		Summary:       "Create or update a product",
		Description:   "Creates a product, or overwrites the metadata of the existing product with the same ASIN.",
		Tags:          []string{"products"},
		DefaultStatus: http.StatusCreated,
	}, h.UpsertProduct)

	huma.Register(api, huma.Operation{
		OperationID: "list-offers",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/offers",
		Summary:     "List offers for a product",
		Tags:        []string{"offers"},
	}, h.ListOffers)

	huma.Register(api, huma.Operation{
		OperationID:   "import-amazon-offer",
		Method:        http.MethodPost,
		Path:          "/api/v1/products/{id}/offers/amazon",
		Summary:       "Import an Amazon offer",
		Description:   "Stores the Amazon offer for one marketplace, replacing any previous observation.",
		Tags:          []string{"offers"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound},
	}, h.ImportAmazonOffer)

	huma.Register(api, huma.Operation{
		OperationID:   "import-retail-offer",
		Method:        http.MethodPost,
		Path:          "/api/v1/products/{id}/offers/retail",
		Summary:       "Import a retail offer",
		Description:   "Stores the retail offer for one store, replacing any previous observation.",
		Tags:          []string{"offers"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound},
	}, h.ImportRetailOffer)
}
