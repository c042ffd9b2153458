package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/velamart/storefront-backend/api/responses"
	"github.com/velamart/storefront-backend/api/validators"
	"github.com/velamart/storefront-backend/internal/cart"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
	"github.com/velamart/storefront-backend/pkg/logger"
	"github.com/velamart/storefront-backend/pkg/types"
)

type cartQuoteRequest struct {
	StoreID      string                 `json:"store_id" validate:"required,uuid"`
	CurrencyCode string                 `json:"currency_code" validate:"required,len=3"`
	CustomerID   *string                `json:"customer_id,omitempty" validate:"omitempty,uuid"`
	Persist      bool                   `json:"persist,omitempty"`
	Items        []cartQuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

type cartQuoteItemRequest struct {
	ProductID         string                   `json:"product_id" validate:"required,uuid"`
	Quantity          int                      `json:"quantity" validate:"required,min=1"`
	Attributes        types.AttributeSelection `json:"attributes,omitempty"`
	EnteredPrice      *decimal.Decimal         `json:"entered_price,omitempty"`
	ExpectedUnitPrice *decimal.Decimal         `json:"expected_unit_price,omitempty"`
	RentalStart       *time.Time               `json:"rental_start,omitempty"`
	RentalEnd         *time.Time               `json:"rental_end,omitempty"`
}

// CartQuote serves POST /cart/quote: prices the posted cart snapshot and
// optionally persists it for the customer.
func CartQuote(svc *cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var body cartQuoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := quoteInputFromRequest(body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if logg != nil {
			ctx = logg.WithStoreID(ctx, input.StoreID.String())
		}

		quote, err := svc.QuoteCart(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if body.Persist && input.CustomerID != nil {
			if err := svc.SaveQuote(ctx, *input.CustomerID, input, quote); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, quote)
	}
}

func quoteInputFromRequest(body cartQuoteRequest) (cart.QuoteInput, error) {
	storeID, err := uuid.Parse(body.StoreID)
	if err != nil {
		return cart.QuoteInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid store id")
	}

	input := cart.QuoteInput{
		StoreID:      storeID,
		CurrencyCode: body.CurrencyCode,
		Items:        make([]cart.QuoteItemInput, 0, len(body.Items)),
	}
	if body.CustomerID != nil {
		customerID, err := uuid.Parse(*body.CustomerID)
		if err != nil {
			return cart.QuoteInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid customer id")
		}
		input.CustomerID = &customerID
	}

	for _, item := range body.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return cart.QuoteInput{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id")
		}
		input.Items = append(input.Items, cart.QuoteItemInput{
			ProductID:         productID,
			Quantity:          item.Quantity,
			Attributes:        item.Attributes,
			EnteredPrice:      item.EnteredPrice,
			ExpectedUnitPrice: item.ExpectedUnitPrice,
			RentalStart:       item.RentalStart,
			RentalEnd:         item.RentalEnd,
		})
	}
	return input, nil
}
