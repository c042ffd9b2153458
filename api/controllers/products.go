package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/velamart/storefront-backend/api/responses"
	"github.com/velamart/storefront-backend/api/validators"
	"github.com/velamart/storefront-backend/internal/catalog"
	pkgerrors "github.com/velamart/storefront-backend/pkg/errors"
	"github.com/velamart/storefront-backend/pkg/logger"
)

// ProductPrice serves GET /products/{id}/price. Query parameters: currency
// (falls back to the platform default), qty, store_id, customer_id.
func ProductPrice(svc *catalog.Service, defaultCurrency string, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid product id"))
			return
		}

		currency := validators.SanitizeString(r.URL.Query().Get("currency"), 3)
		if currency == "" {
			currency = defaultCurrency
		}

		quantity := 1
		if raw := r.URL.Query().Get("qty"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "qty must be a positive integer"))
				return
			}
			quantity = parsed
		}

		input := catalog.ProductPriceInput{
			ProductID:    productID,
			CurrencyCode: currency,
			Quantity:     quantity,
		}
		if raw := r.URL.Query().Get("store_id"); raw != "" {
			storeID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid store id"))
				return
			}
			input.StoreID = storeID
		}
		if raw := r.URL.Query().Get("customer_id"); raw != "" {
			customerID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid customer id"))
				return
			}
			input.CustomerID = &customerID
		}

		if logg != nil {
			ctx = logg.WithProductID(ctx, productID.String())
		}

		dto, err := svc.ProductPrice(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}
