package handler

import (
	"strings"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// uuidParam parses the named path parameter.
func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a UUID"))
	}

	return id, nil
}

// pageRequest reads the page and limit query parameters. Missing values are filled in by
// the use cases.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	var page entity.PageRequest
	err := echo.QueryParamsBinder(c).
		Int("page", &page.Page).
		Int("limit", &page.Limit).
		BindError()
	if err != nil {
		return entity.PageRequest{}, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("page and limit must be integers"))
	}

	return page, nil
}

// productFilter reads the listing filter from the query string. Facet values may be given
// comma separated or as repeated parameters.
func productFilter(c echo.Context) (catalog.Filter, error) {
	var filter catalog.Filter
	var sortBy string
	var featured, inStock bool
	binder := echo.QueryParamsBinder(c).
		String("search", &filter.Search).
		String("sortBy", &sortBy).
		Float64("rating", &filter.MinRating).
		BindWithDelimiter("tags", &filter.Tags, ",").
		BindWithDelimiter("size", &filter.Sizes, ",").
		BindWithDelimiter("color", &filter.Colors, ",").
		Bool("featured", &featured).
		Bool("inStock", &inStock).
		CustomFunc("minPrice", decimalParam("minPrice", &filter.MinPrice)).
		CustomFunc("maxPrice", decimalParam("maxPrice", &filter.MaxPrice))
	if err := binder.BindError(); err != nil {
		var bindErr *echo.BindingError
		if errors.As(err, &bindErr) {
			return catalog.Filter{}, errors.WithStack(domainerrors.ErrInvalidFilter.WithDetails("invalid " + bindErr.Field))
		}

		return catalog.Filter{}, errors.WithStack(domainerrors.ErrInvalidFilter)
	}

	filter.SortBy = catalog.SortBy(sortBy)
	if c.QueryParam("featured") != "" {
		filter.Featured = &featured
	}
	if c.QueryParam("inStock") != "" {
		filter.InStock = &inStock
	}

	return filter, nil
}

func decimalParam(name string, dest **decimal.Decimal) func(values []string) []error {
	return func(values []string) []error {
		raw := strings.TrimSpace(values[0])
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return []error{echo.NewBindingError(name, values, "must be a decimal number", err)}
		}
		*dest = &d

		return nil
	}
}

// listProductsInput collects the filter, paging and facet flag shared by every listing.
func listProductsInput(c echo.Context) (*usecase.ListProductsInput, error) {
	filter, err := productFilter(c)
	if err != nil {
		return nil, err
	}
	page, err := pageRequest(c)
	if err != nil {
		return nil, err
	}

	return &usecase.ListProductsInput{
		Filter:         filter,
		CategorySlug:   strings.TrimSpace(c.QueryParam("category")),
		CollectionSlug: strings.TrimSpace(c.QueryParam("collection")),
		Page:           page,
		IncludeFacets:  c.QueryParam("facets") == "true",
	}, nil
}
