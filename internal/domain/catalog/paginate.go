package catalog

import "storefront/internal/domain/entity"

// Paginate cuts one page out of an already filtered and sorted listing.
func Paginate(products []*entity.Product, req entity.PageRequest) entity.Page[*entity.Product] {
	total := len(products)
	start := max(0, min(req.Offset(), total))
	end := total
	if req.Limit > 0 {
		end = start + min(req.Limit, total-start)
	}

	return entity.NewPage(products[start:end], total, req)
}
