package pricing

import (
	"sort"

	"sauna-configurator-api/internal/domain"
)

// LinkedProductIDs lists the distinct catalog product ids referenced by a config
func LinkedProductIDs(cfg *domain.ProductConfig) []int64 {
	if cfg == nil {
		return nil
	}
	seen := make(map[int64]bool)
	if cfg.MainProductPipedriveID != nil {
		seen[*cfg.MainProductPipedriveID] = true
	}
	for _, data := range cfg.StepData {
		for _, opt := range data.Options {
			if opt.PipedriveProductID != nil {
				seen[*opt.PipedriveProductID] = true
			}
		}
	}

	ids := make([]int64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ApplyCatalogPrices returns a copy of the config whose linked option prices come
// from the catalog. Configs with a manual price source are returned unchanged.
// Included options keep a zero price.
func ApplyCatalogPrices(cfg *domain.ProductConfig, prices map[int64]domain.CatalogPrice) *domain.ProductConfig {
	out := cfg.Clone()
	if out == nil || out.PriceSource != domain.PriceSourcePipedrive || len(prices) == 0 {
		return out
	}

	for stepID, data := range out.StepData {
		for i, opt := range data.Options {
			if opt.PipedriveProductID == nil {
				continue
			}
			if opt.Included {
				opt.Price = 0
			} else if price, ok := prices[*opt.PipedriveProductID]; ok {
				opt.Price = price.Price
			}
			data.Options[i] = opt
		}
		out.StepData[stepID] = data
	}
	return out
}
