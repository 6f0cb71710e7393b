package resolver

import (
	"strings"

	"sauna-configurator-api/internal/domain"
)

// Classification prefers the structured Family/Category fields and falls back to
// substring matching on ids, names and titles for data entered before those fields existed.

// ClassifyFamily infers the product family of a product
func ClassifyFamily(productID, productName string, explicit domain.ProductFamily) domain.ProductFamily {
	if explicit != domain.FamilyUnknown {
		return explicit
	}
	text := strings.ToLower(productID + " " + productName)
	switch {
	case strings.Contains(text, "hiki"):
		return domain.FamilyHiki
	case strings.Contains(text, "aisti"):
		return domain.FamilyAisti
	case strings.Contains(text, "cube"):
		return domain.FamilyCube
	case strings.Contains(text, "barrel"):
		return domain.FamilyBarrel
	case strings.Contains(text, "aura"):
		return domain.FamilyAura
	default:
		return domain.FamilyUnknown
	}
}

// productMatches reports whether the explicit family or the id/name text names the family
func productMatches(cfg *domain.ProductConfig, family domain.ProductFamily) bool {
	if cfg.Family == family {
		return true
	}
	text := strings.ToLower(cfg.ProductID + " " + cfg.ProductName)
	return strings.Contains(text, string(family))
}

// excludesRearGlassWall is true for Hiki and Aisti products
func excludesRearGlassWall(cfg *domain.ProductConfig) bool {
	return productMatches(cfg, domain.FamilyHiki) || productMatches(cfg, domain.FamilyAisti)
}

// rearWallFamily classifies a product as cube or barrel for rear wall handling
func rearWallFamily(cfg *domain.ProductConfig) domain.ProductFamily {
	switch cfg.Family {
	case domain.FamilyCube, domain.FamilyBarrel:
		return cfg.Family
	}
	switch {
	case productMatches(cfg, domain.FamilyCube):
		return domain.FamilyCube
	case productMatches(cfg, domain.FamilyBarrel):
		return domain.FamilyBarrel
	default:
		return domain.FamilyUnknown
	}
}

// isAura is true when step images must not be overridden
func isAura(cfg *domain.ProductConfig) bool {
	return productMatches(cfg, domain.FamilyAura)
}

// classificationTitle is the pre-override title when one was recorded
func classificationTitle(opt domain.Option) string {
	if opt.OriginalTitle != "" {
		return strings.ToLower(opt.OriginalTitle)
	}
	return strings.ToLower(opt.Title)
}

func mentionsBackwall(title string) bool {
	return strings.Contains(title, "backwall") || strings.Contains(title, "back wall")
}

// IsFullGlassBackwall matches the cube-excluded rear wall option
func IsFullGlassBackwall(opt domain.Option) bool {
	if opt.ID == "full-glass-backwall" {
		return true
	}
	if opt.Category != domain.CategoryNone {
		return opt.Category == domain.CategoryBackwallFullGlass
	}
	title := classificationTitle(opt)
	return (strings.Contains(title, "full glass") || strings.Contains(title, "fullglass")) && mentionsBackwall(title)
}

func isFullGlassBackwallForImage(opt domain.Option) bool {
	return IsFullGlassBackwall(opt) || strings.Contains(opt.ID, "full-glass-backwall")
}

// IsWoodenBackwall matches the wooden rear wall option
func IsWoodenBackwall(opt domain.Option) bool {
	if opt.Category != domain.CategoryNone {
		return opt.Category == domain.CategoryBackwallWooden
	}
	if strings.Contains(opt.ID, "wooden-backwall") {
		return true
	}
	title := classificationTitle(opt)
	return strings.Contains(title, "wooden") && mentionsBackwall(title)
}

// IsHalfMoon matches the half moon glass option
func IsHalfMoon(opt domain.Option) bool {
	if opt.Category != domain.CategoryNone {
		return opt.Category == domain.CategoryBackwallHalfMoon
	}
	if strings.Contains(opt.ID, "half-moon") {
		return true
	}
	title := classificationTitle(opt)
	return strings.Contains(title, "half moon") || strings.Contains(title, "half-moon")
}

// IsExcludedDeliveryTier matches express and white glove delivery options
func IsExcludedDeliveryTier(opt domain.Option) bool {
	switch opt.Category {
	case domain.CategoryDeliveryExpress, domain.CategoryDeliveryWhiteGlove:
		return true
	}
	id := strings.ToLower(opt.ID)
	original := classificationTitle(opt)
	title := strings.ToLower(opt.Title)
	for _, marker := range []string{"express", "white glove", "white-glove", "whiteglove"} {
		if strings.Contains(id, marker) || strings.Contains(original, marker) || strings.Contains(title, marker) {
			return true
		}
	}
	return false
}
