package pricing

import (
	"regexp"
	"strconv"
	"strings"

	"sauna-configurator-api/internal/domain"
)

// Heater stones are sold in fixed packages
const (
	StonePackageKG    = 20.0
	StonePackagePrice = 29.50
)

var kgPattern = regexp.MustCompile(`(?i)\((\d+(?:\.\d+)?)\s*kg\)|(\d+(?:\.\d+)?)\s+kg\b`)

// CalculateHeaterStones derives the stone requirement of the selected heater.
// It returns nil when nothing is selected, the heater is unknown, the selection
// is itself a stone option or no kilogram figure is available.
func CalculateHeaterStones(selectedHeaterID string, heaterOptions []domain.Option) *domain.HeaterStones {
	if selectedHeaterID == "" {
		return nil
	}

	var heater *domain.Option
	for i := range heaterOptions {
		if heaterOptions[i].ID == selectedHeaterID {
			heater = &heaterOptions[i]
			break
		}
	}
	if heater == nil || IsStoneOption(*heater) {
		return nil
	}

	kg, ok := HeaterKG(*heater)
	if !ok || kg <= 0 {
		return nil
	}

	packages := kg / StonePackageKG
	return &domain.HeaterStones{
		KG:             kg,
		PackagesNeeded: packages,
		TotalPrice:     packages * StonePackagePrice,
	}
}

// HeaterKG returns the stone mass of a heater. The structured field wins,
// otherwise the figure is parsed from the pre-override title.
func HeaterKG(heater domain.Option) (float64, bool) {
	if heater.KG != nil {
		return *heater.KG, true
	}
	title := heater.OriginalTitle
	if title == "" {
		title = heater.Title
	}
	return parseKG(title)
}

func parseKG(title string) (float64, bool) {
	match := kgPattern.FindStringSubmatch(title)
	if match == nil {
		return 0, false
	}
	raw := match[1]
	if raw == "" {
		raw = match[2]
	}
	kg, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return kg, true
}

// IsStoneOption reports whether an option belongs to the folded stones step
func IsStoneOption(opt domain.Option) bool {
	if opt.Category != domain.CategoryNone {
		return opt.Category == domain.CategoryHeaterStone
	}
	return strings.Contains(strings.ToLower(opt.ID), "stone") ||
		strings.Contains(strings.ToLower(opt.Title), "stone")
}

// IsStonesAccordingToHeater matches the stone option priced from the selected heater.
// "cccording" is a misspelling present in older product data.
func IsStonesAccordingToHeater(opt domain.Option) bool {
	text := strings.ToLower(opt.ID + " " + opt.OriginalTitle + " " + opt.Title)
	return strings.Contains(text, "according") || strings.Contains(text, "cccording")
}

// ApplyHeaterStones returns a copy of the options with the stone line attached
// to the "according to selected heater" option. A nil stones value clears it.
func ApplyHeaterStones(options []domain.Option, stones *domain.HeaterStones) []domain.Option {
	out := make([]domain.Option, len(options))
	for i, opt := range options {
		opt = opt.Clone()
		if IsStoneOption(opt) && IsStonesAccordingToHeater(opt) {
			if stones != nil {
				s := *stones
				opt.Stones = &s
				opt.Price = s.TotalPrice
			} else {
				opt.Stones = nil
			}
		}
		out[i] = opt
	}
	return out
}
