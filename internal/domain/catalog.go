package domain

// SelectionType controls how many options of a step may be selected at once
type SelectionType string

// SelectionType constants
const (
	SelectionSingle SelectionType = "single"
	SelectionMulti  SelectionType = "multi"
)

// ProductFamily groups products that share option filtering and default imagery
type ProductFamily string

// ProductFamily constants
const (
	FamilyUnknown ProductFamily = ""
	FamilyCube    ProductFamily = "cube"
	FamilyBarrel  ProductFamily = "barrel"
	FamilyHiki    ProductFamily = "hiki"
	FamilyAisti   ProductFamily = "aisti"
	FamilyAura    ProductFamily = "aura"
)

// OptionCategory tags an option with its semantic kind.
// Empty means "unclassified"; callers then fall back to id/title matching.
type OptionCategory string

// OptionCategory constants
const (
	CategoryNone               OptionCategory = ""
	CategoryHeaterElectric     OptionCategory = "heater-electric"
	CategoryHeaterWood         OptionCategory = "heater-wood"
	CategoryHeaterStone        OptionCategory = "heater-stone"
	CategoryBackwallWooden     OptionCategory = "backwall-wooden"
	CategoryBackwallFullGlass  OptionCategory = "backwall-full-glass"
	CategoryBackwallHalfMoon   OptionCategory = "backwall-half-moon"
	CategoryDeliveryExpress    OptionCategory = "delivery-express"
	CategoryDeliveryWhiteGlove OptionCategory = "delivery-white-glove"
)

// Well-known step ids the resolver treats specially
const (
	StepHeater        = "heater"
	StepStones        = "stones"
	StepRearGlassWall = "rear-glass-wall"
	StepHotTubs       = "hot-tubs"
	StepDelivery      = "delivery"
	StepQuote         = "quote"
)

// Step identifies one stage of the configurator wizard
type Step struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Route string `json:"route" yaml:"route"`
}

// Option is a selectable line item within a step
type Option struct {
	ID                 string         `json:"id" yaml:"id"`
	Title              string         `json:"title" yaml:"title"`
	OriginalTitle      string         `json:"originalTitle,omitempty" yaml:"-"`
	Description        string         `json:"description" yaml:"description"`
	ImageURL           string         `json:"imageUrl" yaml:"imageUrl"`
	Price              float64        `json:"price" yaml:"price"`
	PipedriveProductID *int64         `json:"pipedriveProductId,omitempty" yaml:"pipedriveProductId,omitempty"`
	Category           OptionCategory `json:"category,omitempty" yaml:"category,omitempty"`
	KG                 *float64       `json:"kg,omitempty" yaml:"kg,omitempty"`
	Included           bool           `json:"included,omitempty" yaml:"-"`
	Stones             *HeaterStones  `json:"stones,omitempty" yaml:"-"`
}

// StepData holds the display metadata and options of one step
type StepData struct {
	StepID          string        `json:"stepId" yaml:"stepId"`
	Title           string        `json:"title" yaml:"title"`
	Description     string        `json:"description" yaml:"description"`
	Subtext         string        `json:"subtext,omitempty" yaml:"subtext,omitempty"`
	ImageURL        string        `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
	SelectionType   SelectionType `json:"selectionType" yaml:"selectionType"`
	Required        bool          `json:"required" yaml:"required"`
	MoreInfoEnabled bool          `json:"moreInfoEnabled,omitempty" yaml:"-"`
	MoreInfoURL     string        `json:"moreInfoUrl,omitempty" yaml:"-"`
	Options         []Option      `json:"options" yaml:"options"`
}

// FindOption returns the option with the given id
func (d StepData) FindOption(optionID string) (Option, bool) {
	for _, opt := range d.Options {
		if opt.ID == optionID {
			return opt, true
		}
	}
	return Option{}, false
}

// HeaterStones is the derived stone requirement for a selected heater
type HeaterStones struct {
	KG             float64 `json:"kg"`
	PackagesNeeded float64 `json:"packagesNeeded"`
	TotalPrice     float64 `json:"totalPrice"`
}

// CatalogPrice is a price quoted by the external product catalog
type CatalogPrice struct {
	ProductID int64   `json:"productId"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	TaxRate   float64 `json:"taxRate"`
}
