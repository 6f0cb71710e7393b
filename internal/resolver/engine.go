package resolver

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"sauna-configurator-api/internal/domain"
)

// rearWallImages are the built-in images per family and rear wall kind
var rearWallImages = map[domain.ProductFamily]map[string]string{
	domain.FamilyCube: {
		"half-moon":           "/cube-half-moon.jpg",
		"wooden-backwall":     "/cube-full-back-wall.jpg",
		"full-glass-backwall": "/cube-full-glass-back-wall.jpg",
	},
	domain.FamilyBarrel: {
		"half-moon":           "/barrel-half-moon.jpg",
		"wooden-backwall":     "/barrel-wooden-back-wall.jpg",
		"full-glass-backwall": "/barrel-full-glass-back-wall.jpg",
	},
}

// Engine merges registry defaults, a product config and the global settings
// into the configuration shown to customers.
//
// Resolve is pure: it never mutates its arguments and performs no I/O, so the
// output for a given input can be cached and Resolve(Resolve(x)) equals Resolve(x).
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a resolution engine
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Resolve produces the final ordered step list with fully resolved options.
// A nil settings value is treated as empty override maps.
func (e *Engine) Resolve(cfg *domain.ProductConfig, settings *domain.GlobalSettings, defaults map[string]domain.StepData) *domain.ProductConfig {
	if cfg == nil {
		return &domain.ProductConfig{Steps: []domain.Step{}, StepData: map[string]domain.StepData{}}
	}
	if settings == nil {
		settings = &domain.GlobalSettings{}
	}

	out := cfg.Clone()
	if out.StepData == nil {
		out.StepData = make(map[string]domain.StepData)
	}

	e.fillMissingStepData(out, defaults)
	normalizeStepOrder(out)
	e.foldStones(out, defaults)
	if excludesRearGlassWall(out) {
		removeStep(out, domain.StepRearGlassWall)
	}
	e.resolveRearGlassWall(out, settings)
	applyOptionTitles(out, settings)
	applyStepNames(out, settings)
	if !isAura(out) {
		applyStepImages(out, settings)
	}
	applyStepExtras(out, settings)
	e.applyOptionOverrides(out, settings)
	filterDeliveryTiers(out)
	finalize(out)

	return out
}

// fillMissingStepData takes step data from the registry for steps the product has not customised.
// Steps without step data anywhere are dropped.
func (e *Engine) fillMissingStepData(cfg *domain.ProductConfig, defaults map[string]domain.StepData) {
	steps := make([]domain.Step, 0, len(cfg.Steps))
	for _, step := range cfg.Steps {
		if _, ok := cfg.StepData[step.ID]; ok || step.ID == domain.StepQuote {
			steps = append(steps, step)
			continue
		}
		if data, ok := defaults[step.ID]; ok {
			data = data.Clone()
			if data.StepID == "" {
				data.StepID = step.ID
			}
			cfg.StepData[step.ID] = data
			steps = append(steps, step)
			continue
		}
		e.logger.Debug("Skipping step without step data",
			zap.String("product_id", cfg.ProductID),
			zap.String("step_id", step.ID),
		)
	}
	cfg.Steps = steps
}

// normalizeStepOrder moves hot-tubs, delivery and quote to the end in that order.
// Duplicate step ids keep their first occurrence.
func normalizeStepOrder(cfg *domain.ProductConfig) {
	var quote, hotTubs, delivery *domain.Step
	seen := make(map[string]bool, len(cfg.Steps))
	steps := make([]domain.Step, 0, len(cfg.Steps)+1)

	for i := range cfg.Steps {
		step := cfg.Steps[i]
		if seen[step.ID] {
			continue
		}
		seen[step.ID] = true

		switch step.ID {
		case domain.StepQuote:
			quote = &step
		case domain.StepHotTubs:
			hotTubs = &step
		case domain.StepDelivery:
			delivery = &step
		default:
			steps = append(steps, step)
		}
	}

	if hotTubs != nil {
		steps = append(steps, *hotTubs)
	}
	if delivery != nil {
		steps = append(steps, *delivery)
	}
	if quote == nil {
		quote = &domain.Step{ID: domain.StepQuote, Name: "Quote", Route: "/configurator/quote"}
	}
	steps = append(steps, *quote)
	cfg.Steps = steps

	if _, ok := cfg.StepData[domain.StepQuote]; !ok {
		cfg.StepData[domain.StepQuote] = domain.StepData{
			StepID:        domain.StepQuote,
			Title:         "Quote",
			SelectionType: domain.SelectionSingle,
			Required:      false,
			Options:       []domain.Option{},
		}
	}
}

// foldStones merges the stones step options into the heater step and drops the stones step
func (e *Engine) foldStones(cfg *domain.ProductConfig, defaults map[string]domain.StepData) {
	stones, ok := cfg.StepData[domain.StepStones]
	if !ok && cfg.HasStep(domain.StepStones) {
		stones, ok = defaults[domain.StepStones]
	}

	if heater, hasHeater := cfg.StepData[domain.StepHeater]; ok && hasHeater {
		existing := make(map[string]bool, len(heater.Options))
		for _, opt := range heater.Options {
			existing[opt.ID] = true
		}
		options := append([]domain.Option(nil), heater.Options...)
		for _, opt := range stones.Options {
			if existing[opt.ID] {
				continue
			}
			existing[opt.ID] = true
			options = append(options, opt.Clone())
		}
		heater.Options = options
		cfg.StepData[domain.StepHeater] = heater
	} else if ok {
		e.logger.Debug("Dropping stones without a heater step",
			zap.String("product_id", cfg.ProductID),
		)
	}

	removeStep(cfg, domain.StepStones)
}

// resolveRearGlassWall filters rear wall options by family and assigns family imagery
func (e *Engine) resolveRearGlassWall(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	data, ok := cfg.StepData[domain.StepRearGlassWall]
	if !ok {
		return
	}

	family := rearWallFamily(cfg)
	if family == domain.FamilyUnknown {
		e.logger.Debug("Rear glass wall kept as configured, product is neither cube nor barrel",
			zap.String("product_id", cfg.ProductID),
		)
		return
	}

	options := make([]domain.Option, 0, len(data.Options))
	for _, opt := range data.Options {
		if family == domain.FamilyCube && IsFullGlassBackwall(opt) {
			continue
		}

		kind := ""
		switch {
		case IsHalfMoon(opt):
			kind = "half-moon"
		case IsWoodenBackwall(opt):
			kind = "wooden-backwall"
		case isFullGlassBackwallForImage(opt):
			kind = "full-glass-backwall"
		}
		if kind != "" {
			if img := settings.OptionImages[string(family)+"_"+opt.ID]; img != "" {
				opt.ImageURL = img
			} else {
				opt.ImageURL = rearWallImages[family][kind]
			}
		}
		options = append(options, opt)
	}

	sort.SliceStable(options, func(i, j int) bool {
		return IsWoodenBackwall(options[i]) && !IsWoodenBackwall(options[j])
	})

	data.Options = options
	cfg.StepData[domain.StepRearGlassWall] = data
}

// applyOptionTitles replaces option titles with global titles, remembering the original
func applyOptionTitles(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	if len(settings.OptionTitles) == 0 {
		return
	}
	for id, data := range cfg.StepData {
		for i, opt := range data.Options {
			title, ok := settings.OptionTitles[opt.ID]
			if !ok || title == "" {
				continue
			}
			if opt.OriginalTitle == "" {
				opt.OriginalTitle = opt.Title
			}
			opt.Title = title
			data.Options[i] = opt
		}
		cfg.StepData[id] = data
	}
}

// applyStepNames lets global step names win over product step names
func applyStepNames(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	if len(settings.StepNames) == 0 {
		return
	}
	for i, step := range cfg.Steps {
		name, ok := lookupStepName(settings.StepNames, step.ID)
		if !ok {
			continue
		}
		cfg.Steps[i].Name = name
		if data, ok := cfg.StepData[step.ID]; ok {
			data.Title = name
			cfg.StepData[step.ID] = data
		}
	}
}

// lookupStepName matches the step id exactly, then case-insensitively in sorted key order
func lookupStepName(names map[string]string, stepID string) (string, bool) {
	if name, ok := names[stepID]; ok && name != "" {
		return name, true
	}
	keys := make([]string, 0, len(names))
	for key := range names {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if strings.EqualFold(key, stepID) && names[key] != "" {
			return names[key], true
		}
	}
	return "", false
}

// applyStepImages uses global step images only where the product has none
func applyStepImages(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	for id, data := range cfg.StepData {
		if data.ImageURL != "" {
			continue
		}
		if img := settings.StepImages[id]; img != "" {
			data.ImageURL = img
			cfg.StepData[id] = data
		}
	}
}

// applyStepExtras applies subheaders and more-info settings
func applyStepExtras(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	for id, data := range cfg.StepData {
		if data.Subtext == "" {
			data.Subtext = settings.StepSubheaders[id]
		}
		if enabled, ok := settings.StepMoreInfoEnabled[id]; ok {
			data.MoreInfoEnabled = enabled
		}
		if data.MoreInfoURL == "" {
			data.MoreInfoURL = settings.StepMoreInfoURL[id]
		}
		cfg.StepData[id] = data
	}
}

// applyOptionOverrides falls back to global option images and catalog links
func (e *Engine) applyOptionOverrides(cfg *domain.ProductConfig, settings *domain.GlobalSettings) {
	family := rearWallFamily(cfg)
	for id, data := range cfg.StepData {
		for i, opt := range data.Options {
			if opt.ImageURL == "" && id == domain.StepRearGlassWall && family != domain.FamilyUnknown {
				opt.ImageURL = settings.OptionImages[string(family)+"_"+opt.ID]
			}
			if opt.ImageURL == "" {
				opt.ImageURL = settings.OptionImages[opt.ID]
			}
			if opt.PipedriveProductID == nil {
				if productID, ok := settings.OptionPipedriveProducts[opt.ID]; ok {
					opt.PipedriveProductID = &productID
				}
			}
			if included, ok := settings.OptionIncluded[opt.ID]; ok {
				opt.Included = included
			}
			data.Options[i] = opt
		}
		cfg.StepData[id] = data
	}
}

// filterDeliveryTiers removes express and white glove delivery options
func filterDeliveryTiers(cfg *domain.ProductConfig) {
	data, ok := cfg.StepData[domain.StepDelivery]
	if !ok {
		return
	}
	options := make([]domain.Option, 0, len(data.Options))
	for _, opt := range data.Options {
		if IsExcludedDeliveryTier(opt) {
			continue
		}
		options = append(options, opt)
	}
	data.Options = options
	cfg.StepData[domain.StepDelivery] = data
}

// finalize prunes step data of unlisted steps and empties configs holding only the quote step
func finalize(cfg *domain.ProductConfig) {
	if len(cfg.Steps) == 1 && cfg.Steps[0].ID == domain.StepQuote {
		cfg.Steps = []domain.Step{}
	}

	listed := make(map[string]bool, len(cfg.Steps))
	for _, step := range cfg.Steps {
		listed[step.ID] = true
	}
	for id, data := range cfg.StepData {
		if !listed[id] {
			delete(cfg.StepData, id)
			continue
		}
		if data.Options == nil {
			data.Options = []domain.Option{}
			cfg.StepData[id] = data
		}
	}
}

func removeStep(cfg *domain.ProductConfig, stepID string) {
	steps := cfg.Steps[:0:0]
	for _, step := range cfg.Steps {
		if step.ID != stepID {
			steps = append(steps, step)
		}
	}
	cfg.Steps = steps
	delete(cfg.StepData, stepID)
}
