package registry

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"sauna-configurator-api/internal/domain"
)

// FamilyDefaults are the registry steps and step data of one product family
type FamilyDefaults struct {
	Steps    []domain.Step              `yaml:"steps"`
	StepData map[string]domain.StepData `yaml:"stepData"`
}

// Registry is the read-only table of default steps and options per product family.
// It is built once at process start; every accessor returns a deep copy.
type Registry struct {
	families map[domain.ProductFamily]FamilyDefaults
}

// seedFile is the YAML layout accepted by LoadFile
type seedFile struct {
	Families map[string]FamilyDefaults `yaml:"families"`
}

// Default returns the built-in registry
func Default() *Registry {
	families := map[domain.ProductFamily]FamilyDefaults{
		domain.FamilyUnknown: {Steps: defaultSteps(), StepData: defaultStepData("sauna")},
	}
	for _, family := range []domain.ProductFamily{
		domain.FamilyCube,
		domain.FamilyBarrel,
		domain.FamilyHiki,
		domain.FamilyAisti,
		domain.FamilyAura,
	} {
		families[family] = FamilyDefaults{Steps: defaultSteps(), StepData: defaultStepData(string(family))}
	}
	return &Registry{families: families}
}

// New builds a registry from explicit family tables
func New(families map[domain.ProductFamily]FamilyDefaults) *Registry {
	r := &Registry{families: make(map[domain.ProductFamily]FamilyDefaults, len(families))}
	for family, defaults := range families {
		r.families[family] = cloneDefaults(defaults)
	}
	return r
}

// LoadFile overlays families read from a YAML seed file on top of the built-in registry.
// A missing file is not an error.
func LoadFile(path string) (*Registry, error) {
	r := Default()
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("failed to read registry seed file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse registry seed file: %w", err)
	}

	for name, defaults := range seed.Families {
		family := domain.ProductFamily(name)
		if name == "default" {
			family = domain.FamilyUnknown
		}
		for stepID, data := range defaults.StepData {
			if data.StepID == "" {
				data.StepID = stepID
				defaults.StepData[stepID] = data
			}
		}
		r.families[family] = defaults
	}
	return r, nil
}

// Defaults returns a copy of the family defaults, falling back to the generic family
func (r *Registry) Defaults(family domain.ProductFamily) FamilyDefaults {
	defaults, ok := r.families[family]
	if !ok {
		defaults = r.families[domain.FamilyUnknown]
	}
	return cloneDefaults(defaults)
}

// StepData returns a copy of the registry step data for a family
func (r *Registry) StepData(family domain.ProductFamily) map[string]domain.StepData {
	return r.Defaults(family).StepData
}

// Families lists the families known to the registry in a stable order
func (r *Registry) Families() []domain.ProductFamily {
	families := make([]domain.ProductFamily, 0, len(r.families))
	for family := range r.families {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })
	return families
}

// NewProductConfig creates the initial configuration of a product from the registry
func (r *Registry) NewProductConfig(productID, productName string, family domain.ProductFamily) *domain.ProductConfig {
	defaults := r.Defaults(family)
	return &domain.ProductConfig{
		ProductID:   productID,
		ProductName: productName,
		Family:      family,
		Steps:       defaults.Steps,
		StepData:    defaults.StepData,
		PriceSource: domain.PriceSourceManual,
	}
}

func cloneDefaults(defaults FamilyDefaults) FamilyDefaults {
	return FamilyDefaults{
		Steps:    append([]domain.Step(nil), defaults.Steps...),
		StepData: domain.CloneStepDataMap(defaults.StepData),
	}
}
