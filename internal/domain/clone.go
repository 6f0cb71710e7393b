package domain

// Clone returns a deep copy of the option
func (o Option) Clone() Option {
	if o.PipedriveProductID != nil {
		id := *o.PipedriveProductID
		o.PipedriveProductID = &id
	}
	if o.KG != nil {
		kg := *o.KG
		o.KG = &kg
	}
	if o.Stones != nil {
		stones := *o.Stones
		o.Stones = &stones
	}
	return o
}

// Clone returns a deep copy of the step data
func (d StepData) Clone() StepData {
	if d.Options != nil {
		options := make([]Option, len(d.Options))
		for i, opt := range d.Options {
			options[i] = opt.Clone()
		}
		d.Options = options
	}
	return d
}

// CloneStepDataMap deep copies a step data table
func CloneStepDataMap(in map[string]StepData) map[string]StepData {
	if in == nil {
		return nil
	}
	out := make(map[string]StepData, len(in))
	for id, data := range in {
		out[id] = data.Clone()
	}
	return out
}

// Clone returns a deep copy of the product config
func (c *ProductConfig) Clone() *ProductConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.MainProductPipedriveID != nil {
		id := *c.MainProductPipedriveID
		out.MainProductPipedriveID = &id
	}
	if c.Steps != nil {
		out.Steps = append([]Step(nil), c.Steps...)
	}
	out.StepData = CloneStepDataMap(c.StepData)
	return &out
}

// Clone returns a deep copy of the global settings
func (g *GlobalSettings) Clone() *GlobalSettings {
	if g == nil {
		return nil
	}
	return &GlobalSettings{
		StepNames:               cloneMap(g.StepNames),
		StepImages:              cloneMap(g.StepImages),
		StepSubheaders:          cloneMap(g.StepSubheaders),
		StepMoreInfoEnabled:     cloneMap(g.StepMoreInfoEnabled),
		StepMoreInfoURL:         cloneMap(g.StepMoreInfoURL),
		OptionImages:            cloneMap(g.OptionImages),
		OptionTitles:            cloneMap(g.OptionTitles),
		OptionPipedriveProducts: cloneMap(g.OptionPipedriveProducts),
		OptionIncluded:          cloneMap(g.OptionIncluded),
	}
}

func cloneMap[K comparable, V any](in map[K]V) map[K]V {
	if in == nil {
		return nil
	}
	out := make(map[K]V, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
