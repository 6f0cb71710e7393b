package selection

import (
	"errors"

	"sauna-configurator-api/internal/domain"
)

var (
	// ErrUnknownStep is returned for a step id the resolved config does not contain
	ErrUnknownStep = errors.New("unknown step")
	// ErrUnknownOption is returned for an option id the step does not offer
	ErrUnknownOption = errors.New("unknown option")
)

// StepProgress is the completion state of one step
type StepProgress struct {
	StepID   string   `json:"stepId"`
	Required bool     `json:"required"`
	Complete bool     `json:"complete"`
	Selected []string `json:"selected"`
}

// State tracks the option ids chosen per step against a resolved config.
// Single-select steps never hold more than one id.
type State struct {
	stepData   map[string]domain.StepData
	selections domain.Selections
}

// NewState creates a selection state. Initial selections for unknown steps or
// options are dropped and single-select steps keep their last id.
func NewState(stepData map[string]domain.StepData, initial domain.Selections) *State {
	s := &State{
		stepData:   stepData,
		selections: make(domain.Selections),
	}
	for stepID, ids := range initial {
		data, ok := stepData[stepID]
		if !ok {
			continue
		}
		known := make([]string, 0, len(ids))
		for _, id := range ids {
			if _, ok := data.FindOption(id); ok {
				known = append(known, id)
			}
		}
		s.set(stepID, data, known)
	}
	return s
}

// Get returns a copy of the selected option ids of a step
func (s *State) Get(stepID string) []string {
	return append([]string{}, s.selections[stepID]...)
}

// Update replaces the selection of a step
func (s *State) Update(stepID string, optionIDs []string) error {
	data, ok := s.stepData[stepID]
	if !ok {
		return ErrUnknownStep
	}
	for _, id := range optionIDs {
		if _, ok := data.FindOption(id); !ok {
			return ErrUnknownOption
		}
	}
	s.set(stepID, data, optionIDs)
	return nil
}

// Toggle selects an option, or deselects it when it is already selected.
// On single-select steps selecting replaces the previous choice.
func (s *State) Toggle(stepID, optionID string) error {
	data, ok := s.stepData[stepID]
	if !ok {
		return ErrUnknownStep
	}
	if _, ok := data.FindOption(optionID); !ok {
		return ErrUnknownOption
	}

	current := s.selections[stepID]
	for i, id := range current {
		if id == optionID {
			next := append(append([]string{}, current[:i]...), current[i+1:]...)
			s.set(stepID, data, next)
			return nil
		}
	}

	if data.SelectionType == domain.SelectionSingle {
		s.set(stepID, data, []string{optionID})
		return nil
	}
	s.set(stepID, data, append(append([]string{}, current...), optionID))
	return nil
}

// IsStepComplete is true for optional steps and for required steps holding a
// selection that fits the step's cardinality
func (s *State) IsStepComplete(stepID string) bool {
	data, ok := s.stepData[stepID]
	if !ok {
		return false
	}
	return IsComplete(data, s.selections[stepID])
}

// IsComplete applies the completion rule to one step
func IsComplete(data domain.StepData, selected []string) bool {
	if !data.Required {
		return true
	}
	if data.SelectionType == domain.SelectionSingle {
		return len(selected) == 1
	}
	return len(selected) > 0
}

// ClearAll drops every selection
func (s *State) ClearAll() {
	s.selections = make(domain.Selections)
}

// Progress reports completion for the given steps in order
func (s *State) Progress(steps []domain.Step) []StepProgress {
	progress := make([]StepProgress, 0, len(steps))
	for _, step := range steps {
		data, ok := s.stepData[step.ID]
		if !ok {
			continue
		}
		progress = append(progress, StepProgress{
			StepID:   step.ID,
			Required: data.Required,
			Complete: IsComplete(data, s.selections[step.ID]),
			Selected: s.Get(step.ID),
		})
	}
	return progress
}

// Snapshot returns a deep copy of all selections
func (s *State) Snapshot() domain.Selections {
	out := make(domain.Selections, len(s.selections))
	for stepID, ids := range s.selections {
		out[stepID] = append([]string{}, ids...)
	}
	return out
}

func (s *State) set(stepID string, data domain.StepData, ids []string) {
	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if data.SelectionType == domain.SelectionSingle && len(unique) > 1 {
		unique = unique[len(unique)-1:]
	}
	if len(unique) == 0 {
		delete(s.selections, stepID)
		return
	}
	s.selections[stepID] = unique
}
