package flow

import (
	"errors"
	"fmt"
	"intake-service/internal/pkg/schema"
	"strings"
)

var (
	ErrUnknownStep  = errors.New("unknown step")
	ErrCycle        = errors.New("forward graph contains a cycle")
	ErrMissingRule  = errors.New("field has no schema rule")
	ErrDuplicateOpt = errors.New("duplicate option id")
)

// Definition is the static step table of one questionnaire.
type Definition struct {
	Type   schema.FlowType
	Title  string
	Start  StepID
	Steps  map[StepID]*Step
	Schema *schema.Set
	// Order fixes the listing order of Steps.
	Order []StepID
}

// NewDefinition indexes steps by id, keeping their declaration order.
func NewDefinition(flowType schema.FlowType, title string, set *schema.Set, steps ...*Step) *Definition {
	def := &Definition{
		Type:   flowType,
		Title:  title,
		Steps:  make(map[StepID]*Step, len(steps)),
		Schema: set,
	}
	for i, step := range steps {
		if i == 0 {
			def.Start = step.ID
		}
		def.Steps[step.ID] = step
		def.Order = append(def.Order, step.ID)
	}
	return def
}

func (d *Definition) Step(id StepID) (*Step, bool) {
	step, ok := d.Steps[id]
	return step, ok
}

// IsValid reports whether the answers let the user leave step id.
func (d *Definition) IsValid(id StepID, answers Answers) bool {
	step, ok := d.Steps[id]
	if !ok {
		return false
	}
	return d.StepError(step, answers) == nil
}

// StepError explains why a step cannot be left yet.
func (d *Definition) StepError(step *Step, answers Answers) error {
	switch step.Kind {
	case KindInfo:
	case KindSingleChoice:
		choice := answers.String(step.Field)
		if _, ok := FindOption(step.VisibleOptions(answers), choice); !ok {
			return &schema.FieldError{Field: step.Field, Label: d.label(step.Field), Tag: schema.TagRequired}
		}
	default:
		for _, input := range step.Inputs {
			if input.Type != InputSelect || !answers.Has(input.Field) {
				continue
			}
			if _, ok := FindOption(input.Options, answers.String(input.Field)); !ok {
				return &schema.FieldError{Field: input.Field, Label: d.label(input.Field), Tag: "oneof", Param: optionIDs(input.Options)}
			}
		}
		if err := d.Schema.ValidateFields(step.Path, answers.Map(), step.Fields()...); err != nil {
			return err
		}
	}

	if step.Check != nil && !step.Check(answers) {
		return fmt.Errorf("step %s: answers rejected", step.ID)
	}
	return nil
}

// Walk follows the forward path the answers select, starting at Start.
// It stops at the first step that cannot be left, or after the step that ends the flow.
func (d *Definition) Walk(answers Answers) []StepID {
	var path []StepID
	seen := make(map[StepID]bool)
	id := d.Start
	for id != End && !seen[id] {
		step, ok := d.Steps[id]
		if !ok {
			break
		}
		seen[id] = true
		path = append(path, id)
		if !d.IsValid(id, answers) {
			break
		}
		id = step.next(answers)
	}
	return path
}

// Routes enumerates every distinct forward path from Start to End by trying
// each option of every single-choice step. It fails on unknown targets and cycles.
func (d *Definition) Routes() ([][]StepID, error) {
	var routes [][]StepID
	seen := make(map[string]bool)
	var explore func(id StepID, answers Answers, stack []StepID) error
	explore = func(id StepID, answers Answers, stack []StepID) error {
		if id == End {
			key := fmt.Sprint(stack)
			if !seen[key] {
				seen[key] = true
				routes = append(routes, append([]StepID(nil), stack...))
			}
			return nil
		}
		step, ok := d.Steps[id]
		if !ok {
			return fmt.Errorf("%w %q reached from %v", ErrUnknownStep, id, stack)
		}
		for _, visited := range stack {
			if visited == id {
				return fmt.Errorf("%w at %s", ErrCycle, id)
			}
		}
		stack = append(stack, id)

		if step.Kind != KindSingleChoice {
			return explore(step.next(answers), answers, stack)
		}
		options := step.VisibleOptions(answers)
		if len(options) == 0 {
			return fmt.Errorf("step %s offers no options", id)
		}
		for _, option := range options {
			branch := answers.Clone()
			branch[step.Field] = option.ID
			if err := explore(step.next(branch), branch, stack); err != nil {
				return err
			}
		}
		return nil
	}

	if err := explore(d.Start, Answers{}, nil); err != nil {
		return nil, err
	}
	return routes, nil
}

// Validate checks the table: every field has a rule, option ids are unique,
// and every route is acyclic and ends.
func (d *Definition) Validate() error {
	if _, ok := d.Steps[d.Start]; !ok {
		return fmt.Errorf("%s: %w %q", d.Type, ErrUnknownStep, d.Start)
	}

	var errs []error
	for _, id := range d.Order {
		step := d.Steps[id]
		for _, field := range step.Fields() {
			if _, ok := d.Schema.Rule(field); !ok {
				errs = append(errs, fmt.Errorf("%s/%s: %w: %s", d.Type, id, ErrMissingRule, field))
			}
		}
		if err := uniqueOptions(step.Options); err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", d.Type, id, err))
		}
		for _, input := range step.Inputs {
			if err := uniqueOptions(input.Options); err != nil {
				errs = append(errs, fmt.Errorf("%s/%s/%s: %w", d.Type, id, input.Field, err))
			}
		}
	}

	if _, err := d.Routes(); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", d.Type, err))
	}
	return errors.Join(errs...)
}

func (d *Definition) label(field string) string {
	if rule, ok := d.Schema.Rule(field); ok {
		return rule.Label
	}
	return field
}

func uniqueOptions(options []Option) error {
	seen := make(map[string]bool, len(options))
	for _, option := range options {
		if seen[option.ID] {
			return fmt.Errorf("%w %q", ErrDuplicateOpt, option.ID)
		}
		seen[option.ID] = true
	}
	return nil
}

func optionIDs(options []Option) string {
	ids := make([]string, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.ID)
	}
	return strings.Join(ids, " ")
}
