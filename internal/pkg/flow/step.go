package flow

import "strings"

type StepID string

// End is returned by Step.Next when the step finishes the flow.
const End StepID = ""

type Kind string

const (
	KindSingleChoice  Kind = "single-choice"
	KindFreeText      Kind = "free-text"
	KindCompositeForm Kind = "composite-form"
	KindSummary       Kind = "summary"
	KindTerminal      Kind = "terminal"
	KindInfo          Kind = "info"
)

type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputPhone    InputType = "tel"
	InputDate     InputType = "date"
	InputTextArea InputType = "textarea"
	InputSelect   InputType = "select"
	InputCheckbox InputType = "checkbox"
)

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Input struct {
	Field       string    `json:"field"`
	Label       string    `json:"label"`
	Type        InputType `json:"type"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []Option  `json:"options,omitempty"`
	// EmitCode sends the option id instead of its label.
	EmitCode bool `json:"-"`
}

// Step is one screen of a questionnaire.
type Step struct {
	ID     StepID
	Kind   Kind
	Prompt string
	// Path names the schema path the step belongs to. Empty when every path shares it.
	Path string

	// Field is the answer a single-choice or free-text step owns.
	Field    string
	Options  []Option
	EmitCode bool
	// OptionsFor replaces Options when the choices depend on earlier answers.
	OptionsFor func(Answers) []Option

	Inputs []Input
	// Shows lists the fields a summary step displays.
	Shows []string

	Next  func(Answers) StepID
	Check func(Answers) bool
	// ClearOnBack names answers dropped when the user backs out of this step.
	ClearOnBack []string
	// Internal fields steer branching and are never submitted.
	Internal bool
}

// Fields lists every answer the step owns.
func (s *Step) Fields() []string {
	var fields []string
	if s.Field != "" {
		fields = append(fields, s.Field)
	}
	for _, input := range s.Inputs {
		fields = append(fields, input.Field)
	}
	return fields
}

func (s *Step) Owns(field string) bool {
	for _, owned := range s.Fields() {
		if owned == field {
			return true
		}
	}
	return false
}

func (s *Step) Input(field string) (Input, bool) {
	for _, input := range s.Inputs {
		if input.Field == field {
			return input, true
		}
	}
	return Input{}, false
}

// VisibleOptions returns the choices shown for the step's own field.
func (s *Step) VisibleOptions(answers Answers) []Option {
	if s.OptionsFor != nil {
		return s.OptionsFor(answers)
	}
	return s.Options
}

func (s *Step) next(answers Answers) StepID {
	if s.Next == nil {
		return End
	}
	return s.Next(answers)
}

// Answers maps field names to a string or bool value.
type Answers map[string]any

func (a Answers) String(field string) string {
	value, _ := a[field].(string)
	return value
}

func (a Answers) Bool(field string) bool {
	value, _ := a[field].(bool)
	return value
}

func (a Answers) Has(field string) bool {
	switch v := a[field].(type) {
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return true
	default:
		return false
	}
}

func (a Answers) Clone() Answers {
	clone := make(Answers, len(a))
	for k, v := range a {
		clone[k] = v
	}
	return clone
}

// Map exposes the answers to schema validation.
func (a Answers) Map() map[string]any {
	return map[string]any(a)
}

// FindOption looks an option up by id.
func FindOption(options []Option, id string) (Option, bool) {
	for _, option := range options {
		if option.ID == id {
			return option, true
		}
	}
	return Option{}, false
}

// Goto is a Next that always moves to id.
func Goto(id StepID) func(Answers) StepID {
	return func(Answers) StepID { return id }
}

// Finish is a Next that always ends the flow.
func Finish(Answers) StepID {
	return End
}
