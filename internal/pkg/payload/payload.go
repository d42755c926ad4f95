// Package payload turns the answers of a finished questionnaire into the
// wire body its submission endpoint expects.
package payload

import (
	"errors"
	"fmt"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/flows"
	"intake-service/internal/pkg/schema"
	"strings"
)

var (
	ErrUnknownFlow   = errors.New("unknown flow type")
	ErrUnknownOption = errors.New("answer names an unknown option")
)

const FieldFormType = "formType"

// Payload is the JSON body posted to a flow's endpoint.
type Payload map[string]any

func (p Payload) String(field string) string {
	value, _ := p[field].(string)
	return value
}

func (p Payload) Bool(field string) bool {
	value, _ := p[field].(bool)
	return value
}

// Line is one row of a confirmation screen.
type Line struct {
	Field string
	Label string
	Value string
}

// Assemble builds the payload for the registered flow of flowType.
func Assemble(flowType schema.FlowType, answers flow.Answers) (Payload, error) {
	def, ok := flows.Get(flowType)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFlow, flowType)
	}
	return AssembleFrom(def, answers)
}

// AssembleFrom emits the answers of the steps on the path the answers select.
// Answers left behind on abandoned branches are never sent.
func AssembleFrom(def *flow.Definition, answers flow.Answers) (Payload, error) {
	wire, _, err := collect(def, answers)
	if err != nil {
		return nil, err
	}

	if def.Type == schema.FlowContact {
		composeAppointmentMessage(wire)
	}
	wire[FieldFormType] = def.Type.FormType()
	return wire, nil
}

// Summary lists what a summary step shows, with option labels and Yes/No booleans.
func Summary(def *flow.Definition, answers flow.Answers, step *flow.Step) ([]Line, error) {
	_, display, err := collect(def, answers)
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(step.Shows))
	for _, field := range step.Shows {
		value, ok := display[field]
		if !ok {
			continue
		}
		label := field
		if rule, ok := def.Schema.Rule(field); ok {
			label = rule.Label
		}
		lines = append(lines, Line{Field: field, Label: label, Value: value})
	}
	return lines, nil
}

func collect(def *flow.Definition, answers flow.Answers) (Payload, map[string]string, error) {
	wire := Payload{}
	display := make(map[string]string)

	for _, id := range def.Walk(answers) {
		step := def.Steps[id]

		if step.Field != "" && !step.Internal && !isInternal(def, step.Field) {
			var options []flow.Option
			if step.Kind == flow.KindSingleChoice {
				options = step.VisibleOptions(answers)
			}
			if err := emit(wire, display, answers, step.Field, options, step.EmitCode, flow.InputText); err != nil {
				return nil, nil, fmt.Errorf("%s/%s: %w", def.Type, step.ID, err)
			}
		}

		for _, input := range step.Inputs {
			if isInternal(def, input.Field) {
				continue
			}
			if err := emit(wire, display, answers, input.Field, input.Options, input.EmitCode, input.Type); err != nil {
				return nil, nil, fmt.Errorf("%s/%s: %w", def.Type, step.ID, err)
			}
		}
	}
	return wire, display, nil
}

func emit(wire Payload, display map[string]string, answers flow.Answers, field string, options []flow.Option, emitCode bool, inputType flow.InputType) error {
	raw, ok := answers[field]
	if !ok {
		return nil
	}

	switch value := raw.(type) {
	case bool:
		wire[field] = value
		display[field] = yesNo(value)
		return nil
	case string:
		text := strings.TrimSpace(value)
		if text == "" {
			return nil
		}

		if len(options) > 0 {
			option, found := flow.FindOption(options, text)
			if !found {
				return fmt.Errorf("%w: %s=%q", ErrUnknownOption, field, text)
			}
			display[field] = option.Label
			if emitCode {
				wire[field] = option.ID
			} else {
				wire[field] = option.Label
			}
			return nil
		}

		if inputType == flow.InputPhone && len(schema.PhoneDigits(text)) == 10 {
			text = schema.FormatPhone(text)
		}
		wire[field] = text
		display[field] = text
	}
	return nil
}

// composeAppointmentMessage fills the message of the appointment branch,
// which never asks for one.
func composeAppointmentMessage(wire Payload) {
	day, time := wire.String("preferredDay"), wire.String("preferredTime")
	if day == "" || time == "" || wire.String("message") != "" {
		return
	}
	wire["message"] = fmt.Sprintf("Appointment request: %s at %s", day, time)
}

func isInternal(def *flow.Definition, field string) bool {
	rule, ok := def.Schema.Rule(field)
	return ok && rule.Internal
}

func yesNo(value bool) string {
	if value {
		return constvars.EmailYes
	}
	return constvars.EmailNo
}
