package utils

import (
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/flow"
)

// ConvertDefinitionToResponse exposes a step table with the required flags the
// shared schema gives each field.
func ConvertDefinitionToResponse(def *flow.Definition) (responses.FlowDefinition, error) {
	result := responses.FlowDefinition{
		Type:  def.Type.String(),
		Title: def.Title,
		Start: string(def.Start),
		Steps: make([]responses.FlowStep, 0, len(def.Order)),
	}

	for _, id := range def.Order {
		step := def.Steps[id]
		item := responses.FlowStep{
			ID:             string(step.ID),
			Kind:           string(step.Kind),
			Prompt:         step.Prompt,
			Path:           step.Path,
			Field:          step.Field,
			Internal:       step.Internal,
			Options:        convertOptions(step.Options),
			DynamicOptions: step.OptionsFor != nil,
			Shows:          step.Shows,
		}
		if step.Field != "" {
			item.Required = step.Kind == flow.KindSingleChoice || def.Schema.IsRequired(step.Path, step.Field)
		}
		for _, input := range step.Inputs {
			item.Inputs = append(item.Inputs, responses.FlowInput{
				Field:       input.Field,
				Label:       input.Label,
				Type:        string(input.Type),
				Placeholder: input.Placeholder,
				Required:    def.Schema.IsRequired(step.Path, input.Field),
				Options:     convertOptions(input.Options),
			})
		}
		result.Steps = append(result.Steps, item)
	}

	routes, err := def.Routes()
	if err != nil {
		return result, err
	}
	for _, route := range routes {
		ids := make([]string, len(route))
		for i, id := range route {
			ids[i] = string(id)
		}
		result.Routes = append(result.Routes, ids)
	}
	return result, nil
}

func convertOptions(options []flow.Option) []responses.FlowOption {
	if len(options) == 0 {
		return nil
	}
	converted := make([]responses.FlowOption, len(options))
	for i, option := range options {
		converted[i] = responses.FlowOption{ID: option.ID, Label: option.Label}
	}
	return converted
}
