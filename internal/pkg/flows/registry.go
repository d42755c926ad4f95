// Package flows holds the step tables of the four intake questionnaires.
package flows

import (
	"fmt"
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
)

var registry = map[schema.FlowType]*flow.Definition{
	schema.FlowContact:     Contact(),
	schema.FlowAssessment:  Assessment(),
	schema.FlowReferral:    Referral(),
	schema.FlowVirtualCare: VirtualCare(),
}

func init() {
	for _, def := range registry {
		if err := def.Validate(); err != nil {
			panic(fmt.Sprintf("invalid flow definition: %v", err))
		}
	}
}

// Get returns the definition registered for flowType.
func Get(flowType schema.FlowType) (*flow.Definition, bool) {
	def, ok := registry[flowType]
	return def, ok
}

// All lists the definitions in the order of schema.FlowTypes.
func All() []*flow.Definition {
	defs := make([]*flow.Definition, 0, len(registry))
	for _, flowType := range schema.FlowTypes() {
		if def, ok := registry[flowType]; ok {
			defs = append(defs, def)
		}
	}
	return defs
}
