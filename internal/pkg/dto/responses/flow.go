package responses

type FlowOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type FlowInput struct {
	Field       string       `json:"field"`
	Label       string       `json:"label"`
	Type        string       `json:"type"`
	Placeholder string       `json:"placeholder,omitempty"`
	Required    bool         `json:"required"`
	Options     []FlowOption `json:"options,omitempty"`
}

type FlowStep struct {
	ID       string       `json:"id"`
	Kind     string       `json:"kind"`
	Prompt   string       `json:"prompt"`
	Path     string       `json:"path,omitempty"`
	Field    string       `json:"field,omitempty"`
	Required bool         `json:"required,omitempty"`
	Internal bool         `json:"internal,omitempty"`
	Options  []FlowOption `json:"options,omitempty"`
	// DynamicOptions is set when the choices depend on earlier answers.
	DynamicOptions bool        `json:"dynamic_options,omitempty"`
	Inputs         []FlowInput `json:"inputs,omitempty"`
	Shows          []string    `json:"shows,omitempty"`
}

// FlowDefinition is the inspectable graph of one questionnaire.
type FlowDefinition struct {
	Type   string     `json:"type"`
	Title  string     `json:"title"`
	Start  string     `json:"start"`
	Steps  []FlowStep `json:"steps"`
	Routes [][]string `json:"routes"`
}

type FlowSummary struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Endpoint string `json:"endpoint"`
	Steps    int    `json:"steps"`
}
