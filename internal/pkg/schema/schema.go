package schema

import (
	"fmt"
	"strings"
)

type FlowType string

const (
	FlowContact     FlowType = "contact"
	FlowAssessment  FlowType = "assessment"
	FlowReferral    FlowType = "referral"
	FlowVirtualCare FlowType = "virtual-care"
)

var flowTitles = map[FlowType]string{
	FlowContact:     "Contact",
	FlowAssessment:  "Assessment",
	FlowReferral:    "Referral",
	FlowVirtualCare: "Virtual Care",
}

var formTypes = map[FlowType]string{
	FlowContact:     "contact",
	FlowAssessment:  "smile-assessment",
	FlowReferral:    "doctor-referral",
	FlowVirtualCare: "virtual-care",
}

// FlowTypes lists every flow in a stable order.
func FlowTypes() []FlowType {
	return []FlowType{FlowContact, FlowAssessment, FlowReferral, FlowVirtualCare}
}

func ParseFlowType(raw string) (FlowType, bool) {
	flowType := FlowType(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := flowTitles[flowType]
	return flowType, ok
}

func (f FlowType) Title() string {
	if title, ok := flowTitles[f]; ok {
		return title
	}
	return string(f)
}

// FormType is the label a notification carries for the flow.
func (f FlowType) FormType() string {
	if formType, ok := formTypes[f]; ok {
		return formType
	}
	return string(f)
}

func (f FlowType) String() string {
	return string(f)
}

// Rule describes one wire field: how it is labelled and which format tags
// apply once a value is present. Whether it must be present is decided by the Path.
type Rule struct {
	Field    string
	Label    string
	Tag      string
	Boolean  bool
	Internal bool
}

// Path is one terminal route through a flow together with the fields it carries.
type Path struct {
	Name     string
	Required []string
	Optional []string
}

func (p Path) Fields() []string {
	fields := make([]string, 0, len(p.Required)+len(p.Optional))
	fields = append(fields, p.Required...)
	return append(fields, p.Optional...)
}

func (p Path) requires(field string) bool {
	return contains(p.Required, field)
}

func (p Path) carries(field string) bool {
	return contains(p.Required, field) || contains(p.Optional, field)
}

// Set is the field schema of one flow.
type Set struct {
	Flow     FlowType
	Rules    []Rule
	Paths    []Path
	selector func(values map[string]any) string

	rules map[string]Rule
}

func newSet(flow FlowType, rules []Rule, paths []Path, selector func(values map[string]any) string) *Set {
	set := &Set{
		Flow:     flow,
		Rules:    rules,
		Paths:    paths,
		selector: selector,
		rules:    make(map[string]Rule, len(rules)),
	}
	for _, rule := range rules {
		set.rules[rule.Field] = rule
	}
	return set
}

func (s *Set) Rule(field string) (Rule, bool) {
	rule, ok := s.rules[field]
	return rule, ok
}

func (s *Set) Path(name string) (Path, bool) {
	for _, path := range s.Paths {
		if path.Name == name {
			return path, true
		}
	}
	return Path{}, false
}

// Select picks the terminal path a submitted payload claims to have taken.
func (s *Set) Select(values map[string]any) Path {
	if s.selector != nil {
		if path, ok := s.Path(s.selector(values)); ok {
			return path
		}
	}
	return s.Paths[0]
}

// Required returns the fields that must be present for the named path.
func (s *Set) Required(path string) []string {
	p, ok := s.Path(path)
	if !ok {
		return nil
	}
	return append([]string(nil), p.Required...)
}

// IsRequired reports whether field must be filled on a step that sits on path.
// An empty path marks a step shared by every route, where the field is
// required only if every path carrying it requires it.
func (s *Set) IsRequired(path, field string) bool {
	if path != "" {
		p, ok := s.Path(path)
		return ok && p.requires(field)
	}

	required := false
	for _, p := range s.Paths {
		if !p.carries(field) {
			continue
		}
		if !p.requires(field) {
			return false
		}
		required = true
	}
	return required
}

// Validate checks a submitted payload against the path it selects.
func (s *Set) Validate(values map[string]any) error {
	path := s.Select(values)
	for _, field := range path.Required {
		if err := s.check(field, values[field], true); err != nil {
			return err
		}
	}
	for _, field := range path.Optional {
		if err := s.check(field, values[field], false); err != nil {
			return err
		}
	}
	return nil
}

// ValidateFields checks the named fields the way a step on path would.
func (s *Set) ValidateFields(path string, values map[string]any, fields ...string) error {
	for _, field := range fields {
		if err := s.check(field, values[field], s.IsRequired(path, field)); err != nil {
			return err
		}
	}
	return nil
}

// Missing lists required fields of the selected path that carry no value.
func (s *Set) Missing(values map[string]any) []string {
	var missing []string
	for _, field := range s.Select(values).Required {
		if !present(values[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func (s *Set) check(field string, value any, required bool) error {
	rule, ok := s.rules[field]
	if !ok {
		return fmt.Errorf("schema %s has no rule for field %q", s.Flow, field)
	}

	if !present(value) {
		if !required {
			return nil
		}
		tag := TagRequired
		if rule.Boolean {
			tag = TagAccepted
		}
		return &FieldError{Field: rule.Field, Label: rule.Label, Tag: tag}
	}

	if rule.Boolean {
		if _, isBool := value.(bool); !isBool {
			return &FieldError{Field: rule.Field, Label: rule.Label, Tag: TagBoolean}
		}
		return nil
	}

	text, isString := value.(string)
	if !isString {
		return &FieldError{Field: rule.Field, Label: rule.Label, Tag: TagString}
	}
	return validateTag(rule, strings.TrimSpace(text))
}

func present(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case bool:
		return v
	default:
		return true
	}
}

func contains(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}
