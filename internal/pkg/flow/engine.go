package flow

// Outcome reports what Advance did.
type Outcome int

const (
	// Blocked means the current step is not valid; nothing changed.
	Blocked Outcome = iota
	// Moved means the engine is on a new step.
	Moved
	// Completed means the last step was passed and the answers are ready to submit.
	Completed
	// SubmitReady is returned by Advance on an already complete instance.
	SubmitReady
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Completed:
		return "completed"
	case SubmitReady:
		return "submit-ready"
	default:
		return "blocked"
	}
}

// Engine is one user's pass through a Definition. It is not safe for
// concurrent use; each questionnaire session owns its own Engine.
type Engine struct {
	def      *Definition
	current  StepID
	answers  Answers
	history  []StepID
	complete bool
}

func NewEngine(def *Definition) *Engine {
	engine := &Engine{def: def}
	engine.Start()
	return engine
}

// Start resets to the first step with no answers and no history.
func (e *Engine) Start() {
	e.current = e.def.Start
	e.answers = Answers{}
	e.history = nil
	e.complete = false
}

func (e *Engine) Definition() *Definition {
	return e.def
}

func (e *Engine) CurrentID() StepID {
	return e.current
}

func (e *Engine) Current() *Step {
	return e.def.Steps[e.current]
}

// SetAnswer records value when field belongs to the current step.
func (e *Engine) SetAnswer(field string, value any) bool {
	step := e.Current()
	if step == nil || !step.Owns(field) {
		return false
	}
	switch value.(type) {
	case string, bool:
	default:
		return false
	}
	e.answers[field] = value
	return true
}

func (e *Engine) Answer(field string) (any, bool) {
	value, ok := e.answers[field]
	return value, ok
}

func (e *Engine) CanAdvance() bool {
	return e.def.IsValid(e.current, e.answers)
}

// Error explains why CanAdvance is false, or returns nil.
func (e *Engine) Error() error {
	step := e.Current()
	if step == nil {
		return ErrUnknownStep
	}
	return e.def.StepError(step, e.answers)
}

func (e *Engine) Advance() Outcome {
	if !e.CanAdvance() {
		return Blocked
	}
	if e.complete {
		return SubmitReady
	}

	next := e.Current().next(e.answers)
	if next != End {
		if _, ok := e.def.Steps[next]; !ok {
			return Blocked
		}
	}

	e.history = append(e.history, e.current)
	if next == End {
		e.complete = true
		return Completed
	}
	e.current = next
	return Moved
}

// Back returns to the previously visited step. Answers are kept, apart from
// the ones the step being left declares in ClearOnBack.
func (e *Engine) Back() bool {
	if len(e.history) == 0 {
		return false
	}

	leaving := e.Current()
	last := len(e.history) - 1
	e.current = e.history[last]
	e.history = e.history[:last]
	e.complete = false

	if leaving != nil && leaving.ID != e.current {
		for _, field := range leaving.ClearOnBack {
			delete(e.answers, field)
		}
	}
	return true
}

func (e *Engine) Complete() bool {
	return e.complete
}

func (e *Engine) Answers() Answers {
	return e.answers.Clone()
}

func (e *Engine) History() []StepID {
	return append([]StepID(nil), e.history...)
}

func (e *Engine) VisibleOptions() []Option {
	step := e.Current()
	if step == nil {
		return nil
	}
	return step.VisibleOptions(e.answers)
}
