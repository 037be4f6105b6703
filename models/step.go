package models

// StepKind is the closed set of input contracts a chat step can declare.
type StepKind string

const (
	StepStatic        StepKind = "static"
	StepInputText     StepKind = "input_text"
	StepInputDate     StepKind = "input_date"
	StepInputNumber   StepKind = "input_number"
	StepInputSplit    StepKind = "input_people_distribution"
	StepDynamicOpts   StepKind = "dynamic_options"
	StepPetCheck      StepKind = "dynamic_pet_check"
	StepOptionSelect  StepKind = "payment_selection"
)

// Valid reports whether k is one of the declared step kinds.
func (k StepKind) Valid() bool {
	switch k {
	case StepStatic, StepInputText, StepInputDate, StepInputNumber,
		StepInputSplit, StepDynamicOpts, StepPetCheck, StepOptionSelect:
		return true
	}
	return false
}

// StepOption is one selectable answer of a step: a label the user sees,
// the canonical value stored on match, and the step the match leads to.
type StepOption struct {
	Label  string `bson:"etiqueta" json:"etiqueta"`
	Value  string `bson:"valor" json:"valor"`
	NextID string `bson:"siguiente_id" json:"siguiente_id"`
}

// Step is one node of the conversation graph. The catalog is loaded at seed
// time and is read-only afterwards.
type Step struct {
	ID       string       `bson:"id" json:"id"`
	Prompt   string       `bson:"mensaje" json:"mensaje"`
	Kind     StepKind     `bson:"tipo" json:"tipo"`
	Variable string       `bson:"variable,omitempty" json:"variable,omitempty"`
	Options  []StepOption `bson:"opciones,omitempty" json:"opciones,omitempty"`
	NextID   string       `bson:"siguiente_id,omitempty" json:"siguiente_id,omitempty"`
}

// HasOptions reports whether the step expects the user to pick from a fixed list.
func (s *Step) HasOptions() bool {
	return len(s.Options) > 0
}

// MatchOption returns the option whose label or value equals the raw input.
// Matching is exact and case-sensitive.
func (s *Step) MatchOption(input string) (StepOption, bool) {
	for _, o := range s.Options {
		if o.Label == input || o.Value == input {
			return o, true
		}
	}
	return StepOption{}, false
}
