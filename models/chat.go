package models

// TurnRequest is the body of a chat turn: the caller's session and whatever
// the user typed or tapped. Input is nil on the very first contact.
type TurnRequest struct {
	SessionID string `json:"idSesion" binding:"required"`
	Input     string `json:"entradaUsuario"`
}

// ResetRequest asks for a session's conversation to be discarded.
type ResetRequest struct {
	SessionID string `json:"idSesion" binding:"required"`
}

// ChatResponse is the rendered outcome of one conversational turn. Options are
// always emitted sorted: numeric labels numerically, the rest in Spanish
// lexical order.
type ChatResponse struct {
	Message       string       `json:"mensaje"`
	CurrentStepID string       `json:"idPasoActual"`
	Kind          StepKind     `json:"tipo"`
	Options       []StepOption `json:"opciones"`
	Error         string       `json:"error,omitempty"`

	// HTTPStatus lets the dialogue core ask the transport for a non-200
	// status on degraded responses. Zero means 200.
	HTTPStatus int `json:"-"`
}

// ResetResponse confirms a conversation reset.
type ResetResponse struct {
	Message   string `json:"mensaje"`
	SessionID string `json:"idSesion"`
}
