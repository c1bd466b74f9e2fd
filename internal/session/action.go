package session

import "github.com/abhisek/mindgym/internal/challenge"

// ActionKind names a command from the view layer.
type ActionKind string

const (
	ActionSubmitName         ActionKind = "submitName"
	ActionSelectChallenge    ActionKind = "selectChallenge"
	ActionViewStats          ActionKind = "viewStats"
	ActionSubmitMathAnswer   ActionKind = "submitMathAnswer"
	ActionSubmitLogicAnswer  ActionKind = "submitLogicAnswer"
	ActionRevealDone         ActionKind = "revealDone"
	ActionSubmitMemoryAnswer ActionKind = "submitMemoryAnswer"
	ActionBackToMenu         ActionKind = "backToMenu"
	ActionRestart            ActionKind = "restart"
)

// Action is one user interaction: a button press or a form submission.
type Action struct {
	Kind ActionKind `json:"action"`

	// Value is the submitted text for name and answer actions.
	Value string `json:"value,omitempty"`

	// Challenge is the kind chosen by selectChallenge.
	Challenge challenge.Kind `json:"challenge,omitempty"`
}

func SubmitName(text string) Action { return Action{Kind: ActionSubmitName, Value: text} }

func SelectChallenge(kind challenge.Kind) Action {
	return Action{Kind: ActionSelectChallenge, Challenge: kind}
}

func ViewStats() Action { return Action{Kind: ActionViewStats} }

func SubmitMathAnswer(text string) Action { return Action{Kind: ActionSubmitMathAnswer, Value: text} }

func SubmitLogicAnswer(text string) Action { return Action{Kind: ActionSubmitLogicAnswer, Value: text} }

func RevealDone() Action { return Action{Kind: ActionRevealDone} }

func SubmitMemoryAnswer(text string) Action {
	return Action{Kind: ActionSubmitMemoryAnswer, Value: text}
}

func BackToMenu() Action { return Action{Kind: ActionBackToMenu} }

func Restart() Action { return Action{Kind: ActionRestart} }

// SubmitAnswer builds the submit action matching a challenge kind.
func SubmitAnswer(kind challenge.Kind, text string) Action {
	switch kind {
	case challenge.KindLogic:
		return SubmitLogicAnswer(text)
	case challenge.KindMemory:
		return SubmitMemoryAnswer(text)
	}
	return SubmitMathAnswer(text)
}

// submitKind returns the challenge kind a submit action answers.
func submitKind(k ActionKind) (challenge.Kind, bool) {
	switch k {
	case ActionSubmitMathAnswer:
		return challenge.KindMath, true
	case ActionSubmitLogicAnswer:
		return challenge.KindLogic, true
	case ActionSubmitMemoryAnswer:
		return challenge.KindMemory, true
	}
	return "", false
}

// Known reports whether k is a recognised action.
func (k ActionKind) Known() bool {
	switch k {
	case ActionSubmitName, ActionSelectChallenge, ActionViewStats,
		ActionSubmitMathAnswer, ActionSubmitLogicAnswer, ActionRevealDone,
		ActionSubmitMemoryAnswer, ActionBackToMenu, ActionRestart:
		return true
	}
	return false
}
