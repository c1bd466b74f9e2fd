package app

import (
	"github.com/abhisek/mindgym/internal/screen"
	challengescreen "github.com/abhisek/mindgym/internal/screens/challenge"
	"github.com/abhisek/mindgym/internal/screens/menu"
	"github.com/abhisek/mindgym/internal/screens/namegate"
	"github.com/abhisek/mindgym/internal/screens/result"
	"github.com/abhisek/mindgym/internal/screens/stats"
	"github.com/abhisek/mindgym/internal/session"
)

// screenFor returns the screen that renders snap's step.
func screenFor(snap session.Snapshot) screen.Screen {
	switch snap.Step {
	case session.StepMenu:
		return menu.New(snap.Score)
	case session.StepMath, session.StepLogic, session.StepMemory:
		if snap.Challenge != nil {
			return challengescreen.New(*snap.Challenge)
		}
	case session.StepResult:
		return result.New(snap.LastResult, snap.LastVerdict)
	}
	return namegate.New(snap.Warning)
}

func statsScreen(s session.Stats) screen.Screen {
	return stats.New(s)
}
