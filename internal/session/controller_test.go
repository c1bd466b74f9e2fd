package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mindgym/internal/challenge"
)

func TestControllerDo(t *testing.T) {
	c := NewController(testGenerator())
	assert.Equal(t, StepNameGate, c.Snapshot().Step)

	snap, err := c.Do(SubmitName("Ada"))
	require.NoError(t, err)
	assert.Equal(t, StepMenu, snap.Step)
	assert.Equal(t, "Ada", snap.PlayerName)
	assert.Nil(t, snap.Stats)

	snap, err = c.Do(SelectChallenge(challenge.KindMath))
	require.NoError(t, err)
	require.NotNil(t, snap.Challenge)
	assert.Equal(t, "🧮 What is 4 + 9?", snap.Challenge.Prompt)
	assert.True(t, snap.Challenge.AwaitingAnswer)

	snap, err = c.Do(SubmitMathAnswer("13"))
	require.NoError(t, err)
	assert.Equal(t, StepResult, snap.Step)
	assert.Equal(t, 10, snap.Score)
}

func TestControllerRejectedActionKeepsSnapshot(t *testing.T) {
	c := NewController(testGenerator())
	_, err := c.Do(SubmitName("Ada"))
	require.NoError(t, err)
	before := c.Snapshot()

	snap, err := c.Do(SubmitMathAnswer("13"))
	require.ErrorIs(t, err, ErrActionNotAllowed)
	assert.Equal(t, before, snap)
	assert.Equal(t, before, c.Snapshot())
}

func TestControllerViewStats(t *testing.T) {
	c := NewController(testGenerator())
	for _, a := range []Action{
		SubmitName("Ada"),
		SelectChallenge(challenge.KindLogic), SubmitLogicAnswer("egg"), BackToMenu(),
		SelectChallenge(challenge.KindMath), SubmitMathAnswer("13"), BackToMenu(),
		SelectChallenge(challenge.KindMath), SubmitMathAnswer("1"), BackToMenu(),
	} {
		_, err := c.Do(a)
		require.NoError(t, err, a.Kind)
	}
	before := c.State()

	snap, err := c.Do(ViewStats())
	require.NoError(t, err)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 20, snap.Stats.Score)
	assert.Equal(t, []Entry{
		{Kind: challenge.KindLogic, Points: 10},
		{Kind: challenge.KindMath, Points: 10},
	}, snap.Stats.Entries)
	assert.Equal(t, map[challenge.Kind]int{
		challenge.KindMath:   1,
		challenge.KindLogic:  1,
		challenge.KindMemory: 0,
	}, snap.Stats.Completed)
	assert.Equal(t, before, c.State())
}

func TestControllerStateIsCopy(t *testing.T) {
	c := NewController(testGenerator())
	for _, a := range []Action{SubmitName("Ada"), SelectChallenge(challenge.KindMath), SubmitMathAnswer("13")} {
		_, err := c.Do(a)
		require.NoError(t, err)
	}
	s := c.State()
	s.History[0].Points = 99
	assert.Equal(t, 10, c.State().History[0].Points)
}

func TestSnapshotHidesAnswers(t *testing.T) {
	gen := testGenerator()
	s := inMenu(t, gen)

	logic := step(t, s, SelectChallenge(challenge.KindLogic), gen)
	raw, err := json.Marshal(BuildSnapshot(logic))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"egg"`)
	assert.Contains(t, string(raw), "broken before you can use it")

	math := step(t, s, SelectChallenge(challenge.KindMath), gen)
	raw, err = json.Marshal(BuildSnapshot(math))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "13")
}

func TestSnapshotMemoryPhases(t *testing.T) {
	gen := testGenerator()
	s := step(t, inMenu(t, gen), SelectChallenge(challenge.KindMemory), gen)

	visible := BuildSnapshot(s)
	require.NotNil(t, visible.Challenge)
	assert.Equal(t, []int{3, 1, 4, 1, 5}, visible.Challenge.Sequence)
	assert.False(t, visible.Challenge.AwaitingAnswer)

	visible.Challenge.Sequence[0] = 9
	assert.Equal(t, 3, s.Active.Memory.Digits[0], "snapshot must not alias state")

	hidden := BuildSnapshot(step(t, s, RevealDone(), gen))
	assert.Empty(t, hidden.Challenge.Sequence)
	assert.True(t, hidden.Challenge.AwaitingAnswer)
	assert.Equal(t, "🧠 Enter the sequence:", hidden.Challenge.Prompt)
}
