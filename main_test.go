package main

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type exitRecorder struct {
	exits int
}

func (s *exitRecorder) Update()            {}
func (s *exitRecorder) Draw(*ebiten.Image) {}
func (s *exitRecorder) Exit()              { s.exits++ }

func TestRunExitsSceneWhenLoopFails(t *testing.T) {
	scene := &exitRecorder{}
	g := &Game{scene: scene}
	loopErr := errors.New("window closed unexpectedly")

	err := run(g, func(ebiten.Game) error { return loopErr })

	assert.ErrorIs(t, err, loopErr)
	assert.Equal(t, 1, scene.exits)
}

func TestRunExitsSceneOnCleanShutdown(t *testing.T) {
	scene := &exitRecorder{}
	g := &Game{scene: scene}

	assert.NoError(t, run(g, func(ebiten.Game) error { return nil }))
	assert.Equal(t, 1, scene.exits)
}

func TestChangeSceneExitsPreviousScene(t *testing.T) {
	first, second := &exitRecorder{}, &exitRecorder{}
	g := &Game{scene: first}

	g.ChangeScene(second)

	assert.Equal(t, 1, first.exits)
	assert.Equal(t, 0, second.exits)
	assert.Same(t, second, g.scene)
}
