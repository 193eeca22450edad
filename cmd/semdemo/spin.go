package main

import "Gopher3DSemantics/internal/renderer"

// spin rotates a model around its Y axis.
type spin struct {
	model *renderer.Model
	speed float32 // degrees per second
}

func (s *spin) Start() {}

func (s *spin) Update(deltaTime float64) {
	s.model.Rotate(0, s.speed*float32(deltaTime), 0)
}
