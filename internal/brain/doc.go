// Package brain holds the procedural neuron network and the fatigue-driven
// decay rules applied to it. Nothing here draws; every random choice is taken
// from an injected *rand.Rand so a seed reproduces a run.
package brain
