// Package env defines the collaborator contract the driver loop consumes:
// fetch the next query, submit a path, receive a response. Two bindings
// satisfy it — env/wire (the remote judge, over stdio) and
// simulator.Simulator (the local offline reference) — but only the
// contract itself is part of the solver's core.
package env
