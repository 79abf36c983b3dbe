// Package tui provides the terminal front end hosting a playback window.
package tui

type state int

const (
	playerState state = iota
	errorState
	recentState
	openState
	dialogsState
	fieldsState
	editState
)
