package tui

// itemsLoadedMsg reports the end of the startup load.
type itemsLoadedMsg struct {
	seeded bool
	err    error
}

// SaveMsg asks the program to write the session to the store. Send it from
// outside the program so the save runs on the program goroutine.
type SaveMsg struct {
	// Quit ends the program after saving.
	Quit bool
}
