package main

// addInput records what the user handed `tt add` on the command line.
type addInput struct {
	edit        bool
	noEdit      bool
	flagsGiven  bool
	nameGiven   bool
	dueGiven    bool
	interactive bool
}

// useEditor decides whether add collects the task in $EDITOR. --edit and
// --no-edit win. Otherwise a terminal user gets the editor when nothing
// was passed, or when the name or due date is still missing.
func (in addInput) useEditor() bool {
	switch {
	case in.edit:
		return true
	case in.noEdit || !in.interactive:
		return false
	case !in.flagsGiven && !in.nameGiven:
		return true
	default:
		return !in.nameGiven || !in.dueGiven
	}
}
