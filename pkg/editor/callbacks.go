package editor

// Callbacks is how the editor hands domain actions to its owner. The editor
// never reaches into history, output or the command registry itself.
type Callbacks interface {
	// OnCommandExecute receives the trimmed line on Enter, empty included.
	OnCommandExecute(command string)
	// OnRequestPrevCommand and OnRequestNextCommand return the history entry
	// to show; "" means a fresh line.
	OnRequestPrevCommand() string
	OnRequestNextCommand() string
	// OnRequestLastCommand asks for the history cursor to move to its end.
	OnRequestLastCommand()
	OnRequestClear()
	OnRequestAutoComplete(e *Editor) []string

	OnInterrupt(input string)
	OnInputChange(input string)
	OnSuggestionsChange(suggestions []string, selectedIndex int)
}

// NopCallbacks implements Callbacks with no-ops. Embed it to override only
// the callbacks you need.
type NopCallbacks struct{}

func (NopCallbacks) OnCommandExecute(string)                {}
func (NopCallbacks) OnRequestPrevCommand() string           { return "" }
func (NopCallbacks) OnRequestNextCommand() string           { return "" }
func (NopCallbacks) OnRequestLastCommand()                  {}
func (NopCallbacks) OnRequestClear()                        {}
func (NopCallbacks) OnRequestAutoComplete(*Editor) []string { return nil }
func (NopCallbacks) OnInterrupt(string)                     {}
func (NopCallbacks) OnInputChange(string)                   {}
func (NopCallbacks) OnSuggestionsChange([]string, int)      {}
