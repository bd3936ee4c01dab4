package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// SwitchToDashboardMsg returns to the dashboard
type SwitchToDashboardMsg struct{}

// SwitchToFeedMsg opens the diary feed
type SwitchToFeedMsg struct{}

// SwitchToHelpMsg opens the help screen
type SwitchToHelpMsg struct{}

// ComposeMsg asks the app to open a new draft in the editor
type ComposeMsg struct{}

// ToggleThemeMsg flips light and dark as a manual choice
type ToggleThemeMsg struct{}

// EntryAddedMsg is sent after a drafted entry was saved to the feed
type EntryAddedMsg struct {
	Message string
}

// SwitchToTimelineMsg opens the relationship timeline
type SwitchToTimelineMsg struct{}
