package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher

	// Diagnostics
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	// Files
	IconFolder = "" // folder
	IconConfig = "" // config
	IconLogs   = "" // file-text

	// Tree
	IconTree     = "" // tree
	IconGroup    = "" // folder-open
	IconCommand  = "" // terminal
	IconKeyboard = "" // keyboard
	IconRepeat   = "" // rotate-right (keep running)
	IconCursor   = "" // chevron-right
)
