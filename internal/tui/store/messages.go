package store

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewShop ViewMode = iota
	ViewCart
	ViewHelp
)

// ErrorMsg shows the error banner.
type ErrorMsg struct {
	Message string
}

// ClearErrorMsg hides the error banner.
type ClearErrorMsg struct{}

// NoticeMsg shows a transient info line, e.g. after committing an outfit.
type NoticeMsg struct {
	Message string
}
