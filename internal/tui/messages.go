package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyra-school/lyra-client/models"
)

const pageLogin = "login"

// NavigateTo switches the active page of the RootModel. Payload, when set,
// is delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command. A nil Err means the
// session is already persisted.
type LoginResult struct {
	Session models.Session
	Err     error
}

type classesLoadedMsg struct {
	classes []models.Class
	err     error
}

type professorsLoadedMsg struct {
	professors []models.User
	err        error
}

type activitiesLoadedMsg struct {
	classID    int64
	activities []models.Activity
	err        error
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type loggedOutMsg struct {
	err error
}

type clearStatusMsg struct{}

type copiedMsg struct {
	err error
}
