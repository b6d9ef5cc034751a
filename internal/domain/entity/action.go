package entity

import "fmt"

// Action is the outcome of resolving one key press. It is one of Navigate,
// Execute or Exit.
type Action interface {
	isAction()
	fmt.Stringer
}

// Navigate moves the cursor to Target. A target equal to the current cursor
// is a no-op.
type Navigate struct {
	Target Node
}

// Execute runs Command.
type Execute struct {
	Command Command
}

// Exit ends the session.
type Exit struct{}

func (Navigate) isAction() {}
func (Execute) isAction()  {}
func (Exit) isAction()     {}

func (a Navigate) String() string { return fmt.Sprintf("Navigate(%s)", a.Target) }
func (a Execute) String() string  { return fmt.Sprintf("Execute(%s)", a.Command.Line()) }
func (Exit) String() string       { return "Exit" }
