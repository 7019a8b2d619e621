// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package nav holds the navigation controller: the current page and the
// session, and the only operations allowed to change them.
//
// The controller is a plain owned value. The TUI root model keeps a
// pointer to it and page models only read from it.
package nav

import (
	"errors"
	"fmt"

	"github.com/aerocode/aerocode/internal/model"
)

var (
	// ErrNotAuthenticated is returned by Navigate before Login was called.
	ErrNotAuthenticated = errors.New("navigation requires an authenticated session")
	// ErrInvalidTarget is returned by Navigate for targets outside the
	// authenticated layout. Use Logout to return to the login page.
	ErrInvalidTarget = errors.New("invalid navigation target")
)

// Action names the operation that produced a Transition.
type Action int

const (
	ActionLogin Action = iota
	ActionLogout
	ActionNavigate
)

func (a Action) String() string {
	switch a {
	case ActionLogin:
		return "login"
	case ActionLogout:
		return "logout"
	case ActionNavigate:
		return "navigate"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Transition describes one completed state change.
type Transition struct {
	Action Action
	From   model.Page
	To     model.Page
}

// Controller owns the session and the current page.
type Controller struct {
	session model.Session
	page    model.Page
	hooks   []func(Transition)
}

// New returns a controller in the initial state: logged out, on the login page.
func New(user model.User) *Controller {
	return &Controller{
		session: model.Session{User: user},
		page:    model.PageLogin,
	}
}

// Page returns the current page.
func (c *Controller) Page() model.Page { return c.page }

// Session returns a copy of the session.
func (c *Controller) Session() model.Session { return c.session }

// Authenticated reports whether a user is logged in.
func (c *Controller) Authenticated() bool { return c.session.Authenticated }

// OnTransition registers fn to be called after every state change.
func (c *Controller) OnTransition(fn func(Transition)) {
	if fn != nil {
		c.hooks = append(c.hooks, fn)
	}
}

// Login accepts any credentials and opens the dashboard.
func (c *Controller) Login() {
	from := c.page
	c.session.Authenticated = true
	c.page = model.PageDashboard
	c.emit(Transition{Action: ActionLogin, From: from, To: c.page})
}

// Logout ends the session and returns to the login page.
func (c *Controller) Logout() {
	from := c.page
	c.session.Authenticated = false
	c.page = model.PageLogin
	c.emit(Transition{Action: ActionLogout, From: from, To: c.page})
}

// Navigate switches to target. Every authenticated page is reachable from
// every other one; navigating to the current page is a no-op.
func (c *Controller) Navigate(target model.Page) error {
	if !c.session.Authenticated {
		return fmt.Errorf("navigate to %s: %w", target, ErrNotAuthenticated)
	}
	if !target.RequiresAuth() {
		return fmt.Errorf("navigate to %s: %w", target, ErrInvalidTarget)
	}
	if target == c.page {
		return nil
	}
	from := c.page
	c.page = target
	c.emit(Transition{Action: ActionNavigate, From: from, To: target})
	return nil
}

func (c *Controller) emit(t Transition) {
	for _, fn := range c.hooks {
		fn(t)
	}
}
