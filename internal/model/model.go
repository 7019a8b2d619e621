// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model contains the plain data types shared by the navigation
// controller, the mock catalog and the terminal views.
package model

import (
	"fmt"
	"strings"
	"time"
)

// User is the identity shown in the sidebar and on the profile page.
type User struct {
	Name  string
	Email string
}

// Initial returns the first letter of the user's name, used as avatar.
func (u User) Initial() string {
	for _, r := range strings.TrimSpace(u.Name) {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Session holds the authentication flag and the logged-in user.
type Session struct {
	Authenticated bool
	User          User
}

// ProductionStatus is the production stage a project is currently in.
type ProductionStatus int

const (
	StatusFuselage ProductionStatus = iota
	StatusWings
	StatusElectrical
	StatusTesting
)

var statusSlugs = map[ProductionStatus]string{
	StatusFuselage:   "fuselage",
	StatusWings:      "wings",
	StatusElectrical: "electrical",
	StatusTesting:    "testing",
}

// String returns the lowercase slug, which is also the i18n key suffix.
func (s ProductionStatus) String() string {
	if slug, ok := statusSlugs[s]; ok {
		return slug
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// ParseProductionStatus converts a slug such as "electrical" into a status.
func ParseProductionStatus(s string) (ProductionStatus, error) {
	for status, slug := range statusSlugs {
		if slug == strings.ToLower(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown production status %q", s)
}

// Project is a read-only mock project row.
type Project struct {
	ID       string
	Client   string
	Status   ProductionStatus
	Deadline time.Time
}

// StepState is the progress of one assembly step.
type StepState int

const (
	StepDone StepState = iota
	StepInProgress
	StepPending
)

func (s StepState) String() string {
	switch s {
	case StepDone:
		return "done"
	case StepInProgress:
		return "in_progress"
	case StepPending:
		return "pending"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ParseStepState converts "done", "in_progress" or "pending" into a StepState.
func ParseStepState(s string) (StepState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "done":
		return StepDone, nil
	case "in_progress":
		return StepInProgress, nil
	case "pending":
		return StepPending, nil
	}
	return 0, fmt.Errorf("unknown step state %q", s)
}

// AssemblyStep is one stage of the assembly line shown on the project
// detail page. Label is a stage slug (see ProductionStatus).
type AssemblyStep struct {
	Label string
	State StepState
}

// ProjectDetail is the fixed project shown by the detail page.
type ProjectDetail struct {
	ProjectID string
	Steps     []AssemblyStep
}

// Alert is an urgent banner on the dashboard.
type Alert struct {
	Component string
	Line      int
}

// StatCard is one summary figure on the dashboard. Key selects the label.
type StatCard struct {
	Key   string
	Value string
}

// Dashboard groups the static dashboard content.
type Dashboard struct {
	Alert Alert
	Stats []StatCard
}

// Profile holds the extra, static profile fields.
type Profile struct {
	Role        string
	Department  string
	MemberSince int
}

// ReportOptions lists the choices offered by the reports form.
type ReportOptions struct {
	Types    []string
	Projects []string
}
