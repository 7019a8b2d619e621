// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package mock

import (
	"strings"
	"testing"
	"time"

	"github.com/aerocode/aerocode/internal/model"
)

func TestDefault_Projects(t *testing.T) {
	c := Default()
	want := []struct {
		id       string
		status   model.ProductionStatus
		deadline string
	}{
		{"Aero-X1", model.StatusFuselage, "2025-12-20"},
		{"Aero-X2", model.StatusElectrical, "2026-01-15"},
		{"Sky-R3", model.StatusTesting, "2025-11-10"},
	}
	if len(c.Projects) != len(want) {
		t.Fatalf("expected %d projects, got %d", len(want), len(c.Projects))
	}
	for i, w := range want {
		p := c.Projects[i]
		if p.ID != w.id || p.Status != w.status || p.Deadline.Format(time.DateOnly) != w.deadline {
			t.Errorf("project %d = %+v, want %+v", i, p, w)
		}
	}
	if !strings.Contains(c.Projects[0].Client, "Boeing") {
		t.Errorf("unexpected client %q", c.Projects[0].Client)
	}
}

func TestDefault_DashboardAndDetail(t *testing.T) {
	c := Default()
	var values []string
	for _, s := range c.Dashboard.Stats {
		values = append(values, s.Value)
	}
	if strings.Join(values, ",") != "8,3,5" {
		t.Fatalf("unexpected stat values %v", values)
	}
	if c.Dashboard.Alert.Component == "" || c.Dashboard.Alert.Line != 3 {
		t.Fatalf("unexpected alert %+v", c.Dashboard.Alert)
	}

	if c.Detail.ProjectID != "Aero-X1" || len(c.Detail.Steps) != 4 {
		t.Fatalf("unexpected detail %+v", c.Detail)
	}
	states := []model.StepState{model.StepDone, model.StepInProgress, model.StepPending, model.StepPending}
	for i, s := range c.Detail.Steps {
		if s.State != states[i] {
			t.Errorf("step %d (%s) state = %v, want %v", i, s.Label, s.State, states[i])
		}
	}
	if c.User.Email != "gerson.penha@aerocode.com" || c.Profile.MemberSince != 2021 {
		t.Fatalf("unexpected user/profile %+v %+v", c.User, c.Profile)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":     "projects: [",
		"bad status":   "projects:\n  - id: X\n    status: paint\n    deadline: \"2025-01-01\"\n",
		"bad deadline": "projects:\n  - id: X\n    status: testing\n    deadline: tomorrow\n",
		"bad step":     "detail:\n  steps:\n    - label: wings\n      state: maybe\n",
		"orphan":       "detail:\n  project: Nope\n",
	}
	for name, data := range cases {
		if _, err := Load([]byte(data)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestProjectLookup(t *testing.T) {
	c := Default()
	if p, ok := c.Project("Sky-R3"); !ok || p.Status != model.StatusTesting {
		t.Fatalf("lookup Sky-R3 failed: %+v %v", p, ok)
	}
	if _, ok := c.Project("Aero-X9"); ok {
		t.Fatalf("expected miss for unknown project")
	}
}
