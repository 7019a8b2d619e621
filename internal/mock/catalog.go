// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package mock provides the hardcoded datasets rendered by the views.
// The data is embedded as YAML and decoded once; callers get read-only
// copies.
package mock

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/aerocode/aerocode/internal/model"
	"github.com/aerocode/aerocode/util/slicest"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// dateLayout is the layout of deadline values in catalog.yaml.
const dateLayout = "2006-01-02"

// Catalog is the full set of mock data.
type Catalog struct {
	User      model.User
	Dashboard model.Dashboard
	Projects  []model.Project
	Detail    model.ProjectDetail
	Profile   model.Profile
	Reports   model.ReportOptions
}

// catalogFile mirrors the YAML layout.
type catalogFile struct {
	User struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"user"`
	Dashboard struct {
		Alert struct {
			Component string `yaml:"component"`
			Line      int    `yaml:"line"`
		} `yaml:"alert"`
		Stats []statEntry `yaml:"stats"`
	} `yaml:"dashboard"`
	Projects []projectEntry `yaml:"projects"`
	Detail struct {
		Project string `yaml:"project"`
		Steps   []stepEntry `yaml:"steps"`
	} `yaml:"detail"`
	Profile struct {
		Role        string `yaml:"role"`
		Department  string `yaml:"department"`
		MemberSince int    `yaml:"member_since"`
	} `yaml:"profile"`
	Reports struct {
		Types    []string `yaml:"types"`
		Projects []string `yaml:"projects"`
	} `yaml:"reports"`
}

type statEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

type projectEntry struct {
	ID       string `yaml:"id"`
	Client   string `yaml:"client"`
	Status   string `yaml:"status"`
	Deadline string `yaml:"deadline"`
}

func (p projectEntry) project() (model.Project, error) {
	status, err := model.ParseProductionStatus(p.Status)
	if err != nil {
		return model.Project{}, fmt.Errorf("project %s: %w", p.ID, err)
	}
	deadline, err := time.Parse(dateLayout, p.Deadline)
	if err != nil {
		return model.Project{}, fmt.Errorf("project %s: bad deadline: %w", p.ID, err)
	}
	return model.Project{ID: p.ID, Client: p.Client, Status: status, Deadline: deadline}, nil
}

type stepEntry struct {
	Label string `yaml:"label"`
	State string `yaml:"state"`
}

func (s stepEntry) step() (model.AssemblyStep, error) {
	state, err := model.ParseStepState(s.State)
	if err != nil {
		return model.AssemblyStep{}, fmt.Errorf("assembly step %s: %w", s.Label, err)
	}
	return model.AssemblyStep{Label: s.Label, State: state}, nil
}

// Load decodes a catalog from YAML.
func Load(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		User:    model.User{Name: f.User.Name, Email: f.User.Email},
		Profile: model.Profile(f.Profile),
		Reports: model.ReportOptions{Types: f.Reports.Types, Projects: f.Reports.Projects},
	}
	c.Dashboard.Alert = model.Alert(f.Dashboard.Alert)
	c.Dashboard.Stats = slicest.Map(f.Dashboard.Stats, func(s statEntry) model.StatCard {
		return model.StatCard{Key: s.Key, Value: s.Value}
	})

	var err error
	if c.Projects, err = slicest.MapX(f.Projects, projectEntry.project); err != nil {
		return nil, err
	}
	c.Detail.ProjectID = f.Detail.Project
	if c.Detail.Steps, err = slicest.MapX(f.Detail.Steps, stepEntry.step); err != nil {
		return nil, err
	}
	if c.Detail.ProjectID != "" {
		if _, ok := c.Project(c.Detail.ProjectID); !ok {
			return nil, fmt.Errorf("detail project %q is not in the project list", c.Detail.ProjectID)
		}
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which only a broken build can cause.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("mock: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Project looks up a project by id.
func (c *Catalog) Project(id string) (model.Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}
