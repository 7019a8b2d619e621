// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

package model

import (
	"fmt"
	"strings"
)

// Page identifies the screen currently shown to the user.
type Page int

const (
	PageLogin Page = iota
	PageDashboard
	PageProjectList
	PageProjectDetail
	PageReports
	PageSettings
	PageProfile
)

// pageSlugs is indexed by Page and must list every page in order.
var pageSlugs = [...]string{
	PageLogin:         "login",
	PageDashboard:     "dashboard",
	PageProjectList:   "projects",
	PageProjectDetail: "project-detail",
	PageReports:       "reports",
	PageSettings:      "settings",
	PageProfile:       "profile",
}

// Pages returns every page in declaration order.
func Pages() []Page {
	pages := make([]Page, 0, len(pageSlugs))
	for i := range pageSlugs {
		pages = append(pages, Page(i))
	}
	return pages
}

// Valid reports whether p is one of the declared pages.
func (p Page) Valid() bool {
	return p >= 0 && int(p) < len(pageSlugs)
}

// RequiresAuth reports whether the page lives inside the authenticated layout.
func (p Page) RequiresAuth() bool {
	return p.Valid() && p != PageLogin
}

// String returns the page slug used on the command line.
func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("page(%d)", int(p))
	}
	return pageSlugs[p]
}

// ParsePage converts a slug (case-insensitive) into a Page.
func ParsePage(s string) (Page, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, slug := range pageSlugs {
		if slug == s {
			return Page(i), nil
		}
	}
	return 0, fmt.Errorf("unknown page %q (valid: %s)", s, strings.Join(pageSlugs[:], ", "))
}
