// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for missing or orphaned translation
// keys. It scans the Go sources for i18n.T() calls and compares them against
// the YAML locale files. Run it from the repository root.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "pt-BR.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") and i18n.T("some.prefix." + x)
	callRe = regexp.MustCompile(`i18n\.T\("([^"]+)"(\s*\+)?`)
	// any literal that looks like a key, e.g. label ids kept in tables
	literalRe = regexp.MustCompile(`"([a-z_]+\.[a-z0-9_.]+)"`)
)

// usage is what the sources reference.
type usage struct {
	called   map[string]struct{} // literal ids passed to i18n.T
	literals map[string]struct{} // key-shaped literals anywhere
	prefixes []string            // ids built at runtime from a literal prefix
}

func (u usage) uses(key string) bool {
	if _, ok := u.called[key]; ok {
		return true
	}
	if _, ok := u.literals[key]; ok {
		return true
	}
	for _, p := range u.prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func main() {
	fmt.Println("🔍 Running i18n linter...")
	ok, err := lint(projectRoot, localesDir, primaryLocale, os.Stdout)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("✅ All translation files are consistent!")
}

// lint reports to w and returns false when a key is missing somewhere.
// Orphaned keys are only warnings.
func lint(root, dir, primary string, w io.Writer) (bool, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return false, fmt.Errorf("error finding used keys: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return false, fmt.Errorf("error loading primary locale %s: %w", primary, err)
	}
	fmt.Fprintf(w, "✅ %d keys used in code, %d keys in %s.\n\n", len(used.called), len(primaryKeys), primary)

	ok := true

	fmt.Fprintln(w, "--- Keys used in code but missing from the primary locale ---")
	ok = report(w, "Missing", difference(used.called, primaryKeys)) && ok

	fmt.Fprintln(w, "--- Orphaned keys (in the primary locale but not used) ---")
	var orphaned []string
	for key := range primaryKeys {
		if !used.uses(key) {
			orphaned = append(orphaned, key)
		}
	}
	sort.Strings(orphaned)
	report(w, "Orphaned", orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return false, fmt.Errorf("error finding locale files: %w", err)
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		fmt.Fprintf(w, "--- Checking %s ---\n", filepath.Base(file))
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Fprintf(w, "  - ❌ Error loading %s: %v\n", file, err)
			ok = false
			continue
		}
		ok = report(w, "Missing", difference(primaryKeys, keys)) && ok
		ok = report(w, "Extra", difference(keys, primaryKeys)) && ok
	}
	return ok, nil
}

// report prints keys and returns true when there were none.
func report(w io.Writer, label string, keys []string) bool {
	if len(keys) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
		fmt.Fprintln(w)
		return true
	}
	for _, k := range keys {
		fmt.Fprintf(w, "  - %s: %s\n", label, k)
	}
	fmt.Fprintln(w)
	return false
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// findUsedKeys scans all non-test .go files below root. Directories
// starting with "." or "_" and the tools directory are skipped.
func findUsedKeys(root string) (usage, error) {
	u := usage{called: map[string]struct{}{}, literals: map[string]struct{}{}}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range callRe.FindAllStringSubmatch(string(content), -1) {
			if m[2] != "" {
				u.prefixes = append(u.prefixes, m[1])
			} else {
				u.called[m[1]] = struct{}{}
			}
		}
		for _, m := range literalRe.FindAllStringSubmatch(string(content), -1) {
			u.literals[m[1]] = struct{}{}
		}
		return nil
	})
	return u, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated keys. Locale files
// are flat today; nesting is accepted so either style lints the same.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
