/*
File    : mql-go/scriptset/scriptset.go
*/

// Package scriptset is host-side batch tooling for loading many MQL
// scripts from disk at once: every *.mql file in a directory, plus an
// optional manifest.yaml naming each script's signature role. MQL
// itself has no file I/O (spec Non-goals — it's an embedded expression
// language, not a scripting runtime), so this lives one layer up, at
// the host-tooling layer, the way a game or app would keep a folder of
// behavior scripts next to its assets.
//
// This is adapted from the teacher's file package: same "wrap an OS
// resource, expose named operations over it" shape, repurposed from a
// single stateful file handle (fopen/fread/fwrite/fclose builtins
// reachable from GoMix scripts) to a batch loader a Go host calls
// directly — MQL scripts have no way to open files themselves.
package scriptset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is one loaded .mql source file.
type Script struct {
	Name   string // file name without the .mql extension
	Path   string
	Source string
}

// Manifest optionally annotates scripts with a declared signature role
// — which host signature a script expects to be compiled against —
// read from manifest.yaml in the same directory.
type Manifest struct {
	Roles map[string]string `yaml:"roles"`
}

// Set is a named collection of scripts loaded from one directory.
type Set struct {
	dir      string
	scripts  map[string]Script
	manifest Manifest
}

// Load reads every *.mql file directly inside dir (non-recursive) into
// a Set. If dir/manifest.yaml exists, it's parsed and attached; a
// missing manifest is not an error, an unparsable one is.
func Load(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scriptset: reading %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".mql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	set := &Set{dir: dir, scripts: make(map[string]Script, len(names))}
	for _, fname := range names {
		path := filepath.Join(dir, fname)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("scriptset: reading %s: %w", path, err)
		}
		name := strings.TrimSuffix(fname, ".mql")
		set.scripts[name] = Script{Name: name, Path: path, Source: string(data)}
	}

	manifestPath := filepath.Join(dir, "manifest.yaml")
	if data, err := os.ReadFile(manifestPath); err == nil {
		var m Manifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("scriptset: parsing %s: %w", manifestPath, err)
		}
		set.manifest = m
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("scriptset: reading %s: %w", manifestPath, err)
	}

	return set, nil
}

// Get returns the script named name, if loaded.
func (s *Set) Get(name string) (Script, bool) {
	sc, ok := s.scripts[name]
	return sc, ok
}

// Names returns every loaded script's name, sorted.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.scripts))
	for n := range s.scripts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Role returns the manifest-declared signature role for a script name,
// if the set was loaded with a manifest.yaml naming one.
func (s *Set) Role(name string) (string, bool) {
	if s.manifest.Roles == nil {
		return "", false
	}
	r, ok := s.manifest.Roles[name]
	return r, ok
}
