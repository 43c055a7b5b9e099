package session

import (
	"errors"
	"strings"

	"spring-apidoc/internal/model"
)

// ErrUnknownEndpoint is returned when an id or reference matches nothing
var ErrUnknownEndpoint = errors.New("unknown endpoint")

// Folder is one group of the endpoint tree
type Folder struct {
	Name      string
	Count     int
	Endpoints []model.Endpoint
}

// State owns the current snapshot together with the search text and the
// selection. It is not safe for concurrent use.
type State struct {
	snapshot *model.Snapshot
	search   string
	selected map[string]bool
}

// NewState wraps a snapshot; a nil snapshot is treated as empty
func NewState(snap *model.Snapshot) *State {
	s := &State{}
	s.Replace(snap)
	return s
}

// Replace installs a new snapshot. The selection is cleared and the search
// text is kept.
func (s *State) Replace(snap *model.Snapshot) {
	if snap == nil {
		snap = model.NewSnapshot(nil, nil)
	}
	s.snapshot = snap
	s.selected = make(map[string]bool)
}

// Snapshot returns the current snapshot
func (s *State) Snapshot() *model.Snapshot {
	return s.snapshot
}

// Search sets the filter text
func (s *State) Search(text string) {
	s.search = text
}

// SearchText returns the current filter text
func (s *State) SearchText() string {
	return s.search
}

// Filtered returns the endpoints matching the search text, in snapshot order
func (s *State) Filtered() []model.Endpoint {
	out := []model.Endpoint{}
	for _, ep := range s.snapshot.Endpoints() {
		if ep.Matches(s.search) {
			out = append(out, ep)
		}
	}
	return out
}

// Folders groups the filtered endpoints by folder tag in first-seen order
func (s *State) Folders() []Folder {
	filtered := s.Filtered()
	folders := []Folder{}
	for _, name := range model.DistinctFolders(filtered) {
		f := Folder{Name: name}
		for _, ep := range filtered {
			if ep.FolderTag == name {
				f.Endpoints = append(f.Endpoints, ep)
			}
		}
		f.Count = len(f.Endpoints)
		folders = append(folders, f)
	}
	return folders
}

// ToggleSelect flips the selection of an endpoint and reports whether it is
// now selected
func (s *State) ToggleSelect(id string) (bool, error) {
	if _, ok := s.snapshot.Lookup(id); !ok {
		return false, ErrUnknownEndpoint
	}
	if s.selected[id] {
		delete(s.selected, id)
		return false, nil
	}
	s.selected[id] = true
	return true, nil
}

// IsSelected reports whether id is selected
func (s *State) IsSelected(id string) bool {
	return s.selected[id]
}

// Selected returns the selected endpoints in snapshot order
func (s *State) Selected() []model.Endpoint {
	out := []model.Endpoint{}
	for _, ep := range s.snapshot.Endpoints() {
		if s.selected[ep.ID] {
			out = append(out, ep)
		}
	}
	return out
}

// ClearSelection drops every selected id
func (s *State) ClearSelection() {
	s.selected = make(map[string]bool)
}

// Lookup finds an endpoint by id
func (s *State) Lookup(id string) (model.Endpoint, bool) {
	return s.snapshot.Lookup(id)
}

// Resolve finds an endpoint by id or by a "METHOD /path" reference
func (s *State) Resolve(ref string) (model.Endpoint, error) {
	ref = strings.TrimSpace(ref)
	if ep, ok := s.snapshot.Lookup(ref); ok {
		return ep, nil
	}
	method, path, found := strings.Cut(ref, " ")
	if found {
		method = strings.ToUpper(strings.TrimSpace(method))
		path = strings.TrimSpace(path)
		for _, ep := range s.snapshot.Endpoints() {
			if ep.Method == method && ep.Path == path {
				return ep, nil
			}
		}
	}
	return model.Endpoint{}, ErrUnknownEndpoint
}
