package model

// Snapshot is the immutable result of one parse run.
// Endpoints are kept in file-discovery order, then in-file method order.
type Snapshot struct {
	endpoints []Endpoint
	byID      map[string]int

	// Files that were skipped because they failed to parse
	Failed []string
}

// NewSnapshot copies endpoints into a new snapshot
func NewSnapshot(endpoints []Endpoint, failed []string) *Snapshot {
	s := &Snapshot{
		endpoints: make([]Endpoint, len(endpoints)),
		byID:      make(map[string]int, len(endpoints)),
		Failed:    append([]string(nil), failed...),
	}
	copy(s.endpoints, endpoints)
	for i, ep := range s.endpoints {
		s.byID[ep.ID] = i
	}
	return s
}

// Endpoints returns a copy of the endpoint list
func (s *Snapshot) Endpoints() []Endpoint {
	if s == nil {
		return nil
	}
	out := make([]Endpoint, len(s.endpoints))
	copy(out, s.endpoints)
	return out
}

// Len returns the number of endpoints
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.endpoints)
}

// Lookup finds an endpoint by ID
func (s *Snapshot) Lookup(id string) (Endpoint, bool) {
	if s == nil {
		return Endpoint{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return Endpoint{}, false
	}
	return s.endpoints[i], true
}

// Folders returns the distinct folder tags in first-seen order
func (s *Snapshot) Folders() []string {
	if s == nil {
		return nil
	}
	return DistinctFolders(s.endpoints)
}

// DistinctFolders returns the distinct folder tags of endpoints in first-seen order
func DistinctFolders(endpoints []Endpoint) []string {
	seen := make(map[string]bool)
	folders := []string{}
	for _, ep := range endpoints {
		if seen[ep.FolderTag] {
			continue
		}
		seen[ep.FolderTag] = true
		folders = append(folders, ep.FolderTag)
	}
	return folders
}
