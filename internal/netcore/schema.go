package netcore

// StatusEntry is one named status available to a Net.
type StatusEntry struct {
	ID   StatusID
	Name string
}

// schema is the ordered collection of statuses a Net recognizes, plus the
// two distinguished members every Net bootstraps with. It is embedded in
// Net and mutated only through the schema commands below.
type schema struct {
	entries    []StatusEntry
	index      map[StatusID]int // entries[index[id]] == the entry for id
	defaultID  StatusID
	acceptedID StatusID
}

func newSchema(defaultName, acceptedName string) schema {
	s := schema{index: make(map[StatusID]int, 2)}
	s.defaultID = s.append(defaultName)
	s.acceptedID = s.append(acceptedName)
	return s
}

func (s *schema) append(name string) StatusID {
	id := NewID[StatusKind]()
	s.index[id] = len(s.entries)
	s.entries = append(s.entries, StatusEntry{ID: id, Name: name})
	return id
}

func (s *schema) has(id StatusID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *schema) nameOf(id StatusID) (string, bool) {
	i, ok := s.index[id]
	if !ok {
		return "", false
	}
	return s.entries[i].Name, true
}

func (s *schema) rename(id StatusID, name string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.entries[i].Name = name
	return true
}

// remove deletes id from the schema. Callers must have already rejected
// default/accepted ids; remove does not re-check that itself.
func (s *schema) remove(id StatusID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.entries) - 1
	s.entries[i] = s.entries[last]
	s.index[s.entries[i].ID] = i
	s.entries = s.entries[:last]
	delete(s.index, id)
}

// list returns a copy of the schema's entries in unspecified order.
func (s *schema) list() []StatusEntry {
	out := make([]StatusEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
