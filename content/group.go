package content

// Group is the set of entries sharing one canonical key, in first-seen
// order.
type Group struct {
	Key     string
	Members []int
}

// Groups buckets the entries by canonical key. Groups are returned in the
// order their key was first seen; members keep listing order.
func (l *Library) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for i, e := range l.entries {
		key := e.Key()
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, Group{Key: key})
		}
		groups[g].Members = append(groups[g].Members, i)
	}
	return groups
}

// FindPairs groups the entries by canonical key and links every unordered
// pair of distinct members inside each group. Running it again leaves the
// relation unchanged. The groups are returned for reporting.
func (l *Library) FindPairs() []Group {
	groups := l.Groups()
	for _, g := range groups {
		if len(g.Members) < 2 {
			continue
		}
		for a := 0; a < len(g.Members); a++ {
			for b := a + 1; b < len(g.Members); b++ {
				// indices come from l.entries, Link cannot fail here
				_ = l.Link(g.Members[a], g.Members[b])
			}
		}
	}
	return groups
}
