package takrules

// Record is a game supplied from outside the engine, such as a PTN file or a
// match database row: the declared size, the decoded moves in order and the
// result the source says the game ended with.
type Record struct {
	Size   int
	Komi   int
	Moves  []*Move
	Result string
	Meta   []*Tag
}

// NewGame starts a game for the record under rules, using the record's komi.
func (r *Record) NewGame(rules Rules) (*Game, error) {
	rules.Komi = r.Komi
	g, err := NewGame(r.Size, rules)
	if err != nil {
		return nil, err
	}

	for _, t := range r.Meta {
		if t == nil {
			continue
		}
		if err := g.UpdateMeta(t.Key, t.Value); err != nil {
			return nil, err
		}
	}

	return g, nil
}
