// Package ptnfile loads games written in Portable Tak Notation.
package ptnfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nelhage/taktician/ptn"

	"github.com/icco/takrules"
)

// Load reads a PTN game and decodes it into a record. The Size tag is
// required; Komi and Result are optional.
func Load(r io.Reader) (*takrules.Record, error) {
	p, err := ptn.ParsePTN(r)
	if err != nil {
		return nil, fmt.Errorf("parse ptn: %w", err)
	}

	rec := &takrules.Record{}
	for _, t := range p.Tags {
		rec.Meta = append(rec.Meta, &takrules.Tag{Key: t.Name, Value: t.Value})
	}

	sizeTag := p.FindTag("Size")
	if sizeTag == "" {
		return nil, fmt.Errorf("No such meta key '%s'", "Size")
	}
	rec.Size, err = strconv.Atoi(sizeTag)
	if err != nil {
		return nil, fmt.Errorf("bad size %q: %w", sizeTag, err)
	}

	if komi := p.FindTag("Komi"); komi != "" {
		rec.Komi, err = strconv.Atoi(komi)
		if err != nil {
			return nil, fmt.Errorf("unsupported komi %q: %w", komi, err)
		}
	}

	rec.Result = p.FindTag("Result")

	for _, op := range p.Ops {
		switch o := op.(type) {
		case *ptn.Move:
			mv, err := takrules.NewMove(o.Source())
			if err != nil {
				return nil, fmt.Errorf("ply %d: %w", len(rec.Moves), err)
			}
			rec.Moves = append(rec.Moves, mv)
		case *ptn.Result:
			rec.Result = o.Source()
		}
	}

	return rec, nil
}

// LoadString is Load for PTN text.
func LoadString(s string) (*takrules.Record, error) {
	return Load(strings.NewReader(s))
}
