// Package verify replays recorded games against the rules engine and checks
// that the engine reaches the recorded result.
package verify

import (
	"errors"
	"fmt"

	"github.com/icco/gutil/logging"
	"go.uber.org/zap"

	"github.com/icco/takrules"
)

var log = logging.Must(logging.NewLogger(takrules.Service))

// ErrEndedEarly is returned when a game is decided before its last ply.
var ErrEndedEarly = errors.New("game ended before the last ply")

// Report is the result of replaying one record.
type Report struct {
	Game     *takrules.Game
	Plies    int
	Outcome  takrules.Victory
	Expected string
	Match    bool
}

// Verifier replays records under a set of rules.
type Verifier struct {
	Rules   takrules.Rules
	Metrics *Metrics
}

// Verify replays every move of a record. Every ply but the last must leave the
// game undecided. An illegal move or an early finish is an error; a final
// outcome that differs from the record's result is reported with Match false.
func (v *Verifier) Verify(rec *takrules.Record) (*Report, error) {
	g, err := rec.NewGame(v.Rules)
	if err != nil {
		return nil, err
	}

	rep := &Report{Game: g, Expected: rec.Result}
	last := len(rec.Moves) - 1
	for i, mv := range rec.Moves {
		vic, err := g.DoPly(mv)
		if err != nil {
			v.count(LabelIllegal)
			return rep, fmt.Errorf("ply %d: %w", i, err)
		}
		rep.Plies++
		if v.Metrics != nil {
			v.Metrics.Plies.Inc()
		}
		rep.Outcome = vic

		if vic.Over() && i != last {
			v.count(LabelEndedEarly)
			return rep, fmt.Errorf("ply %d (%s): %w: %s", i, mv, ErrEndedEarly, vic)
		}
	}

	rep.Match = Matches(rec.Result, rep.Outcome)
	if rep.Match {
		v.count(LabelMatch)
	} else {
		v.count(LabelMismatch)
		log.Infow("result mismatch", "expected", rec.Result, "got", rep.Outcome.String(), "plies", rep.Plies)
	}

	return rep, nil
}

func (v *Verifier) count(label string) {
	if v.Metrics == nil {
		return
	}
	v.Metrics.Games.WithLabelValues(label).Inc()
}

// Matches reports whether an outcome agrees with a recorded PTN result. An
// empty result matches anything. Resignations and time losses ("1-0", "0-1")
// are decided off the board, so the engine must still see an open game.
func Matches(result string, outcome takrules.Victory) bool {
	switch result {
	case "":
		return true
	case "1-0", "0-1":
		return !outcome.Over()
	}
	return outcome.String() == result
}

// All verifies every record in order and returns the reports of those that
// could be replayed. Failures are logged and counted, not returned, so one bad
// game does not stop a batch.
func (v *Verifier) All(recs []*takrules.Record) []*Report {
	var reports []*Report
	for i, rec := range recs {
		rep, err := v.Verify(rec)
		if err != nil {
			log.Errorw("could not replay game", "index", i, zap.Error(err))
			continue
		}
		reports = append(reports, rep)
	}
	return reports
}
