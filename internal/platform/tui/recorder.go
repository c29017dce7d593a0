package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tone-memory/internal/scene"
	"github.com/vovakirdan/tone-memory/internal/storage"
)

// ResultSaver is the part of storage.Store the recorder needs.
type ResultSaver interface {
	SaveResult(storage.Result) (storage.Result, error)
}

// StoreRecorder saves finished games. Save errors are logged and otherwise
// ignored so a broken database never interrupts play.
type StoreRecorder struct {
	store  ResultSaver
	logger *log.Logger
	player string // SSH user, empty for local play
}

// NewStoreRecorder creates a recorder. A nil store makes it a no-op.
func NewStoreRecorder(store ResultSaver, logger *log.Logger, player string) *StoreRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &StoreRecorder{store: store, logger: logger, player: player}
}

// RecordResult implements scene.ResultRecorder.
func (r *StoreRecorder) RecordResult(res scene.Result) {
	if r.store == nil {
		return
	}

	saved, err := r.store.SaveResult(storage.Result{
		Player:    r.player,
		BoardSize: res.BoardSize,
		TimeLimit: res.TimeLimit,
		Matches:   res.Matches,
		Pairs:     res.Pairs,
		Elapsed:   res.Elapsed,
		Outcome:   string(res.Outcome),
	})
	if err != nil {
		r.logger.Warn("could not save result", "error", err)
		return
	}
	r.logger.Debug("result saved",
		"id", saved.ID,
		"player", saved.Player,
		"board", saved.BoardSize,
		"outcome", saved.Outcome,
		"matches", saved.Matches,
		"elapsed", saved.Elapsed,
	)
}

var _ scene.ResultRecorder = (*StoreRecorder)(nil)
