package round

import (
	"golang.org/x/sync/errgroup"

	"github.com/greenside/greenside/internal/games"
)

// Results carries the output of every enabled game; disabled games are nil.
type Results struct {
	Vegas  *games.VegasResult  `json:"vegas,omitempty"`
	Banker *games.BankerResult `json:"banker,omitempty"`
	Skins  *games.SkinsResult  `json:"skins,omitempty"`
	Junk   *games.JunkResult   `json:"junk,omitempty"`
	HiLo   *games.HiLoResult   `json:"hilo,omitempty"`
	Wolf   *games.WolfResult   `json:"wolf,omitempty"`
}

// ComputeAll evaluates every enabled game over the current round state.
// The engines are pure functions of the shared sheet and write only their
// own result, so they run concurrently; the work is small enough that a
// full recompute on every edit is the whole consistency story.
func (r *Round) ComputeAll() Results {
	sheet := r.Sheet()
	set := r.games

	var results Results
	var g errgroup.Group

	if set.Vegas != nil {
		g.Go(func() error {
			v := games.ComputeVegas(sheet, *set.Vegas)
			results.Vegas = &v
			return nil
		})
	}
	if set.Banker != nil {
		g.Go(func() error {
			v := games.ComputeBanker(sheet, *set.Banker)
			results.Banker = &v
			return nil
		})
	}
	if set.Skins != nil {
		g.Go(func() error {
			v := games.ComputeSkins(sheet, *set.Skins)
			results.Skins = &v
			return nil
		})
	}
	if set.Junk != nil {
		marks := r.marks
		g.Go(func() error {
			v := games.ComputeJunk(sheet, marks, *set.Junk)
			results.Junk = &v
			return nil
		})
	}
	if set.HiLo != nil {
		g.Go(func() error {
			v := games.ComputeHiLo(sheet, *set.HiLo)
			results.HiLo = &v
			return nil
		})
	}
	if set.Wolf != nil {
		g.Go(func() error {
			v := games.ComputeWolf(sheet, *set.Wolf)
			results.Wolf = &v
			return nil
		})
	}

	_ = g.Wait()
	return results
}
