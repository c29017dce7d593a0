package scene

import "github.com/vovakirdan/tone-memory/internal/core"

// RegionKind is what a click inside a region does.
type RegionKind int

const (
	RegionBoardSmall RegionKind = iota + 1
	RegionBoardLarge
	RegionTimeScreen
	RegionStart
	RegionDecrease
	RegionIncrease
	RegionConfirm
	RegionPause
	RegionMenu
	RegionCard
	RegionDismiss
)

// Region maps a rectangle to an action. Index is the card for RegionCard.
type Region struct {
	Rect  core.Rect
	Kind  RegionKind
	Index int
}

// Regions returns the active scene's click table in priority order. The
// first region containing a click wins.
func (c *Controller) Regions() []Region {
	m, w := c.metrics, c.width

	switch c.scene {
	case SceneMenu:
		return []Region{
			{Rect: m.board16Rect(w), Kind: RegionBoardSmall},
			{Rect: m.board36Rect(w), Kind: RegionBoardLarge},
			{Rect: m.adjustRect(w), Kind: RegionTimeScreen},
			{Rect: m.startRect(w), Kind: RegionStart},
		}

	case SceneTimeAdjust:
		return []Region{
			{Rect: m.minusRect(w), Kind: RegionDecrease},
			{Rect: m.plusRect(w), Kind: RegionIncrease},
			{Rect: m.confirmRect(w), Kind: RegionConfirm},
		}

	case ScenePlaying:
		regions := []Region{{Rect: m.pauseRect(w), Kind: RegionPause}}
		if c.game.Paused() {
			return append(regions, Region{Rect: m.menuRect(w), Kind: RegionMenu})
		}
		grid := c.game.GridSize()
		for i := 0; i < c.game.Len(); i++ {
			regions = append(regions, Region{Rect: m.CardRect(w, grid, i), Kind: RegionCard, Index: i})
		}
		return regions

	case SceneGameOver:
		return []Region{{Rect: core.NewRect(0, 0, c.width, c.height), Kind: RegionDismiss}}
	}
	return nil
}
