package game

import "strconv"

// Link joins two consecutive snake segments for drawing.
type Link struct {
	From, To Cell
}

// Caption is one line of interstitial text.
type Caption struct {
	Text  string
	Color RGB
}

// Frame is the full redraw instruction set for one logic update. Renderers
// draw it as-is and keep nothing between frames.
type Frame struct {
	State    GameState
	Width    int
	Height   int
	TileSize int

	// ShowBoard is set while playing and on the game-over card.
	ShowBoard bool
	Snake     []Cell // head first
	Links     []Link
	Food      Cell
	HasFood   bool
	Walls     []Cell

	Captions []Caption

	Score     int
	Lives     int
	Level     int
	FrameSkip int
}

// Frame snapshots the session for the renderer.
func (s *GameSession) Frame() Frame {
	f := Frame{
		State:     s.State,
		Width:     s.cfg.GridWidth,
		Height:    s.cfg.GridHeight,
		TileSize:  s.cfg.TileSize,
		Score:     s.Score,
		Lives:     s.LivesLeft,
		Level:     s.LevelIndex,
		FrameSkip: s.FrameSkip(),
	}

	switch s.State {
	case StateTitle:
		f.Captions = []Caption{
			{Text: s.cfg.Title[0], Color: Palette.Text},
			{Text: s.cfg.Title[1], Color: Palette.Title},
		}
	case StateLevel:
		f.Captions = numberCard("Level", s.LevelIndex)
	case StateLives:
		f.Captions = numberCard("Lives", s.LivesLeft)
	case StateScore:
		f.Captions = numberCard("Score", s.Score)
	case StateGameOver:
		f.ShowBoard = true
		f.Captions = []Caption{
			{Text: "Game", Color: Palette.Text},
			{Text: "Over", Color: Palette.Text},
		}
	case StatePlaying:
		f.ShowBoard = true
	}

	if f.ShowBoard {
		s.fillBoard(&f)
	}
	return f
}

func numberCard(label string, n int) []Caption {
	return []Caption{
		{Text: label, Color: Palette.Text},
		{Text: strconv.Itoa(n), Color: Palette.Text},
	}
}

func (s *GameSession) fillBoard(f *Frame) {
	if s.Level != nil {
		f.Walls = s.Level.Walls()
	}
	if s.Food != nil && s.Food.Active {
		f.Food = s.Food.Position
		f.HasFood = true
	}
	if s.Snake == nil {
		return
	}
	f.Snake = make([]Cell, 0, s.Snake.Len())
	for i := 0; i < s.Snake.Len(); i++ {
		f.Snake = append(f.Snake, s.Snake.Segment(i).Position)
	}
	f.Links = Links(f.Snake)
}

// Links pairs consecutive cells of body. Pairs that are not Adjacent crossed
// a grid edge and are left out so nothing is drawn across the board.
func Links(body []Cell) []Link {
	var out []Link
	for i := 1; i < len(body); i++ {
		a, b := body[i-1], body[i]
		if !Adjacent(a, b) {
			continue
		}
		out = append(out, Link{From: a, To: b})
	}
	return out
}
