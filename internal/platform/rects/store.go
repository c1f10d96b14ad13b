// Package rects keeps the rectangles a game draws through snake.Surface so a
// frontend can repaint them every frame.
package rects

import (
	"sort"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

type entry struct {
	rect  core.Rect
	color core.Color
}

// Store implements snake.Surface by recording rectangles by ID.
// Updates to unknown IDs are ignored.
type Store struct {
	next    snake.RectID
	entries map[snake.RectID]entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{entries: make(map[snake.RectID]entry)}
}

func (s *Store) CreateRect(r core.Rect, c core.Color) snake.RectID {
	s.next++
	s.entries[s.next] = entry{rect: r, color: c}
	return s.next
}

func (s *Store) MoveRect(id snake.RectID, r core.Rect) {
	if e, ok := s.entries[id]; ok {
		e.rect = r
		s.entries[id] = e
	}
}

func (s *Store) RecolorRect(id snake.RectID, c core.Color) {
	if e, ok := s.entries[id]; ok {
		e.color = c
		s.entries[id] = e
	}
}

func (s *Store) DeleteRect(id snake.RectID) {
	delete(s.entries, id)
}

// Len returns the number of live rectangles.
func (s *Store) Len() int {
	return len(s.entries)
}

// Each calls fn for every live rectangle in creation order, so later
// rectangles paint over earlier ones.
func (s *Store) Each(fn func(r core.Rect, c core.Color)) {
	ids := make([]snake.RectID, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		e := s.entries[id]
		fn(e.rect, e.color)
	}
}

var _ snake.Surface = (*Store)(nil)
