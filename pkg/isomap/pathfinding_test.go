package isomap

import "testing"

func gridFromRows(rows []string) *CollisionGrid {
	cg := NewCollisionGrid(len(rows[0]), len(rows))
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				cg.SetBlocked(Index{Col: c, Row: r}, true)
			}
		}
	}
	return cg
}

func assertValidPath(t *testing.T, cg *CollisionGrid, path []Index, start, goal Index) {
	t.Helper()
	if len(path) == 0 {
		t.Fatalf("Expected a path from %s to %s, got none", start, goal)
	}
	if path[0] != start {
		t.Errorf("Expected path to start at %s, got %s", start, path[0])
	}
	if path[len(path)-1] != goal {
		t.Errorf("Expected path to end at %s, got %s", goal, path[len(path)-1])
	}
	for i := 1; i < len(path); i++ {
		if !path[i-1].IsAdjacent(path[i]) {
			t.Errorf("Step %d: %s -> %s is not a cardinal move", i, path[i-1], path[i])
		}
		if cg.Blocked(path[i]) {
			t.Errorf("Step %d: %s is blocked", i, path[i])
		}
	}
}

func TestFindPathOpenGrid(t *testing.T) {
	cg := NewCollisionGrid(6, 6)
	start, goal := Index{0, 0}, Index{5, 5}
	path := FindPath(cg, start, goal)
	assertValidPath(t, cg, path, start, goal)
	if len(path) != start.Manhattan(goal)+1 {
		t.Errorf("Expected shortest path of %d cells, got %d", start.Manhattan(goal)+1, len(path))
	}
}

func TestFindPathAroundWall(t *testing.T) {
	cg := gridFromRows([]string{
		".....",
		"####.",
		".....",
		".####",
		".....",
	})
	start, goal := Index{0, 0}, Index{4, 4}
	path := FindPath(cg, start, goal)
	assertValidPath(t, cg, path, start, goal)
	if len(path) != 17 {
		t.Errorf("Expected the serpentine path of 17 cells, got %d", len(path))
	}
}

func TestFindPathUnreachable(t *testing.T) {
	cg := gridFromRows([]string{
		"..#..",
		"..#..",
		"..#..",
	})
	if path := FindPath(cg, Index{0, 0}, Index{4, 2}); len(path) != 0 {
		t.Errorf("Expected empty path, got %v", path)
	}
}

func TestFindPathStartEqualsGoal(t *testing.T) {
	cg := NewCollisionGrid(3, 3)
	path := FindPath(cg, Index{1, 1}, Index{1, 1})
	if len(path) != 1 || path[0] != (Index{1, 1}) {
		t.Errorf("Expected single-cell path, got %v", path)
	}
}

func TestFindPathFromBlockedStart(t *testing.T) {
	cg := gridFromRows([]string{
		"#...",
		"....",
	})
	start, goal := Index{0, 0}, Index{3, 1}
	assertValidPath(t, cg, FindPath(cg, start, goal), start, goal)
}

func TestFindPathBlockedGoal(t *testing.T) {
	cg := gridFromRows([]string{
		"...",
		"..#",
	})
	if path := FindPath(cg, Index{0, 0}, Index{2, 1}); len(path) != 0 {
		t.Errorf("Expected no path into a blocked goal, got %v", path)
	}
}

func TestFindPathDeterministic(t *testing.T) {
	cg := NewCollisionGrid(8, 8)
	first := FindPath(cg, Index{0, 0}, Index{7, 7})
	for i := 0; i < 10; i++ {
		again := FindPath(cg, Index{0, 0}, Index{7, 7})
		if len(again) != len(first) {
			t.Fatalf("Expected stable path length %d, got %d", len(first), len(again))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("Expected identical paths, differ at step %d: %s vs %s", j, first[j], again[j])
			}
		}
	}
}
