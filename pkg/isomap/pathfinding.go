package isomap

import (
	"container/heap"
)

// FindPath runs A* over cg from start to goal using 4-directional moves and a
// Manhattan heuristic. Equal priorities are expanded in discovery order. The
// returned path starts with start and ends with goal; it is empty when the goal
// cannot be reached. The start cell itself is not required to be free.
func FindPath(cg *CollisionGrid, start, goal Index) []Index {
	if !cg.InBounds(start) || !cg.InBounds(goal) || cg.Blocked(goal) {
		return nil
	}
	pq := &PriorityQueue{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, &Node{Index: start, Cost: 0, Seq: seq})
	cameFrom := make(map[Index]Index)
	costSoFar := map[Index]int{start: 0}
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*Node)
		if current.Index == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		for _, dir := range Directions {
			neighbor := current.Index.Add(dir)
			if cg.Blocked(neighbor) {
				continue
			}
			newCost := costSoFar[current.Index] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				cameFrom[neighbor] = current.Index
				seq++
				heap.Push(pq, &Node{Index: neighbor, Cost: newCost + neighbor.Manhattan(goal), Seq: seq})
			}
		}
	}
	return nil
}

// Node is one open-set entry.
type Node struct {
	Index Index
	Cost  int
	Seq   int
}

// PriorityQueue orders nodes by cost, then by discovery order.
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].Cost != pq[j].Cost {
		return pq[i].Cost < pq[j].Cost
	}
	return pq[i].Seq < pq[j].Seq
}
func (pq PriorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *PriorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*Node))
}
func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(cameFrom map[Index]Index, start, goal Index) []Index {
	path := []Index{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
