// SPDX-License-Identifier: MIT
package solution

// indexSet is a set over 0..n-1 with O(1) add, remove and membership.
// members is dense; pos[i] is i's slot in members, or -1 when absent.
// Removal swaps the last member into the freed slot.
type indexSet struct {
	members []int
	pos     []int
}

func newIndexSet(n int) indexSet {
	s := indexSet{members: make([]int, 0, n), pos: make([]int, n)}
	for i := range s.pos {
		s.pos[i] = -1
	}

	return s
}

func (s *indexSet) has(i int) bool { return s.pos[i] >= 0 }

func (s *indexSet) len() int { return len(s.members) }

func (s *indexSet) add(i int) {
	s.pos[i] = len(s.members)
	s.members = append(s.members, i)
}

func (s *indexSet) remove(i int) {
	slot := s.pos[i]
	last := s.members[len(s.members)-1]
	s.members[slot] = last
	s.pos[last] = slot
	s.members = s.members[:len(s.members)-1]
	s.pos[i] = -1
}

// clear empties the set in O(k).
func (s *indexSet) clear() {
	for _, i := range s.members {
		s.pos[i] = -1
	}
	s.members = s.members[:0]
}

// fill makes the set {0, …, n-1} in ascending order.
func (s *indexSet) fill() {
	s.members = s.members[:0]
	for i := range s.pos {
		s.pos[i] = i
		s.members = append(s.members, i)
	}
}
