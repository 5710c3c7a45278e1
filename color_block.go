package esolang

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
)

// ColorBlock is a maximal 4-connected region of same-colored codels.
type ColorBlock struct {
	Color  Color
	Codels []Position
}

// Size is the number of codels in the block, the operand of push.
func (m ColorBlock) Size() int {
	return len(m.Codels)
}

func (m ColorBlock) Contains(pos Position) bool {
	for _, c := range m.Codels {
		if c == pos {
			return true
		}
	}
	return false
}

var neighborDirections = [...]Direction{DirectionRight, DirectionLeft, DirectionDown, DirectionUp}

// FindBlock flood-fills from start over orthogonal neighbours sharing its
// color. The result always contains start.
func FindBlock(p *Program, start Position) ColorBlock {
	color := p.At(start)
	block := ColorBlock{Color: color}
	if !p.Contains(start) {
		return block
	}

	seen := make([]bool, p.Size())
	queue := arrayqueue.New()
	seen[p.index(start)] = true
	queue.Enqueue(start)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		pos := v.(Position)
		block.Codels = append(block.Codels, pos)

		for _, d := range neighborDirections {
			next := pos.Step(d)
			if !p.Contains(next) || p.At(next) != color {
				continue
			}
			i := p.index(next)
			if !seen[i] {
				seen[i] = true
				queue.Enqueue(next)
			}
		}
	}

	return block
}

// BlockLocator resolves the block containing a position.
type BlockLocator interface {
	Find(pos Position) ColorBlock
}

type floodFillLocator struct {
	p *Program
}

func (m floodFillLocator) Find(pos Position) ColorBlock {
	return FindBlock(m.p, pos)
}

// BlockCache memoises FindBlock for one Program. Program grids never
// change after load, so a block found once is valid for every codel in it.
type BlockCache struct {
	p      *Program
	ids    []int
	blocks []ColorBlock
}

func NewBlockCache(p *Program) *BlockCache {
	ids := make([]int, p.Size())
	for i := range ids {
		ids[i] = -1
	}
	return &BlockCache{p: p, ids: ids}
}

func (m *BlockCache) Find(pos Position) ColorBlock {
	if !m.p.Contains(pos) {
		return FindBlock(m.p, pos)
	}
	if id := m.ids[m.p.index(pos)]; id >= 0 {
		return m.blocks[id]
	}

	block := FindBlock(m.p, pos)
	id := len(m.blocks)
	m.blocks = append(m.blocks, block)
	for _, c := range block.Codels {
		m.ids[m.p.index(c)] = id
	}
	return block
}

// Len returns how many distinct blocks have been resolved so far.
func (m *BlockCache) Len() int {
	return len(m.blocks)
}
