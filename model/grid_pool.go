package model

import "sync"

// GridPool recycles retired generations of bounded engines. Grids are pooled
// per size so engines of different dimensions sharing one pool do not keep
// reallocating each other's rows.
type GridPool struct {
	pools sync.Map // Size -> *sync.Pool
}

func NewGridPool() *GridPool {
	return &GridPool{}
}

func (p *GridPool) forSize(size Size) *sync.Pool {
	if pool, ok := p.pools.Load(size); ok {
		return pool.(*sync.Pool)
	}
	pool, _ := p.pools.LoadOrStore(size, &sync.Pool{
		New: func() any {
			return NewGrid(size.Width, size.Height)
		},
	})
	return pool.(*sync.Pool)
}

// Get retrieves a cleared grid with the given dimensions
func (p *GridPool) Get(width, height int) *Grid {
	g := p.forSize(Size{Width: width, Height: height}).Get().(*Grid)
	g.Reset(width, height)
	return g
}

// Put clears a grid and makes it available to later Get calls
func (p *GridPool) Put(g *Grid) {
	g.Clear()
	p.forSize(Size{Width: g.width, Height: g.height}).Put(g)
}

// GridToPool returns a grid to the pool for reuse; nil grids and pools are ignored
func GridToPool(grid *Grid, pool *GridPool) {
	if pool == nil || grid == nil {
		return
	}

	pool.Put(grid)
}
