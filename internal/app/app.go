//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/gridcover/cover"
	"github.com/katalvlaran/gridcover/grid"
	"github.com/katalvlaran/gridcover/internal/gridio"
	"github.com/katalvlaran/gridcover/internal/render"
	"github.com/katalvlaran/gridcover/internal/scenario"
)

const (
	minCellSize = 12
	hudHeight   = 56

	randomDensity = 0.5
)

var (
	hudBackground = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	lineColor     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb2}
)

// Game is the interactive board viewer. It walks the scenario gallery,
// recomputes coverage on every edit, and draws the board through the
// active color scheme.
type Game struct {
	scens []scenario.Scenario
	idx   int

	board  [][]int
	radius int
	method cover.Method

	schemes   []render.Scheme
	schemeIdx int
	gridLines bool
	cellSize  int

	painter *render.GridPainter
	rng     *rand.Rand

	display []uint8
	count   int
	elapsed time.Duration

	dirty bool
	note  string
}

// New constructs a Game from the command-line configuration.
func New(cfg *Config) (*Game, error) {
	method, err := cover.ParseMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	schemeIdx, err := render.SchemeIndex(cfg.Scheme)
	if err != nil {
		return nil, err
	}

	g := &Game{
		scens:     scenario.All(),
		method:    method,
		schemes:   render.Schemes(),
		schemeIdx: schemeIdx,
		gridLines: cfg.GridLines,
		cellSize:  cfg.CellSize,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
	if g.cellSize < minCellSize {
		g.cellSize = minCellSize
	}

	if cfg.Scenario != "" {
		found := false
		for i, s := range g.scens {
			if s.Name == cfg.Scenario {
				g.idx = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("app: unknown scenario %q", cfg.Scenario)
		}
	}

	g.loadScenario(g.idx)
	if err := g.recompute(); err != nil {
		return nil, err
	}
	return g, nil
}

// ScreenSize returns the window dimensions for the current board.
func (g *Game) ScreenSize() (w, h int) {
	rows, cols := len(g.board), 0
	if rows > 0 {
		cols = len(g.board[0])
	}
	return cols * g.cellSize, rows*g.cellSize + hudHeight
}

// loadScenario resets the editable board to the gallery entry at idx.
func (g *Game) loadScenario(idx int) {
	g.idx = idx
	s := g.scens[idx]
	g.board = s.Values
	g.radius = s.Radius
	g.painter = render.NewGridPainter(len(g.board), len(g.board[0]))
	g.note = ""
	g.dirty = true
}

// Update handles input and recomputes coverage when the board, radius, or
// engine changed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.loadScenario((g.idx + 1) % len(g.scens))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.loadScenario((g.idx + len(g.scens) - 1) % len(g.scens))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.radius++
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) && g.radius > 0 {
		g.radius--
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		if g.method == cover.MethodDirect {
			g.method = cover.MethodExpand
		} else {
			g.method = cover.MethodDirect
		}
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.schemeIdx = (g.schemeIdx + 1) % len(g.schemes)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.gridLines = !g.gridLines
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		rows, cols := len(g.board), len(g.board[0])
		g.board = gridio.Random(g.rng, rows, cols, randomDensity)
		g.note = "random board"
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		for r := range g.board {
			for c := range g.board[r] {
				g.board[r][c] = 0
			}
		}
		g.note = "cleared"
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		path := fmt.Sprintf("board-%s.txt", time.Now().Format("20060102-150405"))
		if err := gridio.Save(path, g.board); err != nil {
			g.note = err.Error()
		} else {
			g.note = "saved " + path
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		row, col := cy/g.cellSize, cx/g.cellSize
		if row >= 0 && row < len(g.board) && col >= 0 && col < len(g.board[row]) {
			g.board[row][col] = nextCellValue(g.board[row][col])
			g.dirty = true
		}
	}

	if g.dirty {
		return g.recompute()
	}
	return nil
}

// recompute runs the active engine over the current board and rebuilds
// the display states: covered cells first, then seeds on top.
func (g *Game) recompute() error {
	b, err := grid.New(g.board)
	if err != nil {
		return err
	}

	begin := time.Now()
	res, err := cover.Compute(b, g.radius, g.method, &cover.Options{ReturnCells: true})
	if err != nil {
		return err
	}
	g.elapsed = time.Since(begin)
	g.count = res.Count

	if len(g.display) != b.Rows()*b.Cols() {
		g.display = make([]uint8, b.Rows()*b.Cols())
	} else {
		clear(g.display)
	}
	for _, c := range res.Cells {
		g.display[b.Index(c.Row, c.Col)] = render.StateCovered
	}
	for _, s := range b.Seeds() {
		g.display[b.Index(s.Row, s.Col)] = render.StateSeed
	}

	g.dirty = false
	return nil
}

// Draw renders the board, optional cell borders, seed values, and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	scheme := g.schemes[g.schemeIdx]
	screen.Fill(hudBackground)

	g.painter.Blit(screen, g.display, scheme.Palette(), g.cellSize)

	rows, cols := len(g.board), len(g.board[0])
	w, h := float32(cols*g.cellSize), float32(rows*g.cellSize)
	if g.gridLines {
		for c := 0; c <= cols; c++ {
			x := float32(c * g.cellSize)
			vector.StrokeLine(screen, x, 0, x, h, 1, lineColor, false)
		}
		for r := 0; r <= rows; r++ {
			y := float32(r * g.cellSize)
			vector.StrokeLine(screen, 0, y, w, y, 1, lineColor, false)
		}
	}

	for r, row := range g.board {
		for c, v := range row {
			if v <= 0 {
				continue
			}
			x := c*g.cellSize + g.cellSize/2 - 3
			y := r*g.cellSize + g.cellSize/2 - 8
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", v), x, y)
		}
	}

	s := g.scens[g.idx]
	status := fmt.Sprintf("%s | engine=%s | N=%d | covered=%d | %v",
		s.Title, g.method, g.radius, g.count, g.elapsed.Round(time.Microsecond))
	ebitenutil.DebugPrintAt(screen, status, 4, int(h)+4)
	ebitenutil.DebugPrintAt(screen, helpLine, 4, int(h)+20)
	if g.note != "" {
		ebitenutil.DebugPrintAt(screen, g.note, 4, int(h)+36)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

const helpLine = "arrows: board/N  M: engine  T: theme  G: lines  click: edit  R: random  C: clear  S: save  Q: quit"

// nextCellValue cycles a clicked cell through 0, 1, 2, 3 and resets
// anything outside that range.
func nextCellValue(v int) int {
	if v < 0 || v >= 3 {
		return 0
	}
	return v + 1
}
