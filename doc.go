// Package gridcover computes Manhattan-distance neighborhoods over 2D
// integer grids: given a board where positive cells are seeds, it reports
// every cell within radius N of any seed.
//
// 🚀 What is gridcover?
//
//	A small, focused library with two interchangeable engines:
//		• Direct: per-seed diamond enumeration with dedup, O(S*N^2)
//		• Expand: multi-source breadth-first expansion, O(R*C)
//	Both return identical counts and identical cell sets, and the test
//	suite holds them against each other on randomized boards.
//
// ✨ Why choose gridcover?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – cells come back in row-major order, always
//   - Honest errors – sentinel values for nil grids, ragged input,
//     negative radii and unknown engines
//   - Batteries included – demo scenarios, a comparison CLI, chart
//     reports and an interactive viewer
//
// Under the hood, everything is organized as:
//
//	grid/              — immutable integer boards: bounds, indexing, seeds
//	cover/             — the Direct and Expand engines + dispatch
//	internal/scenario/ — named demonstration boards
//	internal/gridio/   — text board files and random boards
//	internal/harness/  — side-by-side timing and agreement checks
//	internal/report/   — HTML (go-echarts) and PNG (gonum/plot) charts
//	internal/render/   — palettes and pixel fill for the viewer
//	internal/app/      — the interactive ebiten viewer
//	cmd/gridcover      — comparison CLI
//	cmd/coverlab       — GUI (build with -tags ebiten)
//
// Quick ASCII example, one seed at radius 1:
//
//	. x .        x marks the covered cells,
//	x S x        S is the seed itself,
//	. x .        count = 5.
//
// Dive into the package docs for complexity notes and error contracts.
//
//	go get github.com/katalvlaran/gridcover
package gridcover
