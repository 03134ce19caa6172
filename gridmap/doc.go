// Package gridmap reads and writes grid layouts as YAML and watches layout
// files for changes.
//
// A layout file looks like:
//
//	name: courtyard
//	topology: conn8
//	rows:
//	  - "S...#..."
//	  - ".##.#.5."
//	  - "....#..G"
//	weights:
//	  - {x: 2, y: 0, weight: 130}
//
// Row legend:
//
//	.      passable, weight 0
//	#      impassable (grid.Impassable)
//	S, G   start and goal, passable, weight 0
//	0-9    passable, weight digit×25
//
// Weights lists per-cell overrides for values the legend cannot express.
// Apply copies a layout into an existing grid in one step, so tiles can be
// reloaded between searches without rebuilding adjacency. Watcher reports
// changed layout files for hot reload.
package gridmap
