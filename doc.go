// Package judgekit is a collection of online-judge (UVa) solutions built on a
// few small, reusable algorithm packages.
//
// Layout:
//
//	wgraph/       adjacency-list weighted graph with Dijkstra shortest paths
//	bipartite/    BFS two-coloring
//	mst/          Kruskal minimum spanning tree over a disjoint-set forest
//	automaton/    Rock/Scissors/Paper cellular automaton
//	rails/        stack-sortability check for coach orders
//	queens/       eight-queens placements and minimum repair moves
//	judgeio/      token and line oriented judge input, buffered output
//	problems/     one solver per judge problem, looked up by ID
//	config/       optional TOML configuration
//	logging/      leveled diagnostics to stderr or a rotated file
//	cmd/judgekit  the CLI: `judgekit run <id>` and `judgekit list`
//
// Every solver is a stdin to stdout filter; nothing is kept between runs.
package judgekit
