// Package signedge computes leave-one-out topological features of the edges
// of a signed graph (edge signs +1 / -1, e.g. trust and distrust), for
// building sign-prediction datasets.
//
// What a run does:
//
//	• Loads an edge list ("u v sign") into a thread-safe in-memory graph
//	• Partitions vertices by degree range (configured or derived adaptively)
//	• Enumerates candidate edges inside each range or across ranges
//	• Caps the sample per (bucket pair, sign) class
//	• For each admitted edge: removes it, computes five features, restores it
//	• Writes one TSV per (group, sign) plus a per-destination summary
//
// The five features of an edge (a, b):
//
//	prop1  mean over shortest a→b paths of Σsign / edges
//	prop2  mean over shortest a→b paths of Σ 1/deg(v) / edges
//	prop3  |N(a)∩N(b)| / |N(a)∪N(b)|
//	prop4  balanced triangles / |N(a)∩N(b)|  (sign sum 3 or -1)
//	prop5  (agreeing positive − agreeing negative) / |N(a)∪N(b)|
//
// A feature that cannot be computed (no path, path too long, empty
// neighborhood) is written as the configured sentinel, 1000 by default.
//
// Packages:
//
//	core/      signed Graph: vertices, ±1 edges, O(1) degree, RW locks
//	bfs/       layered BFS, all shortest paths with depth cap and status
//	builder/   deterministic signed graph generators (fixtures, synth)
//	degree/    degree ranges, partition, adaptive ranges, neighbor profile
//	pairs/     intra / inter candidate enumeration, sampling classes
//	features/  the leave-one-out Extractor
//	sampler/   per-class cap and ordered routing to destinations
//	config/    YAML + .env + SIGNEDGE_* settings
//	edgelist/  edge list reader / writer
//	output/    TSV writers
//	report/    per-destination feature statistics
//	pipeline/  the configurable run tying everything together
//
// Quick ASCII example:
//
//	    1 ──+── 2
//	     \     /
//	      +   +
//	       \ /
//	        3 ──−── 4
//
// With ranges [0,2] and [3,10], the only intra candidate is 1–2. Removing it
// leaves the common neighbor 3 with a (+,+,+) triangle, so prop3 = prop4 = 1.
//
//	go run ./cmd/signedge extract -i edges.txt -o out --ranges 0-2,3-10
package signedge
