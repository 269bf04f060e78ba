// Package lump aggregates small entries of an origin–destination migration
// flow table into a catch-all "other" category.
//
// 🚀 What is lumping?
//
//	Flow tables between many regions are dominated by a few large corridors
//	and a long tail of tiny flows. Before plotting (chord diagrams, sankeys)
//	or modelling, the tail is usually folded into a single "other" region.
//	Lump does this by thresholding one or more dimensions:
//	  • flow (bilat): individual bilateral flows below the threshold
//	  • in   (imm): regions whose inbound total is below the threshold
//	  • out  (emi): regions whose outbound total is below the threshold
//
// ⚙️ Pipeline (per group, each step returns a new record slice):
//
//  1. in:   flag regions by inbound total; relabel rows whose ORIGIN is flagged.
//  2. out:  flag regions by outbound total; relabel rows whose DESTINATION is flagged.
//  3. flow: rows with flow below the threshold get both labels relabeled.
//  4. Re-aggregate by (group keys, origin, destination).
//  5. Optionally complete to the full (origins+other)×(destinations+other) grid.
//  6. Optionally convert each completed group back to a labeled matrix.
//
// Steps 1 and 2 relabel the field opposite to the one the totals were
// computed on: a region small by inbound volume loses its outgoing rows.
//
// Input comes either as a matrix.Labeled (FromMatrix, LumpMatrix) or as a
// record table (FromMaps, or a Table built directly). Both are converted to
// one canonical Table; the table remembers whether it came from a matrix so
// the result can be returned in dense form.
//
// Usage:
//
//	res, err := lump.LumpMatrix(od, 40, lump.WithComplete(true))
//	m, err := res.Matrix() // (origins+1)×(destinations+1)
//
// Complexity: O(n log n) per group for n records (sorting of the output);
// memory O(n), or O(|origins|·|destinations|) with completion.
package lump
