// Package stats computes connectivity and length statistics of a GFA graph.
//
// # Segment Ends
//
// Every segment has two ends, [SideBegin] and [SideEnd]. A link joins one end
// of its From segment to one end of its To segment:
//
//	L  a  +  b  +      a:end   -> b:begin
//	L  a  -  b  +      a:begin -> b:begin
//	L  a  +  b  -      a:end   -> b:end
//
// A dead end is a segment end that no link touches. A linear chain
// 1 -- 2 -- 3 has exactly two dead ends: the begin of 1 and the end of 3.
//
// Links with an end on a virtual (referenced but undefined) segment are
// ignored by every function in this package. Segments with no known length
// count as 0.
//
// # Lengths
//
// [Lengths] sorts segment lengths ascending and reports the minimum, the
// values at 0-based indices n/4-1, n/2-1 and 3n/4-1 (clamped at 0), the
// maximum, the total and the N50: summing lengths from the longest down, the
// length at which the running total first reaches half of the total.
//
// [Compute] gathers everything into an [Info] report.
package stats
