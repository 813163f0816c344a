// Package io reads and writes GFA graphs as files and streams.
//
// # Overview
//
// GFA text is the only persistent format. [ReadGFA] and [ImportGFA] load a
// graph through [graph.Graph.Load], so a load is atomic, validated at the
// end when the level asks for it, and reported to the observer in the
// options. [WriteGFA] and [ExportGFA] write the records back in store
// order; reading and writing a graph gives back the same text, minus blank
// lines.
//
// Files whose name ends in ".gz" are decompressed on import and compressed
// on export.
//
// # JSON Export
//
// [WriteJSON] and [ExportJSON] produce a JSON view of the graph for tools
// that do not speak GFA:
//
//	{
//	  "header": [{"name": "VN", "type": "Z", "value": "1.0"}],
//	  "segments": [
//	    {"name": "1", "sequence": "ACGT", "length": 4, "state": "real"}
//	  ],
//	  "links": [
//	    {"from": "1", "from_orient": "+", "to": "2", "to_orient": "-", "overlap": "*"}
//	  ],
//	  "containments": [],
//	  "paths": [{"name": "p", "steps": ["1+", "2-"], "overlaps": ["*"]}]
//	}
//
// Integer and float tags carry numeric values; every other tag type keeps
// its GFA text. Segments that are referenced but not defined appear with
// state "virtual" so consumers can tell them apart. The JSON view is
// export-only.
//
// # Concurrency
//
// Writers only read the graph. They are safe to run concurrently with
// other readers but not with a mutation of the same graph.
package io
