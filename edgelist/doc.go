// Package edgelist loads whitespace-separated edge lists — the standard
// interchange format of SNAP-style social-network datasets — into a
// core.Graph.
//
// Format: one edge per line, two integer node ids separated by spaces or
// tabs; blank lines and lines starting with '#' are skipped. Node ids
// become payloads; dense indices are assigned in first-seen order, so the
// same file always produces the same graph.
//
// Open transparently decodes files ending in ".gz" (the usual shipping
// form of large edge lists) using klauspost/compress.
//
// The loader deliberately performs no graph hygiene: self-loops and
// duplicate edges in the input are stored verbatim, per the core tolerance
// policy. Malformed lines are a hard error (ErrBadRecord, wrapped with the
// offending line number) — silently skipping them would bias every metric
// computed downstream.
package edgelist
