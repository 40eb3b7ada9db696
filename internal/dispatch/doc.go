// SPDX-License-Identifier: MIT

// Package dispatch runs the request loop: it reads the stream header, then
// processes submission and report commands strictly one at a time.
//
// Stream format:
//
//	N K                      header: vertex count, ranking capacity
//	AggiungiGrafo            submit: followed by N rows of N numbers
//	0,4,1
//	0,0,0
//	0,1,0
//	TopK                     report: one line of graph ids
//
// Numbers are separated by any of ',', ' ', '\t', '\r', '\n'. A command line
// starting with 'A' submits, one starting with 'T' reports; blank lines are
// skipped. Submissions get ids 0, 1, 2, ... in arrival order.
//
// Malformed input is rejected here, before the core ever sees it, with one of
// the package sentinels wrapped in the offending line number.
package dispatch
