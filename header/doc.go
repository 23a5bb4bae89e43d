// Package header extracts key-value metadata from the leading comment block
// of a text file, such as a script header:
//
//	# ID: TC-1042
//	# Author: J. Doe
//	# Objective: Verify that the export job
//	#   resumes after a transient failure.
//	import sys
//
// Parsing covers the maximal contiguous run of lines at the start of the
// source that begin (after trimming whitespace) with the comment-leader
// character. The run ends permanently at the first non-comment line; later
// comment lines are never visited.
//
// Within the run, each line has its leading comment-leader characters and
// surrounding whitespace stripped. A line containing a colon is split on the
// first colon into a key and a value, both trimmed; a repeated key replaces
// the earlier value. A line without a colon is appended, newline-joined, to
// the value of the most recently seen key, so values may span multiple
// comment lines. Lines without a colon that appear before any key (banners,
// separators) are discarded.
//
// Parsing is best-effort by design: there is no notion of malformed input.
// Only read failures on the underlying source produce an error.
package header
