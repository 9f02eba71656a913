// Package section splits raw LAS text into its named sections.
//
// A LAS file is a sequence of blocks, each introduced by a header line
// beginning with "~". The first token after the tilde names the section;
// LAS identifies the standard sections by the name's first letter (V, W, C,
// P, O, A). Splitting performs no validation: unknown sections are kept
// verbatim so the writer can round-trip them, and comment lines (first
// non-space character "#") stay in the stored raw lines. Grammar consumers
// strip comments themselves via [DataLines].
package section
