// Package xml models the WordprocessingML structure of a DOCX
// document: the body, its paragraphs and tables, and the styled runs
// inside each paragraph.
//
// The model is deliberately narrow. Only the pieces the substitution
// engine needs to reason about are parsed into typed structs; every
// other element (run and paragraph properties, hyperlinks, drawings,
// bookmarks, section properties) is captured verbatim as a RawElement
// and written back byte-for-byte, so formatting the engine never
// touches survives a parse/serialize round trip untouched.
package xml
