// Package corpus loads raw text for chain building and cleans it up first.
//
// Text comes either from a plain file (Open) or from the rows of a SQL query
// against a database of documents (ReadSQL). Sanitize replaces every
// character that is not printable ASCII with a space, so that words with
// stray control bytes or byte-order marks intern as the same token as their
// clean spelling.
package corpus
