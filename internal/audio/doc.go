// Package audio validates input files before stem separation.
//
// Validation checks that a path names an existing regular file with a
// supported extension. It never opens or decodes the file; the only
// side effect is a single metadata read.
package audio
