// Package filesystem provides the local-disk implementation of driven.FileStore.
//
// File names are derived from result titles. Titles are sanitised so they
// cannot escape the output directory, names repeated within one run get a
// numeric suffix, and every file is written to a temporary name first and
// renamed into place.
package filesystem
