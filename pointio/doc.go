// Package pointio reads and writes point sets as text, one "x,y,z" triple
// per line. Blank lines and lines starting with '#' are ignored; spaces
// around coordinates are allowed.
//
// Parse is the point source for the spanforest CLI. Any malformed line
// (wrong arity or non-integer coordinate) fails the whole read with
// ErrMalformed and the offending line number.
package pointio
