// Package script implements the batch evaluation mode: calculations are
// declared as HCL calc blocks, loaded from a file or a directory tree,
// and handed to the dispatcher in a stable order. The Loader interface
// keeps the dispatcher independent of the file format.
package script
