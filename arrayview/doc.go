// Package arrayview provides non-owning, element-typed views over host memory
// for script runtimes. View wraps a Go slice; Strided reads fixed-stride
// records out of a byte buffer. Both expose a checked accessor (Get) and an
// unchecked fast path (At) for the script boundary.
package arrayview
