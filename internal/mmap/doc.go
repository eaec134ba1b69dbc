// Package mmap provides read-only memory-mapped file access for zero-copy
// hashing.
//
// # Overview
//
// Memory mapping lets the hash read file contents directly from the page
// cache without copying through an intermediate buffer, which pays off for
// large inputs. Mappings are opened read-only and advised for sequential
// access, since a hash makes exactly one forward pass.
//
// # Usage
//
//	m, err := mmap.Open("big.iso")
//	if err != nil { ... }
//	defer m.Close()
//
//	h.Write(m.Data)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with a madvise(2) sequential hint
//   - Windows: CreateFileMapping/MapViewOfFile (the hint is a no-op)
//
// Empty files map to a nil Data slice; Open and Close still succeed so
// callers need no special case.
package mmap
