package mmap

import (
	"errors"
	"os"
)

// File is a file mapped read-only into memory. Data spans the whole file
// and stays valid until Close.
type File struct {
	Data []byte
	f    *os.File
}

// Open maps the file at path into memory and hints the kernel that it will
// be read once, front to back.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		return &File{f: f}, nil
	}

	if size < 0 || size != int64(int(size)) {
		f.Close()
		return nil, errors.New("mmap: file size out of range")
	}

	data, err := mmap(f, int(size))
	if err != nil {
		f.Close()
		return nil, err
	}

	adviseSequential(data)

	return &File{Data: data, f: f}, nil
}

// Size returns the length of the mapping in bytes.
func (m *File) Size() int {
	return len(m.Data)
}

// Close unmaps the memory and closes the underlying file. Data must not be
// used after Close returns.
func (m *File) Close() error {
	if m == nil {
		return nil
	}

	var err error
	if m.Data != nil {
		err = munmap(m.Data)
		m.Data = nil
	}

	if m.f != nil {
		if closeErr := m.f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		m.f = nil
	}

	return err
}
