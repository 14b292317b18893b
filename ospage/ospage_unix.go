//go:build linux || darwin || freebsd

package ospage

import "golang.org/x/sys/unix"

func pageSize() int {
	return unix.Getpagesize()
}

func acquirePages(nbytes int) ([]byte, error) {
	return unix.Mmap(-1, 0, nbytes, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func releasePages(region []byte) error {
	return unix.Munmap(region)
}
