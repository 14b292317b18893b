//go:build windows

package ospage

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func pageSize() int {
	var info windows.SystemInfo

	windows.GetSystemInfo(&info)

	return int(info.PageSize)
}

func acquirePages(nbytes int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(nbytes), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), nbytes), nil
}

func releasePages(region []byte) error {
	addr := uintptr(unsafe.Pointer(&region[0]))

	return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
}
