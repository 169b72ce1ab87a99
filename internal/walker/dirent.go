package walker

import "unsafe"

// File type constants from dirent.h.
const (
	dtUnknown = 0
	dtDir     = 4
	dtReg     = 8
	dtLnk     = 10
)

// dirent is a parsed Linux directory entry.
type dirent struct {
	name string
	typ  uint8
}

// parseDirents parses raw getdents64 output. The linux_dirent64 layout is
// d_ino (8) + d_off (8) + d_reclen (2) + d_type (1) + null-terminated name.
// dst is reused across calls to avoid per-directory allocation.
func parseDirents(buf []byte, n int, dst []dirent) []dirent {
	entries := dst[:0]
	off := 0

	for off+19 <= n {
		reclen := *(*uint16)(unsafe.Pointer(&buf[off+16]))
		if reclen == 0 {
			break
		}
		typ := buf[off+18]

		nameEnd := off + int(reclen)
		if nameEnd > n {
			nameEnd = n
		}
		raw := buf[off+19 : nameEnd]
		nameLen := 0
		for nameLen < len(raw) && raw[nameLen] != 0 {
			nameLen++
		}
		name := string(raw[:nameLen])

		if name != "" && name != "." && name != ".." {
			entries = append(entries, dirent{name: name, typ: typ})
		}
		off += int(reclen)
	}

	return entries
}
