package walker

import "strings"

// skipDir returns true for directories that should not be descended into.
// VCS directories are always skipped; other dot-directories only when hidden
// files are excluded.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && len(name) > 0 && name[0] == '.'
}

// hasBinaryExtension returns true if the filename has an extension known to
// be a binary format. Skipping these avoids opening files the scanner would
// discard on its first NUL byte anyway. Also handles versioned shared libs
// like "libfoo.so.1.2.3".
func hasBinaryExtension(name string) bool {
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return false
	}
	if _, ok := binaryExts[name[dot:]]; ok {
		return true
	}
	return strings.Contains(name, ".so.")
}

var binaryExts = map[string]struct{}{
	// Compiled / linked
	".a": {}, ".o": {}, ".so": {}, ".dylib": {}, ".dll": {}, ".exe": {},
	".bin": {}, ".elf": {}, ".class": {}, ".pyc": {}, ".wasm": {},
	// Archives / compressed
	".gz": {}, ".bz2": {}, ".xz": {}, ".zst": {}, ".zip": {}, ".tar": {},
	".rar": {}, ".7z": {}, ".deb": {}, ".rpm": {}, ".jar": {},
	// Images
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".ico": {},
	".tif": {}, ".tiff": {}, ".webp": {}, ".psd": {},
	// Audio / video
	".mp3": {}, ".mp4": {}, ".ogg": {}, ".flac": {}, ".wav": {}, ".avi": {},
	".mkv": {}, ".webm": {}, ".mov": {},
	// Fonts
	".ttf": {}, ".otf": {}, ".woff": {}, ".woff2": {}, ".eot": {},
	// Documents and databases
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {},
	".ppt": {}, ".pptx": {}, ".db": {}, ".sqlite": {},
}
