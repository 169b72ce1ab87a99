package walker

import "golang.org/x/sys/unix"

// Options configures directory traversal.
type Options struct {
	Hidden   bool // include hidden files and directories
	NoIgnore bool // skip .gitignore processing
}

// Walk visits roots in argument order, strictly sequentially. A root that is
// a regular file is visited directly; a directory is traversed depth-first
// using raw getdents64. Only regular files are visited — symlinks inside
// directories are never followed. Each file is visited at most once per run.
// Non-fatal problems (missing root, unreadable directory) are reported
// through warn and the walk continues.
func Walk(roots []string, opts Options, visit func(path string), warn func(err error)) {
	w := &walker{
		opts:  opts,
		visit: visit,
		warn:  warn,
		buf:   make([]byte, 32*1024),
	}

	for _, root := range roots {
		var stat unix.Stat_t
		if err := unix.Stat(root, &stat); err != nil {
			warn(&WalkError{Path: root, Err: err})
			continue
		}
		switch stat.Mode & unix.S_IFMT {
		case unix.S_IFREG:
			visit(root)
		case unix.S_IFDIR:
			var stack ignoreStack
			if !opts.NoIgnore {
				stack.push(root)
			}
			w.walkDir(root, &stack)
		}
	}
}

type walker struct {
	opts    Options
	visit   func(path string)
	warn    func(err error)
	buf     []byte   // getdents buffer, reused across directories
	dirents []dirent // parsed entries, reused across reads
}

// walkDir reads one directory and recurses into subdirectories. The fd is
// closed before descending so open descriptors stay bounded by tree depth
// only through recursion, never accumulated per sibling.
func (w *walker) walkDir(dir string, stack *ignoreStack) {
	fd, err := unix.Open(dir, unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		w.warn(&WalkError{Path: dir, Err: err})
		return
	}

	var files, subdirs []string
	for {
		n, err := unix.Getdents(fd, w.buf)
		if err != nil {
			w.warn(&WalkError{Path: dir, Err: err})
			break
		}
		if n == 0 {
			break
		}

		w.dirents = parseDirents(w.buf, n, w.dirents)
		for _, e := range w.dirents {
			full := joinPath(dir, e.name)
			typ := e.typ
			if typ == dtUnknown {
				typ = statType(full)
			}

			switch typ {
			case dtDir:
				if skipDir(e.name, w.opts.Hidden) {
					continue
				}
				if stack.isIgnored(full, true) {
					continue
				}
				subdirs = append(subdirs, full)

			case dtReg:
				if !w.opts.Hidden && e.name[0] == '.' {
					continue
				}
				if hasBinaryExtension(e.name) {
					continue
				}
				if stack.isIgnored(full, false) {
					continue
				}
				files = append(files, full)
			}
			// Symlinks and special files are skipped entirely.
		}
	}
	unix.Close(fd)

	for _, f := range files {
		w.visit(f)
	}
	for _, sub := range subdirs {
		if !w.opts.NoIgnore {
			stack.push(sub)
		}
		w.walkDir(sub, stack)
		if !w.opts.NoIgnore {
			stack.pop()
		}
	}
}

// statType resolves a DT_UNKNOWN entry with lstat, so filesystems that do
// not fill d_type (some XFS, NFS) still walk correctly. Symlinks stay
// unresolved on purpose.
func statType(path string) uint8 {
	var stat unix.Stat_t
	if err := unix.Lstat(path, &stat); err != nil {
		return dtUnknown
	}
	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		return dtReg
	case unix.S_IFDIR:
		return dtDir
	case unix.S_IFLNK:
		return dtLnk
	}
	return dtUnknown
}

// joinPath concatenates a directory and entry name with a single separator,
// avoiding filepath.Join's Clean pass since both inputs are already clean.
// Entries under "." are reported without the "./" prefix.
func joinPath(dir, name string) string {
	if dir == "." {
		return name
	}
	if len(dir) > 0 && dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}

// WalkError is a path-scoped traversal failure.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
