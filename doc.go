// Package syspath manipulates path strings for both POSIX and Windows syntaxes behind a uniform
// driver interface. All operations are lexical: the package never touches the filesystem, resolves
// symlinks, or queries the OS. Working directory and environment values are plain state on each
// driver instance, supplied by the host.
//
// Callers either hold a driver directly (posix.New or windows.New) or install one process-wide
// with SetDriver and go through the package-level forwarding functions.
package syspath
