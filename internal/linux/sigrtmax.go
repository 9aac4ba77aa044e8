//go:build !mips && !mipsle && !mips64 && !mips64le

package linux

// SIGRTMAX as reported by the C library.
const SIGRTMAX = 64
