//go:build mips || mipsle || mips64 || mips64le

package linux

// SIGRTMAX as reported by the C library. The kernel's _NSIG is 128 on mips,
// glibc keeps signal 128 out of the realtime range.
const SIGRTMAX = 127
