package quiz

import "fmt"

// Difficulty selects which identifier pool a game draws from.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all tiers in menu order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty returns the difficulty matching s, or ok=false.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// Pool holds one tier's vocabulary: real syscall names and fabricated decoys.
// Within a tier the two sets are disjoint by construction; ValidatePools
// asserts this at startup and in tests.
type Pool struct {
	Real   []string
	Decoys []string
}

// PoolFor returns the pool for the given difficulty. Unknown difficulties
// fall back to normal, matching the settings normalization rules.
func PoolFor(d Difficulty) Pool {
	if p, ok := pools[d]; ok {
		return p
	}
	return pools[DifficultyNormal]
}

// ValidatePools checks every tier satisfies the generator's preconditions:
// at least one real name, at least two decoys, and no overlap between the
// two sets. A violation is a build-time data defect, not a runtime state.
func ValidatePools() error {
	for _, d := range Difficulties {
		p := pools[d]
		if len(p.Real) == 0 {
			return fmt.Errorf("pool %s: no real syscall names", d)
		}
		if len(p.Decoys) < 2 {
			return fmt.Errorf("pool %s: need at least 2 decoys, have %d", d, len(p.Decoys))
		}
		real := make(map[string]struct{}, len(p.Real))
		for _, name := range p.Real {
			if _, dup := real[name]; dup {
				return fmt.Errorf("pool %s: duplicate real name %q", d, name)
			}
			real[name] = struct{}{}
		}
		decoys := make(map[string]struct{}, len(p.Decoys))
		for _, name := range p.Decoys {
			if _, dup := decoys[name]; dup {
				return fmt.Errorf("pool %s: duplicate decoy %q", d, name)
			}
			if _, clash := real[name]; clash {
				return fmt.Errorf("pool %s: decoy %q is a real syscall", d, name)
			}
			decoys[name] = struct{}{}
		}
	}
	return nil
}

// Vocabulary is centered on modern x86_64 Linux. Easy holds short,
// high-frequency calls; normal adds the *at variants, VM, polling and
// networking families; hard leans into io_uring, eBPF, namespaces and the
// newer mount API.
var pools = map[Difficulty]Pool{
	DifficultyEasy: {
		Real: []string{
			// file I/O
			"read", "write", "open", "close", "lseek",
			"stat", "fstat", "access", "fcntl", "ioctl",
			"fsync", "fdatasync", "truncate", "ftruncate",
			"getdents", "getdents64", "dup", "dup2", "dup3",
			"pipe", "pipe2",

			// directories & paths
			"getcwd", "chdir", "fchdir", "mkdir", "rmdir",
			"rename", "link", "unlink", "symlink", "readlink",
			"chmod", "umask",

			// process basics
			"getpid", "getppid", "fork", "clone", "execve",
			"exit", "exit_group", "wait4", "kill",

			// identity
			"getuid", "geteuid", "getgid", "getegid",

			// time
			"time", "gettimeofday", "clock_gettime", "nanosleep", "alarm",

			// misc
			"uname",
		},
		Decoys: []string{
			"create", "make", "start", "stop", "view", "show",
			"get", "set", "add", "remove", "move", "copy",
			"check", "test", "run", "execute", "save", "load",
			"init", "end", "begin", "finish",
			"touch", "touch_file", "open_file", "close_file",
			"read_file", "write_file", "delete_file",
			"list_dir", "change_dir", "make_dir", "remove_dir",
			"print", "log", "debug", "trace", "ping", "pong", "echo",
			"sleep_ms", "wait_child", "kill_process", "fork_process",
			"spawn", "join", "leave", "quit",
			"status", "info", "help", "version",
		},
	},

	DifficultyNormal: {
		Real: []string{
			// modern open/stat family
			"openat", "openat2", "close_range", "creat",
			"newfstatat", "statx", "faccessat", "faccessat2",

			// link/rename *at variants
			"mkdirat", "unlinkat", "renameat", "renameat2",
			"linkat", "symlinkat", "readlinkat",

			// ownership & mode
			"chown", "fchown", "fchownat", "fchmod", "fchmodat",

			// extended I/O
			"pread64", "pwrite64", "readv", "writev",
			"preadv", "pwritev", "preadv2", "pwritev2",
			"sendfile", "copy_file_range",

			// file allocation / advice
			"fallocate", "readahead", "fadvise64",
			"sync", "syncfs", "sync_file_range",

			// memory mapping & VM
			"brk", "mmap", "munmap", "mprotect", "madvise",
			"mremap", "msync", "mincore", "mlock", "munlock",
			"mlockall", "munlockall", "mlock2",

			// polling / multiplexing
			"poll", "ppoll", "select", "pselect6",
			"epoll_create", "epoll_create1", "epoll_ctl",
			"epoll_wait", "epoll_pwait",

			// timers / fd-based events
			"eventfd", "eventfd2", "timerfd_create",
			"timerfd_settime", "timerfd_gettime",
			"signalfd", "signalfd4",
			"inotify_init", "inotify_init1",
			"inotify_add_watch", "inotify_rm_watch",

			// signals
			"rt_sigaction", "rt_sigprocmask", "rt_sigsuspend",
			"rt_sigtimedwait", "sigaltstack",

			// networking
			"socket", "socketpair", "bind", "listen",
			"accept", "accept4", "connect", "shutdown",
			"getsockname", "getpeername",
			"setsockopt", "getsockopt",
			"sendto", "recvfrom", "sendmsg", "recvmsg",
			"sendmmsg", "recvmmsg",

			// SysV IPC
			"shmget", "shmat", "shmctl", "shmdt",
			"msgget", "msgsnd", "msgrcv", "msgctl",
			"semget", "semop", "semctl",

			// process & scheduling / limits
			"gettid", "getpgid", "setpgid", "getsid", "setsid",
			"sched_yield", "setrlimit", "getrlimit", "prlimit64",

			// credentials
			"setuid", "setgid", "setreuid", "setregid",
			"setresuid", "setresgid", "setfsuid", "setfsgid",
			"capget", "capset",

			// misc
			"getrandom", "mount", "umount2", "prctl",
		},
		Decoys: []string{
			"allocate", "deallocate", "reserve", "release", "acquire",
			"dispatch", "schedule", "preempt", "suspend", "resume",
			"transfer", "redirect", "validate", "verify",
			"authorize", "authenticate", "encrypt", "decrypt",
			"compress", "decompress", "serialize", "deserialize",
			"transform", "convert", "normalize", "sanitize",
			"marshal", "unmarshal", "encode", "decode",
			"checksum", "hash", "sign", "verify_signature",
			"handshake", "negotiate", "reconnect", "disconnect",
			"send_packet", "receive_packet", "accept_conn",
			"connect_to", "bind_to", "listen_on",
			"mount_fs", "unmount_fs",
			"map_memory", "unmap_memory", "protect_memory",
			"lock_file", "unlock_file",
			"flush_cache", "clear_cache", "refresh",
			"rollback", "commit", "checkpoint", "restore", "snapshot",
			"throttle", "rate_limit", "retry",
			"timeout_set", "timeout_get", "quota_set", "quota_get",
			"permission_check", "user_lookup", "group_lookup",
			"capability_check", "policy_apply", "policy_remove",
		},
	},

	DifficultyHard: {
		Real: []string{
			// io_uring
			"io_uring_setup", "io_uring_enter", "io_uring_register",

			// eBPF / perf
			"bpf", "perf_event_open",

			// futex & rseq
			"futex", "rseq",

			// pidfd
			"pidfd_open", "pidfd_send_signal", "pidfd_getfd",

			// process VM access
			"process_vm_readv", "process_vm_writev",

			// clone variants / namespaces
			"clone3", "unshare", "setns",

			// seccomp / ptrace
			"seccomp", "ptrace", "kcmp",

			// memfd / userfaultfd / keys
			"memfd_create", "memfd_secret", "userfaultfd",
			"add_key", "request_key", "keyctl",

			// fanotify
			"fanotify_init", "fanotify_mark",

			// new mount API
			"open_tree", "move_mount", "fsopen", "fsconfig",
			"fsmount", "fspick", "mount_setattr", "pivot_root",

			// file handles
			"name_to_handle_at", "open_by_handle_at",

			// NUMA / policy
			"mbind", "set_mempolicy", "get_mempolicy",
			"migrate_pages", "move_pages",

			// scheduling attributes / cpu
			"sched_setattr", "sched_getattr", "getcpu",

			// splice family
			"splice", "tee", "vmsplice",

			// modules / kexec / reboot
			"init_module", "finit_module", "delete_module",
			"reboot", "kexec_load", "kexec_file_load",

			// clocks / timers
			"clock_nanosleep", "timer_create", "timer_settime",
			"timer_gettime", "timer_delete",

			// landlock
			"landlock_create_ruleset", "landlock_add_rule",
			"landlock_restrict_self",

			// protection keys
			"pkey_alloc", "pkey_free", "pkey_mprotect",
		},
		Decoys: []string{
			"async_await", "promise_resolve", "promise_reject",
			"callback_invoke", "coroutine_yield", "fiber_switch",
			"thread_spawn", "thread_join", "thread_detach",
			"mutex_trylock", "mutex_unlock",
			"semaphore_post", "semaphore_wait",
			"condvar_signal", "condvar_broadcast", "barrier_sync",
			"spinlock_acquire", "spinlock_release",
			"rwlock_upgrade", "rwlock_downgrade",
			"atomic_cas", "atomic_fetch_add",
			"memory_barrier_full", "memory_barrier_read", "memory_barrier_write",
			"page_scrub", "page_compact", "page_reclaim", "page_prefetch",
			"tlb_sweep", "mmu_rebind", "numa_shuffle", "numa_affinity_set",
			"cgroup_bind", "cgroup_unbind",
			"namespace_merge", "namespace_fork",
			"capability_grant", "capability_revoke",
			"sandbox_exec", "sandbox_enter", "sandbox_leave",
			"profile_start", "profile_stop",
			"trace_begin", "trace_end", "trace_export",
			"ring_submit", "ring_commit", "uring_magic",
			"bpf_attach", "bpf_detach",
			"sec_policy_load", "sec_policy_unload",
			"syscall_hook", "syscall_unhook",
			"kernel_patch", "kernel_unpatch",
			"hotplug_cpu", "hotunplug_cpu",
			"device_claim", "device_release",
			"driver_bind", "driver_unbind",
			"vm_snapshot", "vm_restore", "vm_migrate",
			"fs_journal_flush", "fs_journal_replay",
			"mount_repair", "mount_sanitize",
			"handle_rebind", "handle_invalidate",
		},
	},
}
