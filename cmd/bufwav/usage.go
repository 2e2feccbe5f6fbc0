package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"
)

// usage tracks wall time and, optionally, heap allocations of a command.
type usage struct {
	start    time.Time
	trackMem bool
	before   runtime.MemStats
}

func startUsage(trackMem bool) *usage {
	u := &usage{start: time.Now(), trackMem: trackMem}
	if trackMem {
		runtime.ReadMemStats(&u.before)
	}

	return u
}

// allocations returns the bytes and objects allocated since start.
func (u *usage) allocations() (bytes, objects uint64) {
	var now runtime.MemStats
	runtime.ReadMemStats(&now)

	return now.TotalAlloc - u.before.TotalAlloc, now.Mallocs - u.before.Mallocs
}

func (u *usage) report(w io.Writer, command string, st styles) {
	if u == nil {
		return
	}

	slog.Debug("command finished", "command", command, "elapsed", time.Since(u.start))

	if !u.trackMem {
		return
	}

	bytes, objects := u.allocations()
	fmt.Fprintln(w, st.Dim.Render(fmt.Sprintf("memory: %d bytes in %d allocations", bytes, objects)))
}
