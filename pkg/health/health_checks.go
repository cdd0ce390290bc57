package health

import (
	"errors"
	"io/fs"
	"os"
)

// ProjectFileCheck reports on the project file path() currently points to.
// A project that has not been saved yet is degraded, not unhealthy.
func ProjectFileCheck(path func() string) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "project",
			Details: make(map[string]any),
		}

		p := path()
		check.Details["path"] = p
		if p == "" {
			check.Status = StatusDegraded
			check.Message = "Not saved yet"
			return check
		}

		info, err := os.Stat(p)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			check.Status = StatusDegraded
			check.Message = "Not saved yet"
		case err != nil:
			check.Status = StatusUnhealthy
			check.Message = err.Error()
		case info.IsDir():
			check.Status = StatusUnhealthy
			check.Message = "Path is a directory"
		default:
			check.Status = StatusHealthy
			check.Message = "Saved"
			check.Details["size_bytes"] = info.Size()
			check.Details["modified"] = info.ModTime()
		}
		return check
	}
}

// SourceCheck reports on the background frame source. Having no source is
// fine; a source without frames is not.
func SourceCheck(source func() (path string, frames int, ok bool)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "raster",
			Details: make(map[string]any),
		}

		path, frames, ok := source()
		if !ok {
			check.Status = StatusHealthy
			check.Message = "No background"
			return check
		}

		check.Details["path"] = path
		check.Details["frames"] = frames
		if frames == 0 {
			check.Status = StatusUnhealthy
			check.Message = "Source has no frames"
		} else {
			check.Status = StatusHealthy
			check.Message = "Source available"
		}
		return check
	}
}

// MemoryCheck creates a health check for memory usage
func MemoryCheck(getUsage func() (alloc, sys uint64)) CheckFunc {
	return func() Check {
		check := Check{
			Name:    "memory",
			Details: make(map[string]any),
		}

		alloc, sys := getUsage()
		check.Details["alloc_bytes"] = alloc
		check.Details["sys_bytes"] = sys

		if sys > 0 && float64(alloc)/float64(sys) > 0.9 {
			check.Status = StatusDegraded
			check.Message = "High memory usage"
		} else {
			check.Status = StatusHealthy
			check.Message = "Memory usage normal"
		}
		return check
	}
}
