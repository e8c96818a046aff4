package infrastructure

const defaultProcPath = "/proc"

// ProcfsReader reads <mount point>/loadavg through prometheus/procfs
type ProcfsReader struct {
	mountPoint string
}

// NewProcfsReader creates a procfs reader; an empty mountPoint means /proc
func NewProcfsReader(mountPoint string) *ProcfsReader {
	if mountPoint == "" {
		mountPoint = defaultProcPath
	}
	return &ProcfsReader{mountPoint: mountPoint}
}
