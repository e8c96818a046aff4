package infrastructure

// SysinfoReader reads the load average with the sysinfo(2) system call
type SysinfoReader struct{}

// NewSysinfoReader creates a sysinfo reader
func NewSysinfoReader() *SysinfoReader {
	return &SysinfoReader{}
}
