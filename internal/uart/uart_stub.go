//go:build !linux

package uart

import "fmt"

type Port struct{}

func Open(path string) (*Port, error) {
	return nil, fmt.Errorf("uart not supported on this platform")
}

func (p *Port) ConfigureRaw(baud int) error {
	return fmt.Errorf("uart not supported on this platform")
}

func (p *Port) Read(buf []byte) (int, error) {
	return 0, fmt.Errorf("uart not supported on this platform")
}

func (p *Port) Close() error {
	return nil
}
