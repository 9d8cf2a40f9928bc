//go:build linux

package uart

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Port is an open serial descriptor. It is owned by a single caller for the
// duration of one invocation.
type Port struct {
	fd   int
	path string
}

// Open opens the device read-only and non-blocking. The port is unusable for
// NMEA until ConfigureRaw succeeds at some baud.
func Open(path string) (*Port, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, err
	}
	return &Port{fd: fd, path: path}, nil
}

// ConfigureRaw puts the port into raw mode at the given baud: canonical
// processing and echo off, local mode and receiver on, VMIN=0, VTIME=2
// deciseconds. It may be called again with a different baud on failure.
func (p *Port) ConfigureRaw(baud int) error {
	t, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
	if err != nil {
		return err
	}

	spd, err := baudToUnix(baud)
	if err != nil {
		return err
	}

	t.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP | unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Cflag &^= unix.CSIZE | unix.PARENB
	t.Cflag |= unix.CS8 | unix.CLOCAL | unix.CREAD

	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = readTimeoutDeciseconds

	t.Cflag &^= unix.CBAUD
	t.Cflag |= spd
	t.Ispeed = spd
	t.Ospeed = spd

	return unix.IoctlSetTermios(p.fd, unix.TCSETS, t)
}

// Read performs one timed, possibly empty read from the port.
func (p *Port) Read(buf []byte) (int, error) {
	return unix.Read(p.fd, buf)
}

func (p *Port) Close() error {
	return unix.Close(p.fd)
}

func baudToUnix(baud int) (uint32, error) {
	switch baud {
	case 4800:
		return unix.B4800, nil
	case 9600:
		return unix.B9600, nil
	case 19200:
		return unix.B19200, nil
	case 38400:
		return unix.B38400, nil
	case 57600:
		return unix.B57600, nil
	case 115200:
		return unix.B115200, nil
	default:
		return 0, fmt.Errorf("unsupported baud %d", baud)
	}
}
