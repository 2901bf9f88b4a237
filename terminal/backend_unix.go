//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type unixBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	oldTerm *term.State

	resizeStopCh chan struct{}
	resizeDoneCh chan struct{}
}

func newBackend() Backend {
	return &unixBackend{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (b *unixBackend) Init() error {
	if !term.IsTerminal(b.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(b.inFd)
	if err != nil {
		return err
	}
	b.oldTerm = old
	return nil
}

func (b *unixBackend) Fini() {
	if b.resizeStopCh != nil {
		close(b.resizeStopCh)
		<-b.resizeDoneCh
		b.resizeStopCh = nil
	}
	if b.oldTerm != nil {
		term.Restore(b.inFd, b.oldTerm)
	}
}

func (b *unixBackend) Size() (int, int) {
	return getTerminalSize(b.outFd)
}

func (b *unixBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

// Read polls the input fd up to timeout, then reads whatever is available
func (b *unixBackend) Read(buf []byte, timeout time.Duration) (int, error) {
	ms := int(timeout / time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	fds := []unix.PollFd{
		{Fd: int32(b.inFd), Events: unix.POLLIN},
	}

	for {
		fds[0].Revents = 0
		n, err := unix.Poll(fds, ms)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return 0, err
		}
		if n == 0 {
			return 0, nil // Timeout
		}

		rn, err := unix.Read(b.inFd, buf)
		if err != nil {
			if err == unix.EINTR || err == unix.EAGAIN {
				continue
			}
			return 0, err
		}
		if rn == 0 {
			return 0, io.EOF
		}
		return rn, nil
	}
}

func (b *unixBackend) SetResizeHandler(handler func(width, height int)) {
	b.resizeStopCh = make(chan struct{})
	b.resizeDoneCh = make(chan struct{})

	go func() {
		defer close(b.resizeDoneCh)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGWINCH)
		defer signal.Stop(sigCh)

		for {
			select {
			case <-b.resizeStopCh:
				return
			case <-sigCh:
				w, h := b.Size()
				handler(w, h)
			}
		}
	}()
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 80, 24 // Fallback
	}
	return int(ws.Col), int(ws.Row)
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		// Get current termios, enable ECHO and ICANON
		if termios, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, unix.TCSETS, termios)
		}
	}
}
