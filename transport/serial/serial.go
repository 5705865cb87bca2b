// Package serial implements the EIA-485 serial transceiver: it frames
// and deframes RDM requests the way a UART ISR and byte-at-a-time frame
// collector would, hunting for the start code and sub-start code, then
// collecting exactly the number of bytes message_length plus the
// checksum promise, rather than relying on any escape sequence or
// out-of-band delimiter.
package serial

import (
	"fmt"
	"io"

	"github.com/pkg/term"

	"github.com/openlighting/rdmresponder/rdm"
)

// collectState tracks whether ReadFrame is hunting for a frame start or
// mid-collection.
type collectState int

const (
	stateSearching collectState = iota
	stateCollecting
)

const maxFrameLen = 257 // HeaderSize(24) + max PDL(231) + checksum(2)

// Port is the minimal byte-oriented transport a Transceiver drives. It is
// satisfied by *term.Term, and by anything else tests want to substitute
// (a *os.File from a pty pair, for instance).
type Port interface {
	io.ReadWriter
	SetSpeed(baud int) error
	Close() error
}

// Open opens devicename at baud (0 leaves the current speed alone).
// Any other unsupported speed falls back to RDM's standard 250000 baud
// rather than failing outright.
func Open(devicename string, baud int) (*term.Term, error) {
	t, err := term.Open(devicename, term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", devicename, err)
	}
	switch baud {
	case 0:
	case 9600, 19200, 38400, 57600, 115200, 250000:
		if err := t.SetSpeed(baud); err != nil {
			_ = t.Close()
			return nil, fmt.Errorf("serial: set speed %d: %w", baud, err)
		}
	default:
		_ = t.SetSpeed(250000)
	}
	return t, nil
}

// Transceiver collects RDM frames off a Port, validates their checksum,
// and dispatches well-formed ones to a Dispatcher, writing back whatever
// reply it produces. It is the only place in this module that re-derives
// a checksum for a frame already built, since a request's checksum must
// be verified on the wire before any of the decoded fields can be
// trusted.
type Transceiver struct {
	port     Port
	counters *Counters

	state   collectState
	buf     [maxFrameLen]byte
	length  int
	wantLen int
}

// NewTransceiver wraps port. counters may be nil, in which case a private
// Counters is allocated (still readable via Transceiver.CountersView for
// wiring into a Responder's COMMS_STATUS handler).
func NewTransceiver(port Port, counters *Counters) *Transceiver {
	if counters == nil {
		counters = &Counters{}
	}
	return &Transceiver{port: port, counters: counters}
}

// CountersView returns the rdm.ReceiverCounters this transceiver feeds,
// for wiring into StandardDescriptors.
func (t *Transceiver) CountersView() *Counters {
	return t.counters
}

// Close releases the underlying port.
func (t *Transceiver) Close() error {
	return t.port.Close()
}

// ReadFrame blocks until one well-formed, checksum-valid RDM request
// frame has been collected, returning its bytes (header through the
// final PDL byte, checksum stripped). Malformed frames increment the
// appropriate counter and are discarded silently, matching the
// reference firmware's ISR-level framing, which has no way to report a
// framing error back to the controller.
func (t *Transceiver) ReadFrame() ([]byte, error) {
	one := make([]byte, 1)
	for {
		n, err := t.port.Read(one)
		if err != nil {
			if t.state == stateCollecting {
				t.counters.RecordShortFrame()
				t.resetFrame()
			}
			return nil, err
		}
		if n == 0 {
			continue
		}
		b := one[0]

		switch t.state {
		case stateSearching:
			if b != rdm.StartCode {
				continue
			}
			t.buf[0] = b
			t.length = 1
			t.state = stateCollecting
			t.wantLen = 0

		case stateCollecting:
			t.buf[t.length] = b
			t.length++

			switch {
			case t.length == 2 && b != rdm.SubStartCode:
				t.resetFrame()
				continue
			case t.length == 3:
				// b is message_length: header + PDL, checksum not
				// included.
				t.wantLen = int(b) + rdm.ChecksumSize
				if t.wantLen > maxFrameLen || int(b) < rdm.HeaderSize {
					t.counters.RecordLengthMismatch()
					t.resetFrame()
					continue
				}
			case t.wantLen > 0 && t.length == t.wantLen:
				frame := append([]byte(nil), t.buf[:t.length]...)
				t.resetFrame()
				if !rdm.VerifyChecksum(frame) {
					t.counters.RecordChecksumInvalid()
					continue
				}
				return frame[:len(frame)-rdm.ChecksumSize], nil
			}
		}
	}
}

func (t *Transceiver) resetFrame() {
	t.state = stateSearching
	t.length = 0
	t.wantLen = 0
}

// WriteFrame writes a complete, already-checksummed reply frame. A short
// write (fewer bytes written than supplied) is reported as an error.
func (t *Transceiver) WriteFrame(frame []byte) error {
	if len(frame) == 0 {
		return nil
	}
	n, err := t.port.Write(frame)
	if err != nil {
		return fmt.Errorf("serial: write: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("serial: short write: wrote %d of %d bytes", n, len(frame))
	}
	return nil
}

// TransactionFunc, when passed to Serve as non-nil, is called after every
// dispatched request (even ones that produced no reply), before the
// reply is written to the wire. wantTransmit reports whether a reply
// will be transmitted; reply is that reply's bytes (nil when
// wantTransmit is false). A DISC_UNIQUE_BRANCH reply is raw and has no
// response-type byte, so callers must check header.ParamID before
// reading reply[16]; DISC_MUTE/DISC_UN_MUTE replies are normally framed.
type TransactionFunc func(header rdm.Header, wantTransmit bool, reply []byte)

// Serve runs the receive/dispatch/transmit loop until ReadFrame returns
// an error (typically because the port was closed). n<0 replies (DUB)
// and n>0 replies (everything else) are both just byte slices by the
// time they reach WriteFrame.
func (t *Transceiver) Serve(dispatcher *rdm.Dispatcher, onTransaction TransactionFunc) error {
	for {
		frame, err := t.ReadFrame()
		if err != nil {
			return err
		}

		header := rdm.DecodeHeader(frame)
		paramData := frame[rdm.HeaderSize:]
		if len(paramData) != int(header.ParamDataLength) {
			// message_length (which framed this request) and the
			// header's own PDL field disagree on how much parameter
			// data follows. Trusting the larger of the two would let
			// a handler index past what was actually received, so
			// the frame is treated as malformed and dropped.
			t.counters.RecordLengthMismatch()
			continue
		}

		reply, n := dispatcher.HandleRequest(header, paramData)
		wantTransmit := n != rdm.NoResponse
		length := n
		if length < 0 {
			length = -length
		}
		if onTransaction != nil {
			var sent []byte
			if wantTransmit {
				sent = reply[:length]
			}
			onTransaction(header, wantTransmit, sent)
		}
		if !wantTransmit {
			continue
		}
		if err := t.WriteFrame(reply[:length]); err != nil {
			return err
		}
	}
}
