package serial

import "sync/atomic"

// Counters tallies the receive-side errors a Transceiver filters out
// before a frame ever reaches the dispatcher. It implements
// rdm.ReceiverCounters so a Responder's COMMS_STATUS handler can read
// the same counters the transceiver increments.
type Counters struct {
	shortFrame      atomic.Uint32
	lengthMismatch  atomic.Uint32
	checksumInvalid atomic.Uint32
}

// RecordShortFrame counts a frame abandoned part-way through collection
// because reading from the port failed.
func (c *Counters) RecordShortFrame() { c.shortFrame.Add(1) }

// RecordLengthMismatch counts a frame whose message_length byte was
// unusable (too small to hold a header, or larger than this transport's
// maximum frame size), or disagreed with the header's own PDL field.
func (c *Counters) RecordLengthMismatch() { c.lengthMismatch.Add(1) }

// RecordChecksumInvalid counts a fully-collected frame whose trailing
// checksum did not match its contents.
func (c *Counters) RecordChecksumInvalid() { c.checksumInvalid.Add(1) }

// RDMShortFrame returns the running total, saturated at uint16 max.
func (c *Counters) RDMShortFrame() uint16 { return saturate(c.shortFrame.Load()) }

// RDMLengthMismatch returns the running total, saturated at uint16 max.
func (c *Counters) RDMLengthMismatch() uint16 { return saturate(c.lengthMismatch.Load()) }

// RDMChecksumInvalid returns the running total, saturated at uint16 max.
func (c *Counters) RDMChecksumInvalid() uint16 { return saturate(c.checksumInvalid.Load()) }

// ResetCommsStatus zeroes all three counters (COMMS_STATUS SET).
func (c *Counters) ResetCommsStatus() {
	c.shortFrame.Store(0)
	c.lengthMismatch.Store(0)
	c.checksumInvalid.Store(0)
}

func saturate(v uint32) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
