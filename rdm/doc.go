// Package rdm implements the protocol core of an ANSI E1.20 Remote Device
// Management responder: request classification, the PID handler table, the
// mutable responder state, and the Discovery-Unique-Branch matcher.
//
// The package assumes a framed, checksum-validated request has already been
// handed to it by a transceiver (see the transport/serial package for one
// such transceiver) and never performs I/O itself.
package rdm
