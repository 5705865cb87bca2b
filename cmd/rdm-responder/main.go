// Command rdm-responder runs a single ANSI E1.20 RDM responder against a
// serial EIA-485 line: it loads a device definition, opens the serial
// port, and wires the protocol core, the indicator GPIOs, and the
// transaction log together into one process.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/openlighting/rdmresponder/indicator"
	"github.com/openlighting/rdmresponder/rdm"
	"github.com/openlighting/rdmresponder/transport/serial"
	"github.com/openlighting/rdmresponder/txlog"
)

var errInvalidUID = errors.New("uid must be in MMMM:DDDDDDDD hex form")

// tickInterval approximates the coarse timer's ~100us hardware tick
// closely enough for a software responder; Tasks only needs millisecond
// resolution for its indicator blink periods.
const tickInterval = 100 * time.Microsecond

func main() {
	var (
		device       = pflag.StringP("device", "d", "/dev/ttyUSB0", "serial device the RDM line is attached to")
		usbID        = pflag.String("usb-id", "", "vendor:product USB ID to auto-discover via udev instead of --device")
		baud         = pflag.IntP("baud", "b", 250000, "serial baud rate")
		uidFlag      = pflag.String("uid", "7A70:00000001", "responder UID, MMMM:DDDDDDDD hex")
		configPath   = pflag.StringP("config", "c", "", "path to a responder definition YAML file (required)")
		logDir       = pflag.String("log-dir", "", "directory for daily transaction logs; empty disables logging")
		identifyChip = pflag.String("identify-gpio-chip", "", "gpiochip device for the identify indicator, e.g. gpiochip0")
		identifyLine = pflag.Int("identify-gpio-line", -1, "line offset on identify-gpio-chip")
		muteChip     = pflag.String("mute-gpio-chip", "", "gpiochip device for the mute indicator")
		muteLine     = pflag.Int("mute-gpio-line", -1, "line offset on mute-gpio-chip")
		verbose      = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if *configPath == "" {
		logger.Fatal("missing required flag", "flag", "--config")
	}

	uid, err := parseUID(*uidFlag)
	if err != nil {
		logger.Fatal("invalid --uid", "err", err)
	}

	data, err := os.ReadFile(*configPath)
	if err != nil {
		logger.Fatal("reading responder definition", "path", *configPath, "err", err)
	}

	counters := &serial.Counters{}
	def, err := rdm.LoadDefinition(data, counters, nil)
	if err != nil {
		logger.Fatal("parsing responder definition", "path", *configPath, "err", err)
	}

	var identifyPort, mutePort rdm.IndicatorPort
	if *identifyChip != "" && *identifyLine >= 0 {
		identifyPort = indicator.NewLine(*identifyChip, *identifyLine, false)
	}
	if *muteChip != "" && *muteLine >= 0 {
		mutePort = indicator.NewLine(*muteChip, *muteLine, false)
	}

	clock := &rdm.CoarseClock{}
	responder := &rdm.Responder{Def: def}
	responder.Initialize(clock, rdm.Settings{
		UID:          uid,
		IdentifyPort: identifyPort,
		MutePort:     mutePort,
	})

	dispatcher := rdm.NewDispatcher(responder)

	if *usbID != "" {
		node, err := discoverSerialDevice(*usbID)
		if err != nil {
			logger.Fatal("udev discovery failed", "usb-id", *usbID, "err", err)
		}
		*device = node
	}

	port, err := serial.Open(*device, *baud)
	if err != nil {
		logger.Fatal("opening serial port", "device", *device, "err", err)
	}
	defer port.Close()

	transceiver := serial.NewTransceiver(port, counters)
	defer transceiver.Close()

	txLog, err := txlog.Open(*logDir)
	if err != nil {
		logger.Fatal("opening transaction log", "dir", *logDir, "err", err)
	}
	defer txLog.Close()

	logger.Info("rdm-responder starting", "device", *device, "baud", *baud, "uid", uid.String())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			clock.Tick()
			responder.Tasks()
		}
	}()

	onTransaction := func(header rdm.Header, wantTransmit bool, reply []byte) {
		if !wantTransmit {
			return
		}
		rec := txlog.Record{
			Time:         time.Now(),
			Src:          header.SrcUID,
			Dest:         header.DestUID,
			SubDevice:    header.SubDevice,
			CommandClass: header.CommandClass,
			ParamID:      header.ParamID,
			PDL:          header.ParamDataLength,
		}
		// A DISC_UNIQUE_BRANCH reply is the raw, header-free DUB frame
		// and has no response-type byte to read. DISC_MUTE/DISC_UN_MUTE
		// replies are normal framed ACKs/NACKs, like everything else.
		if header.ParamID != rdm.PIDDiscUniqueBranch && len(reply) > 16 {
			rec.Response = rdm.ResponseType(reply[16])
			if rec.Response == rdm.ResponseNackReason && len(reply) >= rdm.HeaderSize+2 {
				rec.Nacked = true
				rec.NackReason = rdm.NackReason(rdm.ExtractUint16(reply[rdm.HeaderSize : rdm.HeaderSize+2]))
			}
		}
		if err := txLog.Write(rec); err != nil {
			logger.Warn("transaction log write failed", "err", err)
		}
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- transceiver.Serve(dispatcher, onTransaction)
	}()

	select {
	case <-stop:
		logger.Info("shutting down")
	case err := <-serveErr:
		logger.Error("transceiver stopped", "err", err)
	}
}

func parseUID(s string) (rdm.UID, error) {
	var u rdm.UID
	var mfr uint16
	var dev uint32
	n, err := fmt.Sscanf(s, "%04X:%08X", &mfr, &dev)
	if err != nil || n != 2 {
		return u, errInvalidUID
	}
	u[0], u[1] = byte(mfr>>8), byte(mfr)
	u[2], u[3], u[4], u[5] = byte(dev>>24), byte(dev>>16), byte(dev>>8), byte(dev)
	return u, nil
}
