package main

import (
	"fmt"

	"github.com/jochenvg/go-udev"
)

// discoverSerialDevice scans udev for tty devices whose USB parent has
// the given vendor:product ID pair (e.g. an FTDI or CP210x EIA-485
// adapter) and returns the /dev node of the first match. It is used
// whenever --usb-id is supplied, in place of --device, so a responder can
// be plugged into any USB port without the operator hunting for ttyUSBn.
func discoverSerialDevice(usbID string) (string, error) {
	u := udev.Udev{}
	enumerate := u.NewEnumerate()
	if err := enumerate.AddMatchSubsystem("tty"); err != nil {
		return "", fmt.Errorf("discover: match subsystem: %w", err)
	}

	devices, err := enumerate.Devices()
	if err != nil {
		return "", fmt.Errorf("discover: enumerate: %w", err)
	}

	for _, d := range devices {
		parent := d.ParentWithSubsystemDevtype("usb", "usb_device")
		if parent == nil {
			continue
		}
		vendor := parent.PropertyValue("ID_VENDOR_ID")
		product := parent.PropertyValue("ID_MODEL_ID")
		if fmt.Sprintf("%s:%s", vendor, product) == usbID {
			if node := d.Devnode(); node != "" {
				return node, nil
			}
		}
	}
	return "", fmt.Errorf("discover: no tty device matching usb id %s", usbID)
}
