package brick

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/holoplot/go-evdev"
)

// BackButtonConfig configures the hardware back button watcher.
type BackButtonConfig struct {
	DevicePath string        // Input device to read, e.g. /dev/input/event1
	ButtonCode uint16        // Key code the button emits; 0 selects KEY_BACK
	CoolDown   time.Duration // Minimum gap between accepted presses
	OnBack     func()        // Invoked on the watcher goroutine for each press
}

// BackButtonWatcher reads a Linux input device and reports presses of one
// hardware key. The Brick's back button bypasses SDL's event queue on some
// firmware builds, so it is read straight from evdev, the same way the
// firmware's own menus do.
//
// OnBack runs on the watcher goroutine. Navigation is single-threaded, so
// handlers should forward to the main loop rather than calling
// Router.Navigate directly.
type BackButtonWatcher struct {
	config BackButtonConfig
	device *evdev.InputDevice
	done   chan struct{}
}

// WatchBackButton opens the input device and starts the watcher goroutine.
func WatchBackButton(config BackButtonConfig) (*BackButtonWatcher, error) {
	if config.OnBack == nil {
		return nil, fmt.Errorf("brick: back button watcher requires an OnBack callback")
	}
	if config.ButtonCode == 0 {
		config.ButtonCode = uint16(evdev.KEY_BACK)
	}

	device, err := evdev.Open(config.DevicePath)
	if err != nil {
		return nil, fmt.Errorf("brick: open input device %s: %w", config.DevicePath, err)
	}

	w := &BackButtonWatcher{
		config: config,
		device: device,
		done:   make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *BackButtonWatcher) watch() {
	defer close(w.done)

	log := internal.GetInternalLogger()
	log.Debug("watching back button", "device", w.config.DevicePath, "code", w.config.ButtonCode)

	var lastPress time.Time
	for {
		event, err := w.device.ReadOne()
		if err != nil {
			// Device closed by Stop, or unplugged.
			log.Debug("back button watcher stopped", "error", err)
			return
		}
		if event.Type != evdev.EV_KEY || event.Code != evdev.EvCode(w.config.ButtonCode) || event.Value != 1 {
			continue
		}
		if w.config.CoolDown > 0 && time.Since(lastPress) < w.config.CoolDown {
			continue
		}
		lastPress = time.Now()
		w.config.OnBack()
	}
}

// Stop closes the input device and waits for the watcher goroutine to
// exit. Safe to call once.
func (w *BackButtonWatcher) Stop() {
	w.device.Close()
	<-w.done
}
