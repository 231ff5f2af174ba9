package mediawatch

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"cdplay/internal/logging"
)

// Event is a filtered media-change notification.
type Event struct {
	Device string
	Action string
	// Media reports whether udev saw a disc in the drive (ID_CDROM_MEDIA=1).
	Media bool
}

// Handler receives events for the watched device.
type Handler func(ctx context.Context, event Event)

// Monitor listens for udev netlink events for one device.
type Monitor struct {
	logger  *slog.Logger
	handler Handler
	device  string

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// New creates a monitor for device. It returns nil when device is empty;
// a nil Monitor is safe to Start and Stop.
func New(device string, logger *slog.Logger, handler Handler) *Monitor {
	device = strings.TrimSpace(device)
	if device == "" {
		return nil
	}
	return &Monitor{
		logger:  logging.NewComponentLogger(logger, "media-watch"),
		handler: handler,
		device:  device,
	}
}

// Start begins listening for udev netlink events. Failing to open the netlink
// socket is logged and leaves the monitor stopped; it is not an error.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		logging.WarnWithContext(m.logger, "failed to connect to netlink socket; falling back to polling",
			"netlink_connect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "ensure the process may open NETLINK_KOBJECT_UEVENT sockets"),
			logging.String(logging.FieldImpact, "media changes are only noticed on the next poll"),
		)
		return nil
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, conn, quit)

	m.logger.Info("media watch started",
		logging.String(logging.FieldEventType, "media_watch_started"),
		logging.String(logging.FieldDevice, m.device),
	)
	return nil
}

// Stop shuts down the monitor.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("media watch stopped",
		logging.String(logging.FieldEventType, "media_watch_stopped"),
	)
}

// Running reports whether the monitor is receiving events.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(ctx, uevent)
		case err := <-errs:
			logging.WarnWithContext(m.logger, "netlink monitor error", "netlink_monitor_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "media changes may be missed until the next poll"),
			)
		}
	}
}

// buildMatcher matches block-device uevents from optical drives:
// SUBSYSTEM=block, ID_CDROM=1, ACTION=change|add|remove.
func buildMatcher() netlink.Matcher {
	action := "change|add|remove"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM": "block",
			"ID_CDROM":  "1",
		},
	})
	return rules
}

func (m *Monitor) handleEvent(ctx context.Context, uevent netlink.UEvent) {
	devname := deviceName(uevent)
	if devname == "" {
		m.logger.Debug("ignoring event without device name",
			logging.String("action", string(uevent.Action)),
			logging.String("kobj", uevent.KObj),
		)
		return
	}
	if devname != m.device {
		m.logger.Debug("ignoring event for other device",
			logging.String(logging.FieldDevice, devname),
			logging.String("watched_device", m.device),
		)
		return
	}

	event := Event{
		Device: devname,
		Action: string(uevent.Action),
		Media:  uevent.Env["ID_CDROM_MEDIA"] == "1",
	}
	m.logger.Debug("media change event",
		logging.String(logging.FieldDevice, devname),
		logging.String("action", event.Action),
		logging.Bool("media", event.Media),
	)
	if m.handler != nil {
		m.handler(ctx, event)
	}
}

// deviceName gets the device path from a uevent, falling back to the last
// DEVPATH element (e.g. /devices/pci.../block/sr0 -> /dev/sr0).
func deviceName(uevent netlink.UEvent) string {
	if devname := uevent.Env["DEVNAME"]; devname != "" {
		if !strings.HasPrefix(devname, "/") {
			devname = "/dev/" + devname
		}
		return devname
	}
	devpath := uevent.Env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return ""
	}
	return "/dev/" + last
}
