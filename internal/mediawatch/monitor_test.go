package mediawatch

import (
	"context"
	"testing"

	"github.com/pilebones/go-udev/netlink"
)

func TestNew(t *testing.T) {
	t.Run("empty device returns nil", func(t *testing.T) {
		if m := New("  ", nil, nil); m != nil {
			t.Error("expected nil monitor for empty device")
		}
	})

	t.Run("device is trimmed", func(t *testing.T) {
		m := New(" /dev/sr0 ", nil, nil)
		if m == nil {
			t.Fatal("expected non-nil monitor")
		}
		if m.device != "/dev/sr0" {
			t.Errorf("expected device /dev/sr0, got %s", m.device)
		}
	})
}

func TestNilAndUnstartedMonitorAreSafe(t *testing.T) {
	var m *Monitor
	if m.Running() {
		t.Error("nil monitor reports running")
	}
	m.Stop()
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start on nil monitor: %v", err)
	}

	unstarted := New("/dev/sr0", nil, nil)
	unstarted.Stop()
	unstarted.Stop()
	if unstarted.Running() {
		t.Error("unstarted monitor reports running")
	}
}

func TestHandleEventFiltersDevice(t *testing.T) {
	var got []Event
	m := New("/dev/sr0", nil, func(_ context.Context, e Event) {
		got = append(got, e)
	})

	events := []netlink.UEvent{
		{Action: netlink.CHANGE, Env: map[string]string{"DEVNAME": "/dev/sr1", "ID_CDROM_MEDIA": "1"}},
		{Action: netlink.CHANGE, Env: map[string]string{}},
		{Action: netlink.CHANGE, Env: map[string]string{"DEVNAME": "sr0", "ID_CDROM_MEDIA": "1"}},
		{Action: netlink.CHANGE, Env: map[string]string{"DEVPATH": "/devices/pci0000:00/ata2/host1/block/sr0"}},
	}
	for _, e := range events {
		m.handleEvent(context.Background(), e)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 events for /dev/sr0, got %d: %+v", len(got), got)
	}
	if !got[0].Media || got[0].Action != "change" || got[0].Device != "/dev/sr0" {
		t.Errorf("unexpected first event: %+v", got[0])
	}
	if got[1].Media {
		t.Errorf("second event should report no media: %+v", got[1])
	}
}

func TestDeviceName(t *testing.T) {
	tests := []struct {
		env  map[string]string
		want string
	}{
		{map[string]string{"DEVNAME": "/dev/sr0"}, "/dev/sr0"},
		{map[string]string{"DEVNAME": "sr1"}, "/dev/sr1"},
		{map[string]string{"DEVPATH": "/devices/virtual/block/sr2"}, "/dev/sr2"},
		{map[string]string{"DEVPATH": "/devices/virtual/block/"}, ""},
		{map[string]string{}, ""},
	}
	for _, tt := range tests {
		if got := deviceName(netlink.UEvent{Env: tt.env}); got != tt.want {
			t.Errorf("deviceName(%v) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestBuildMatcher(t *testing.T) {
	matcher := buildMatcher()
	media := netlink.UEvent{
		Action: netlink.CHANGE,
		Env:    map[string]string{"SUBSYSTEM": "block", "ID_CDROM": "1"},
	}
	if !matcher.Evaluate(media) {
		t.Error("expected optical change event to match")
	}
	disk := netlink.UEvent{
		Action: netlink.ADD,
		Env:    map[string]string{"SUBSYSTEM": "block", "ID_CDROM": "0"},
	}
	if matcher.Evaluate(disk) {
		t.Error("expected non-optical block event to be filtered")
	}
	eject := netlink.UEvent{
		Action: netlink.REMOVE,
		Env:    map[string]string{"SUBSYSTEM": "block", "ID_CDROM": "1"},
	}
	if !matcher.Evaluate(eject) {
		t.Error("expected optical remove event to match")
	}
}
