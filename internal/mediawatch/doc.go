// Package mediawatch listens for udev media-change events on an optical drive.
//
// The kernel emits a block-subsystem uevent whenever a disc is inserted,
// removed or the tray moves. Monitor filters those events down to the
// configured device and hands them to a callback, so callers can re-query
// drive state immediately instead of waiting for the next poll. When the
// netlink socket cannot be opened the monitor stays stopped and callers fall
// back to polling.
package mediawatch
