package vtcore

// NotificationPayload carries one assembled OSC 99 desktop notification.
// Fields follow the kitty desktop-notifications protocol's key=value
// metadata plus the trailing payload bytes.
type NotificationPayload struct {
	// ID identifies the notification for later close/update requests.
	ID string
	// Done is true once the final chunk of a multi-part payload arrived.
	Done bool
	// PayloadType is "title", "body", or "?" for a capability query.
	PayloadType string
	// Encoding is "1" when Data is percent-escaped UTF-8 text, empty otherwise.
	Encoding string
	// Actions lists the button/action identifiers the notification offers.
	Actions []string
	// TrackClose requests a close event be reported back to the application.
	TrackClose bool
	// Timeout is the requested auto-dismiss delay in milliseconds, 0 for none.
	Timeout int
	// AppName identifies the originating application.
	AppName string
	// Type groups related notifications (e.g. "alert", "progress").
	Type string
	// IconName is a named icon from the system icon theme.
	IconName string
	// IconCacheID references a previously uploaded icon image.
	IconCacheID string
	// Sound names a sound to play, "" for the terminal default, "silent" for none.
	Sound string
	// Urgency is 0 (low), 1 (normal), or 2 (critical).
	Urgency int
	// Occasion controls when the notification is shown: "always",
	// "unfocused", or "invisible".
	Occasion string
	// Data is the raw payload bytes for this chunk (title or body text).
	Data []byte
}

// NotificationProvider handles desktop notification requests (OSC 99).
// Notify may return a response string to write back to the PTY, used for
// capability queries (PayloadType "?") and close-event reporting.
type NotificationProvider interface {
	Notify(payload *NotificationPayload) string
}

// NoopNotification discards all notifications and never responds.
type NoopNotification struct{}

func (NoopNotification) Notify(payload *NotificationPayload) string { return "" }

var _ NotificationProvider = NoopNotification{}

// DesktopNotification processes an assembled OSC 99 notification payload.
func (t *Terminal) DesktopNotification(payload *NotificationPayload) {
	if t.middleware != nil && t.middleware.DesktopNotification != nil {
		t.middleware.DesktopNotification(payload, t.desktopNotificationInternal)
		return
	}
	t.desktopNotificationInternal(payload)
}

func (t *Terminal) desktopNotificationInternal(payload *NotificationPayload) {
	t.mu.Lock()
	provider := t.notificationProvider
	writer := t.responseProvider
	t.mu.Unlock()

	if provider == nil {
		return
	}
	response := provider.Notify(payload)
	if response != "" && writer != nil {
		writer.Write([]byte(response))
	}
}

// SetNotificationProvider sets the desktop notification provider at runtime.
func (t *Terminal) SetNotificationProvider(p NotificationProvider) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.notificationProvider = p
}

// NotificationProvider returns the current desktop notification provider.
func (t *Terminal) NotificationProvider() NotificationProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.notificationProvider
}
