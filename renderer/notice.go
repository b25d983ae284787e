package renderer

// NoticeKind is the severity of a notification.
type NoticeKind int

const (
	Info NoticeKind = iota
	Success
	Error
)

func (k NoticeKind) String() string {
	switch k {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Color returns the background color of the notification.
func (k NoticeKind) Color() string {
	switch k {
	case Success:
		return "#2ecc71"
	case Error:
		return "#e74c3c"
	default:
		return "#3498db"
	}
}

// Icon returns the icon name of the notification.
func (k NoticeKind) Icon() string {
	switch k {
	case Success:
		return "check-circle"
	case Error:
		return "exclamation-circle"
	default:
		return "info-circle"
	}
}

// Notice is a transient notification.
type Notice struct {
	ID      int
	Kind    NoticeKind
	Message string
}
