package model

// NoticeLevel grades a user-facing notification.
type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is the user-facing outcome text returned with every mutating operation.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Info builds an informational notice.
func Info(message string) Notice { return Notice{Level: NoticeInfo, Message: message} }

// Warning builds a warning notice.
func Warning(message string) Notice { return Notice{Level: NoticeWarning, Message: message} }
