package protocol

// MessageType is the severity of a window/showMessage notification
type MessageType int

const (
	ErrorMessage   MessageType = 1
	WarningMessage MessageType = 2
	InfoMessage    MessageType = 3
	LogMessage     MessageType = 4
)

// ShowMessageParams represents the parameters of window/showMessage
type ShowMessageParams struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message"`
}
