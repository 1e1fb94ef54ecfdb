package bot

// Callback is an inline-button press. Data carries the chosen item name.
type Callback struct {
	ID        string
	Data      string
	ChatID    int64
	MessageID int
}

// Update is the transport-neutral view of one incoming chat event. The
// webhook layer converts Telegram updates into this; tests build it directly.
type Update struct {
	UserID    int64
	ChatID    int64
	Username  string
	FirstName string

	Text    string
	Command string // without the leading slash, empty if not a command
	Args    []string

	PhotoFileID string // largest size of an attached photo
	Caption     string

	Callback *Callback
}
