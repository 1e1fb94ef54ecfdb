package bot

// SendOpts controls formatting and reply-keyboard handling of an outgoing
// message.
type SendOpts struct {
	HTML           bool
	Keyboard       [][]string // reply keyboard rows
	Resize         bool
	RemoveKeyboard bool
	Silent         bool // disable the notification sound
}

// Messenger is the outbound half of the chat transport plus photo retrieval.
// All calls are synchronous; a transient failure is logged by the caller and
// the request abandoned, with no retry.
type Messenger interface {
	SendText(chatID int64, text string, opts SendOpts) error
	SendPhoto(chatID int64, photo []byte, caption string, opts SendOpts) error
	// SendInline sends text with one inline button per label, the label
	// doubling as the callback payload, laid out in cols columns.
	SendInline(chatID int64, text string, labels []string, cols int) error
	EditText(chatID int64, messageID int, text string) error
	AnswerCallback(id string) error
	SendTyping(chatID int64) error
	FetchPhoto(fileID string) ([]byte, error)
}
