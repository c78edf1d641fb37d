package email

// Message is a plain outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider delivers outbound email. Implementations must be safe for
// concurrent use; callers treat delivery as fire-and-forget.
type Provider interface {
	Send(msg *Message) error
}
