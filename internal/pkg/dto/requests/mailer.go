package requests

// Notification is one office email, ready for any transport. It is also the
// message body published to the notification queue.
type Notification struct {
	ID        string   `json:"id"`
	FormType  string   `json:"form_type"`
	Subject   string   `json:"subject"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	ReplyTo   string   `json:"reply_to,omitempty"`
	HTMLBody  string   `json:"html_body"`
	TextBody  string   `json:"text_body"`
	CreatedAt string   `json:"created_at"`
}
