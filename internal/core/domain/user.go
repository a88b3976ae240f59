package domain

// User is the authenticated principal. A record is created by login/signup
// (overlaying the seed template with the supplied name/email), persisted in
// the session store, and destroyed by logout. PasswordHash holds the argon2id
// hash of the password supplied at login/signup; it exists so the stored
// record never contains plaintext and to back the change-password check —
// login itself performs no credential verification in this demo.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Avatar        string `json:"avatar"`
	Phone         string `json:"phone"`
	AccountNumber string `json:"account_number"` // masked
	MemberSince   string `json:"member_since"`
	PasswordHash  string `json:"password_hash,omitempty"`
}

// Notification is an informational banner for the user. Notifications are
// seed data; only the Read flag ever changes, on explicit acknowledgement.
type Notification struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	TimeAgo  string `json:"time_ago"`
	Read     bool   `json:"read"`
	Category string `json:"category"`
}
