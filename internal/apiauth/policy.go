package apiauth

// Policy states what a route requires beyond a valid client signature
type Policy int

const (
	// PolicyClient requires only the client signature (login, registration, refresh)
	PolicyClient Policy = iota + 1
	// PolicyUser also requires a valid access token issued to the signing client
	PolicyUser
)

// RequiresUser reports whether an access token is needed. Unknown values
// are treated as PolicyUser.
func (p Policy) RequiresUser() bool {
	return p != PolicyClient
}

func (p Policy) String() string {
	switch p {
	case PolicyClient:
		return "client"
	case PolicyUser:
		return "user"
	default:
		return "unknown"
	}
}
