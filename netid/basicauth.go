package netid

import "encoding/base64"

// BasicAuth returns the HTTP Authorization header value for user and password.
func BasicAuth(user, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+password))
}
