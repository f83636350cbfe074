package greeninvoice

import (
	"net/url"
	"regexp"
)

const (
	clientsPath   = "/v1/clients"
	documentsPath = "/v1/documents"
)

var (
	clientIDPattern   = regexp.MustCompile(`/v1/clients/([^/?#]+)`)
	documentIDPattern = regexp.MustCompile(`/v1/documents/([^/?#]+)`)
)

func clientPath(clientID string) string {
	return clientsPath + "/" + url.PathEscape(clientID)
}

func documentPath(documentID string) string {
	return documentsPath + "/" + url.PathEscape(documentID)
}

// ClientIDFromPath extracts the client id from an API path or URL such as
// https://api.greeninvoice.co.il/api/v1/clients/<id>. "search" is not an id.
func ClientIDFromPath(path string) (string, bool) {
	return idFromPath(clientIDPattern, path)
}

// DocumentIDFromPath extracts the document id from an API path or URL.
func DocumentIDFromPath(path string) (string, bool) {
	return idFromPath(documentIDPattern, path)
}

func idFromPath(re *regexp.Regexp, path string) (string, bool) {
	m := re.FindStringSubmatch(path)
	if m == nil || m[1] == "search" {
		return "", false
	}
	id, err := url.PathUnescape(m[1])
	if err != nil {
		return "", false
	}
	return id, true
}
