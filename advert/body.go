package advert

import (
	"mime"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/charset"
)

// decodeBody turns the source body into text. A charset declared in the content
// type is honoured; otherwise the body must be valid UTF-8 or it decodes to "".
func decodeBody(body []byte, contentType string) string {
	if label := declaredCharset(contentType); label != "" {
		if enc, _ := charset.Lookup(label); enc != nil {
			if decoded, err := enc.NewDecoder().Bytes(body); err == nil {
				return string(decoded)
			}
			return ""
		}
	}

	if !utf8.Valid(body) {
		return ""
	}
	return string(body)
}

func declaredCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(params["charset"])
}

// containsKeyword is the relevance test. An empty keyword never matches.
func containsKeyword(body, keyword string) bool {
	return keyword != "" && strings.Contains(body, keyword)
}

func buildTrackingLink(body string, req FetchRequest) string {
	return body + "?idfa=" + req.IDFA + "&gaid=" + req.AppID + req.ExtraInfo
}
