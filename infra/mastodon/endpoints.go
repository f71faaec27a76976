package mastodon

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/CrestNiraj12/tootview/domain"
)

// Operation names, used as endpoint keys, log attributes and error prefixes.
const (
	opFetchHome            = "fetchHome"
	opFetchLocal           = "fetchLocal"
	opFetchGlobal          = "fetchGlobal"
	opFetchAccountStatuses = "fetchAccountStatuses"
	opAddReaction          = "addReaction"
	opRemoveReaction       = "removeReaction"
)

// endpoint binds an operation to its HTTP method, path template and any
// query parameters the operation fixes regardless of caller input.
type endpoint struct {
	method string
	path   string // "{name}" segments are filled by expand
	fixed  url.Values
}

var endpoints = map[string]endpoint{
	opFetchHome: {
		method: http.MethodGet,
		path:   "/api/v1/timelines/home",
	},
	opFetchLocal: {
		method: http.MethodGet,
		path:   "/api/v1/timelines/public",
		fixed:  url.Values{"local": {"true"}},
	},
	opFetchGlobal: {
		method: http.MethodGet,
		path:   "/api/v1/timelines/public",
		fixed:  url.Values{"local": {"false"}},
	},
	opFetchAccountStatuses: {
		method: http.MethodGet,
		path:   "/api/v1/accounts/{id}/statuses",
	},
	opAddReaction: {
		method: http.MethodPut,
		path:   "/api/v1/statuses/{id}/emoji_reactions/{emoji}",
	},
	opRemoveReaction: {
		method: http.MethodDelete,
		path:   "/api/v1/statuses/{id}/emoji_reactions/{emoji}",
	},
}

// expand fills the path template. Values are opaque and escaped as given;
// only an empty value is rejected.
func (e endpoint) expand(params map[string]string) (string, error) {
	var b strings.Builder
	rest := e.path
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			return b.String(), nil
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("malformed path template %q", e.path)
		}
		name := rest[open+1 : open+end]
		val := params[name]
		if val == "" {
			return "", fmt.Errorf("empty %s: %w", name, domain.ErrInvalidArgument)
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(val))
		rest = rest[open+end+1:]
	}
}

// query merges caller parameters with the endpoint's fixed ones; fixed wins.
func (e endpoint) query(caller url.Values) url.Values {
	q := url.Values{}
	for k, v := range caller {
		q[k] = append([]string(nil), v...)
	}
	for k, v := range e.fixed {
		q[k] = append([]string(nil), v...)
	}
	return q
}
