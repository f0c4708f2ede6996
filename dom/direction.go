package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/bidi"

	"github.com/Alp4ka/pagebar"
)

// ElementDirection resolves the text direction of n the way the dir
// attribute is inherited: the nearest ancestor-or-self with dir="ltr" or
// dir="rtl" wins; dir="auto" takes the direction of the first strong
// character of the element's text. Anything else is left-to-right.
func ElementDirection(n *html.Node) pagebar.TextDirection {
	for p := n; p != nil; p = p.Parent {
		v, ok := attr(p, "dir")
		if !ok {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(v)) {
		case "ltr":
			return pagebar.DirectionLTR
		case "rtl":
			return pagebar.DirectionRTL
		case "auto":
			if dir, found := autoDirection(p); found {
				return dir
			}
			return pagebar.DirectionLTR
		}
	}

	return pagebar.DirectionLTR
}

// autoDirection scans the text under n in document order. Text inside
// descendants that set their own dir, and inside script and style, is
// skipped.
func autoDirection(n *html.Node) (pagebar.TextDirection, bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if dir, found := FirstStrongDirection(c.Data); found {
				return dir, true
			}
		case html.ElementNode:
			if c.Data == "script" || c.Data == "style" {
				continue
			}
			if _, ok := attr(c, "dir"); ok {
				continue
			}
			if dir, found := autoDirection(c); found {
				return dir, true
			}
		}
	}

	return "", false
}

// FirstStrongDirection returns the direction of the first strong bidi
// character of s (class L, R or AL).
func FirstStrongDirection(s string) (pagebar.TextDirection, bool) {
	for len(s) > 0 {
		props, size := bidi.LookupString(s)
		if size == 0 {
			size = 1
		}

		switch props.Class() {
		case bidi.L:
			return pagebar.DirectionLTR, true
		case bidi.R, bidi.AL:
			return pagebar.DirectionRTL, true
		}

		s = s[size:]
	}

	return "", false
}
