// MIT License

// Copyright (c) 2023 wetrycode

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package apiresponse

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Expires the expiry attribute of a cookie, either a verbatim string or a point in time
type Expires struct {
	text string
	at   time.Time
}

// ExpiresAt an expiry rendered as an HTTP-date
func ExpiresAt(t time.Time) Expires {
	return Expires{at: t}
}

// ExpiresText an expiry passed through verbatim
func ExpiresText(text string) Expires {
	return Expires{text: text}
}

// IsZero reports whether no expiry was set
func (e Expires) IsZero() bool {
	return e.text == "" && e.at.IsZero()
}

func (e Expires) String() string {
	if !e.at.IsZero() {
		return e.at.UTC().Format(http.TimeFormat)
	}
	return e.text
}

func (e Expires) MarshalJSON() ([]byte, error) {
	if e.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(e.String())
}

func (e *Expires) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*e = Expires{}
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidExpires, string(data))
	}
	*e = ExpiresText(text)
	return nil
}

// CookieOptions the structured form of a cookie value
type CookieOptions struct {
	Value    string  `json:"value"`
	HttpOnly bool    `json:"httpOnly,omitempty"`
	Secure   bool    `json:"secure,omitempty"`
	Path     string  `json:"path,omitempty"`
	Expires  Expires `json:"expires"`
	Domain   string  `json:"domain,omitempty"`
}

// Cookie a single named cookie. Options is nil for plain cookies.
type Cookie struct {
	Name    string
	Value   string
	Options *CookieOptions
}

// HeaderValue render the cookie as a Set-Cookie header value
func (c *Cookie) HeaderValue() string {
	if c.Options == nil {
		return c.Name + "=" + c.Value
	}
	o := c.Options
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(o.Value)
	if o.HttpOnly {
		b.WriteString("; HttpOnly")
	}
	if o.Secure {
		b.WriteString("; Secure")
	}
	if o.Path != "" {
		b.WriteString("; Path=")
		b.WriteString(o.Path)
	}
	if !o.Expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(o.Expires.String())
	}
	if o.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(o.Domain)
	}
	return b.String()
}

// Cookies an insertion ordered mapping of cookie name to cookie.
// Setting an existing name replaces the value in place.
type Cookies struct {
	entries []*Cookie
}

// NewCookies create an empty cookie mapping
func NewCookies() *Cookies {
	return &Cookies{entries: make([]*Cookie, 0)}
}

// Set add or replace a plain cookie
func (c *Cookies) Set(name string, value string) *Cookies {
	c.put(&Cookie{Name: name, Value: value})
	return c
}

// SetOptions add or replace a structured cookie
func (c *Cookies) SetOptions(name string, options CookieOptions) *Cookies {
	c.put(&Cookie{Name: name, Value: options.Value, Options: &options})
	return c
}

func (c *Cookies) put(cookie *Cookie) {
	for i, entry := range c.entries {
		if entry.Name == cookie.Name {
			c.entries[i] = cookie
			return
		}
	}
	c.entries = append(c.entries, cookie)
}

// Get lookup a cookie by name
func (c *Cookies) Get(name string) (*Cookie, bool) {
	if c == nil {
		return nil, false
	}
	for _, entry := range c.entries {
		if entry.Name == name {
			return entry, true
		}
	}
	return nil, false
}

// First the earliest inserted cookie
func (c *Cookies) First() (*Cookie, bool) {
	if c.Len() == 0 {
		return nil, false
	}
	return c.entries[0], true
}

func (c *Cookies) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Names cookie names in insertion order
func (c *Cookies) Names() []string {
	names := make([]string, 0, c.Len())
	if c == nil {
		return names
	}
	for _, entry := range c.entries {
		names = append(names, entry.Name)
	}
	return names
}

func (c *Cookies) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)
	stream.WriteObjectStart()
	for i, entry := range c.entries {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(entry.Name)
		if entry.Options != nil {
			stream.WriteVal(entry.Options)
		} else {
			stream.WriteString(entry.Value)
		}
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON decode a cookie object keeping the document order of its keys
func (c *Cookies) UnmarshalJSON(data []byte) error {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)
	if iter.ReadNil() {
		c.entries = nil
		return nil
	}
	decoded := NewCookies()
	var cookieErr error
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		cookie, err := readCookie(iter, name)
		if err != nil {
			cookieErr = err
			return false
		}
		decoded.put(cookie)
		return true
	})
	if cookieErr != nil {
		return cookieErr
	}
	if iter.Error != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCookie, iter.Error.Error())
	}
	c.entries = decoded.entries
	return nil
}

func readCookie(iter *jsoniter.Iterator, name string) (*Cookie, error) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return &Cookie{Name: name, Value: iter.ReadString()}, nil
	case jsoniter.NumberValue:
		return &Cookie{Name: name, Value: iter.ReadNumber().String()}, nil
	case jsoniter.BoolValue:
		return &Cookie{Name: name, Value: strconv.FormatBool(iter.ReadBool())}, nil
	case jsoniter.ObjectValue:
		options, err := decodeCookieOptions(iter.SkipAndReturnBytes())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return &Cookie{Name: name, Value: options.Value, Options: options}, nil
	default:
		iter.Skip()
		return nil, fmt.Errorf("%w: %s", ErrInvalidCookie, name)
	}
}

// decodeCookieOptions decode a structured cookie. Expires is decoded by hand
// so its error keeps matching ErrInvalidExpires.
func decodeCookieOptions(data []byte) (*CookieOptions, error) {
	var raw struct {
		Value    string              `json:"value"`
		HttpOnly bool                `json:"httpOnly"`
		Secure   bool                `json:"secure"`
		Path     string              `json:"path"`
		Expires  jsoniter.RawMessage `json:"expires"`
		Domain   string              `json:"domain"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCookie, err.Error())
	}
	options := &CookieOptions{
		Value:    raw.Value,
		HttpOnly: raw.HttpOnly,
		Secure:   raw.Secure,
		Path:     raw.Path,
		Domain:   raw.Domain,
	}
	if len(raw.Expires) > 0 {
		if err := options.Expires.UnmarshalJSON(raw.Expires); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// FormatCookies format the first cookie of the response as a Set-Cookie header value.
// Every other cookie is ignored, gateways accept a single Set-Cookie value.
func FormatCookies(response *Response) (string, bool) {
	if response == nil {
		return "", false
	}
	cookie, ok := response.Cookies.First()
	if !ok {
		return "", false
	}
	return cookie.HeaderValue(), true
}
